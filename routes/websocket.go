package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"chatbot_backend/handlers"
)

func SetupWebSocketRoutes(app *fiber.App, wsHandler *handlers.WSHandler) {
	ws := app.Group("/ws")

	ws.Use("/contacts", wsHandler.WebSocketUpgrade)
	ws.Get("/contacts", websocket.New(wsHandler.HandleContactEvents))
}
