package routes

import (
	"github.com/gofiber/fiber/v2"

	"chatbot_backend/handlers"
)

func RegisterDialogueRoutes(app *fiber.App, dialogueHandler *handlers.DialogueHandler) {
	app.Get("/start", dialogueHandler.Start)
	app.Post("/next", dialogueHandler.Next)
}
