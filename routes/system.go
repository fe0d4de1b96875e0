package routes

import (
	"github.com/gofiber/fiber/v2"

	"chatbot_backend/handlers"
)

func RegisterSystemRoutes(app *fiber.App, healthHandler *handlers.HealthHandler) {
	app.Get("/health", healthHandler.Health)
}
