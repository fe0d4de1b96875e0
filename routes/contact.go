package routes

import (
	"github.com/gofiber/fiber/v2"

	"chatbot_backend/handlers"
)

func RegisterContactRoutes(app *fiber.App, contactHandler *handlers.ContactHandler) {
	app.Post("/save-contact", contactHandler.SaveContact)
	app.Get("/contacts", contactHandler.ListContacts)
}
