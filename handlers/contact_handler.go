package handlers

import (
	"github.com/gofiber/fiber/v2"

	"chatbot_backend/models"
	"chatbot_backend/pkg/logging"
	"chatbot_backend/services"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// SaveContact validates the fields at the boundary and hands the rest
// to the service. Storage errors come back as a generic 500; no driver
// detail reaches the client.
func (h *ContactHandler) SaveContact(c *fiber.Ctx) error {
	var req models.SaveContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" || req.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and phone number are required.",
		})
	}

	contact, err := h.contactService.Save(c.Context(), req.Name, req.Phone)
	if err != nil {
		logging.Logger.Error("fail saving contact", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save contact",
		})
	}

	return c.JSON(models.SaveContactResponse{
		Success:   true,
		Message:   "Thanks! We will be in touch shortly.",
		ContactID: contact.ID,
	})
}

// ListContacts returns every captured contact, newest first.
func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	contacts, err := h.contactService.List(c.Context())
	if err != nil {
		logging.Logger.Error("fail listing contacts", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load contacts",
		})
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return c.JSON(contacts)
}
