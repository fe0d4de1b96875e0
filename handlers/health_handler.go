package handlers

import (
	"github.com/gofiber/fiber/v2"

	"chatbot_backend/dialogue"
	"chatbot_backend/platform/database"
)

type HealthHandler struct {
	db    *database.DB
	graph *dialogue.Graph
}

func NewHealthHandler(db *database.DB, graph *dialogue.Graph) *HealthHandler {
	return &HealthHandler{db: db, graph: graph}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	dbStatus := "up"
	if err := h.db.Ping(); err != nil {
		dbStatus = "down"
	}
	dialogueStatus := "loaded"
	if h.graph.Len() == 0 {
		dialogueStatus = "empty"
	}
	return c.JSON(fiber.Map{
		"status":   "ok",
		"database": dbStatus,
		"dialogue": dialogueStatus,
	})
}
