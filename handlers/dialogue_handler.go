package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"chatbot_backend/dialogue"
	"chatbot_backend/models"
	"chatbot_backend/pkg/logging"
)

type DialogueHandler struct {
	graph *dialogue.Graph
}

func NewDialogueHandler(graph *dialogue.Graph) *DialogueHandler {
	return &DialogueHandler{graph: graph}
}

// Start serves the dialogue entry point.
func (h *DialogueHandler) Start(c *fiber.Ctx) error {
	question, err := h.graph.Start()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Dialogue schema not available.",
		})
	}
	return c.JSON(question)
}

// Next advances the dialogue one step from the client-supplied
// position. Unknown ids are the client's fault (400); a dangling edge
// inside the schema is ours (500).
func (h *DialogueHandler) Next(c *fiber.Ctx) error {
	var req models.AdvanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	questionID, ok := req.QuestionID.Int()
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question_id"})
	}
	optionID, ok := req.OptionID.Int()
	if !ok {
		// Mirror the lookup order: a bad question id wins over a bad
		// option id.
		if _, exists := h.graph.Lookup(questionID); !exists {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question_id"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid option_id"})
	}

	step, err := h.graph.Advance(questionID, optionID)
	switch {
	case errors.Is(err, dialogue.ErrUnknownQuestion):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid question_id"})
	case errors.Is(err, dialogue.ErrUnknownOption):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid option_id"})
	case errors.Is(err, dialogue.ErrBrokenEdge):
		logging.Logger.Error("dialogue schema has a dangling edge",
			"question_id", questionID, "option_id", optionID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal error: next question not found.",
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal error"})
	}

	if step.ShowForm {
		return c.JSON(fiber.Map{"action": "show_form"})
	}
	return c.JSON(step.Question)
}
