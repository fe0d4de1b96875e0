package handlers

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"chatbot_backend/pkg/logging"
	"chatbot_backend/platform/events"
)

// WSHandler streams contact-created events to an admin client.
type WSHandler struct {
	eventPublisher *events.ContactEventPublisher
}

func NewWSHandler(eventPublisher *events.ContactEventPublisher) *WSHandler {
	return &WSHandler{eventPublisher: eventPublisher}
}

func (h *WSHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if h.eventPublisher == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Live feed not available"})
	}
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Not a websocket request"})
}

func (h *WSHandler) HandleContactEvents(c *websocket.Conn) {
	logging.Logger.Info("WebSocket connected", "remote", c.RemoteAddr().String())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventChan, err := h.eventPublisher.SubscribeContactEvents(ctx)
	if err != nil {
		logging.Logger.Error("failed to subscribe to contact events", "error", err)
		if err := c.WriteMessage(websocket.TextMessage, []byte(`{"error":"Failed to subscribe"}`)); err != nil {
			return
		}
		return
	}

	if err := c.WriteJSON(fiber.Map{
		"type":    "connected",
		"message": "WebSocket connected successfully",
	}); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if err := c.WriteJSON(event); err != nil {
				logging.Logger.Info("WebSocket closed", "error", err)
				return
			}
		}
	}
}
