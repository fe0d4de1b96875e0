package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"chatbot_backend/models"
	"chatbot_backend/pkg/logging"
)

const (
	ContactEventChannel = "contacts:events"
)

type ContactEventPublisher struct {
	redisClient *redis.Client
}

func NewContactEventPublisher(redisClient *redis.Client) *ContactEventPublisher {
	return &ContactEventPublisher{redisClient: redisClient}
}

func (p *ContactEventPublisher) PublishContactCreated(contact models.Contact) error {
	event := &models.ContactEvent{
		ID:        uuid.NewString(),
		Type:      models.EventContactCreated,
		Contact:   contact,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logging.Logger.Error("failed to marshal contact event", "error", err)
		return err
	}
	ctx := context.Background()
	if err := p.redisClient.Publish(ctx, ContactEventChannel, string(data)).Err(); err != nil {
		logging.Logger.Error("failed to publish contact event", "error", err)
		return err
	}
	logging.Logger.Info("published contact event", "event_id", event.ID, "contact_id", contact.ID)
	return nil
}

func (p *ContactEventPublisher) SubscribeContactEvents(ctx context.Context) (<-chan *models.ContactEvent, error) {
	pubsub := p.redisClient.Subscribe(ctx, ContactEventChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		logging.Logger.Error("failed to subscribe to contact events", "error", err)
		return nil, err
	}
	ch := make(chan *models.ContactEvent, 100)

	go func() {
		defer close(ch)
		defer func() {
			if err := pubsub.Close(); err != nil {
				logging.Logger.Error("failed to close pubsub", "error", err)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-pubsub.Channel():
				if !ok {
					return
				}
				var event models.ContactEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					logging.Logger.Error("failed to unmarshal contact event", "error", err)
					continue
				}

				select {
				case ch <- &event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
