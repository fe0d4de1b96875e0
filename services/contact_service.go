package services

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/singleflight"

	"chatbot_backend/models"
	"chatbot_backend/pkg/logging"
	"chatbot_backend/platform/cache"
	"chatbot_backend/platform/events"
	"chatbot_backend/repository"
)

const (
	contactsCacheKey = "contacts:all"
	contactsCacheTTL = 5 * time.Minute
)

type ContactService struct {
	repo   repository.ContactRepository
	cache  cache.CacheService
	events *events.ContactEventPublisher // nil when redis is not configured
	sf     singleflight.Group
}

func NewContactService(repo repository.ContactRepository, cacheService cache.CacheService, publisher *events.ContactEventPublisher) *ContactService {
	return &ContactService{repo: repo, cache: cacheService, events: publisher}
}

// Save persists one contact. The id and created_at come back filled in
// by the store. The event publish is best effort: a pub/sub failure
// never fails a save that already hit the database.
func (s *ContactService) Save(ctx context.Context, name, phone string) (*models.Contact, error) {
	contact := &models.Contact{Name: name, Phone: phone}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	if err := s.cache.DelCache(contactsCacheKey); err != nil {
		logging.Logger.Error("fail invalidating contacts cache", "error", err)
	}

	if s.events != nil {
		go func(c models.Contact) {
			if err := s.events.PublishContactCreated(c); err != nil {
				logging.Logger.Error("fail publishing contact event", "error", err)
			}
		}(*contact)
	}
	return contact, nil
}

// List returns all contacts, newest first, read-through the layered
// cache. Concurrent misses collapse into one database query.
func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	if data, ok := s.cache.GetCache(contactsCacheKey); ok {
		if contacts, ok := decodeCachedContacts(data); ok {
			return contacts, nil
		}
	}

	v, err, _ := s.sf.Do(contactsCacheKey, func() (interface{}, error) {
		contacts, err := s.repo.ListNewestFirst(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetCache(contactsCacheKey, contacts, contactsCacheTTL); err != nil {
			logging.Logger.Error("fail caching contacts", "error", err)
		}
		return contacts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]models.Contact), nil
}

// decodeCachedContacts handles both cache layers: L1 stores the slice
// as-is, L2 hands back the JSON string redis stored.
func decodeCachedContacts(data interface{}) ([]models.Contact, bool) {
	switch v := data.(type) {
	case []models.Contact:
		return v, true
	case string:
		var contacts []models.Contact
		if err := json.Unmarshal([]byte(v), &contacts); err != nil {
			logging.Logger.Error("fail decoding cached contacts", "error", err)
			return nil, false
		}
		return contacts, true
	default:
		return nil, false
	}
}
