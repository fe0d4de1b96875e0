package repository

import (
	"context"

	"chatbot_backend/models"
)

// ContactRepository is the contact sink. The backing store varies by
// deployment (postgres or embedded sqlite); swapping it means providing
// another implementation, nothing above this interface changes.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	ListNewestFirst(ctx context.Context) ([]models.Contact, error)
}
