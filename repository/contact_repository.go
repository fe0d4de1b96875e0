package repository

import (
	"context"

	"gorm.io/gorm"

	"chatbot_backend/models"
	"chatbot_backend/pkg/logging"
)

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		logging.Logger.Error("fail Create contact", "error", err)
		return err
	}
	return nil
}

func (r *contactRepository) ListNewestFirst(ctx context.Context) ([]models.Contact, error) {
	var res []models.Contact
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&res).Error
	if err != nil {
		logging.Logger.Error("fail ListNewestFirst", "error", err)
		return nil, err
	}
	return res, nil
}
