package bootstrap

import (
	"chatbot_backend/platform/database"
	"chatbot_backend/repository"
)

type Repositories struct {
	ContactRepository repository.ContactRepository
}

func NewRepositories(db *database.DB) *Repositories {
	sqlDB := db.GetDatabase()
	return &Repositories{
		ContactRepository: repository.NewContactRepository(sqlDB),
	}
}
