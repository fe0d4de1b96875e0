package bootstrap

import "chatbot_backend/services"

type Services struct {
	ContactService *services.ContactService
}

func NewServices(repos *Repositories, infra *Infrastructure) *Services {
	res := &Services{}

	contactService := services.NewContactService(repos.ContactRepository, infra.Cache, infra.EventPublisher)
	res.ContactService = contactService

	return res
}
