package bootstrap

import "chatbot_backend/handlers"

type Handlers struct {
	DialogueHandler *handlers.DialogueHandler
	ContactHandler  *handlers.ContactHandler
	WSHandler       *handlers.WSHandler
	HealthHandler   *handlers.HealthHandler
}

func NewHandlers(services *Services, infra *Infrastructure) *Handlers {
	res := &Handlers{}
	res.DialogueHandler = handlers.NewDialogueHandler(infra.Graph)
	res.ContactHandler = handlers.NewContactHandler(services.ContactService)
	res.WSHandler = handlers.NewWSHandler(infra.EventPublisher)
	res.HealthHandler = handlers.NewHealthHandler(infra.DB, infra.Graph)
	return res
}
