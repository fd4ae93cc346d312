package handlers

import (
	"messenger_backend/internal/services"
	"messenger_backend/internal/validator"
)

// AppHandlers bundles every transport handler for route registration.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	ChatHandler    *ChatHandler
	ContactHandler *ContactHandler
	MessageHandler *MessageHandler
}

// NewAppHandlers builds the handlers over the service container.
func NewAppHandlers(container *services.ServiceContainer) *AppHandlers {
	customValidator := validator.New()
	baseHandler := NewBaseHandler(customValidator)

	return &AppHandlers{
		AuthHandler:    NewAuthHandler(baseHandler, container.UserService),
		UserHandler:    NewUserHandler(baseHandler, container.UserService),
		ChatHandler:    NewChatHandler(baseHandler, container.ChatService, container.MessageService),
		ContactHandler: NewContactHandler(baseHandler, container.ContactService),
		MessageHandler: NewMessageHandler(baseHandler, container.MessageService),
	}
}
