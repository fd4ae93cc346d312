package services

import (
	"messenger_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer bundles the domain services the transport layer
// consumes. It holds no state of its own; everything lives in the
// store the repositories were built on.
type ServiceContainer struct {
	UserService    UserService
	ContactService ContactService
	ChatService    ChatService
	MessageService MessageService
}

// NewServiceContainer wires repositories and services on the given
// store handle. The handle is passed in explicitly; nothing reaches
// for a global connection.
func NewServiceContainer(db *gorm.DB) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	return &ServiceContainer{
		UserService:    NewUserService(userRepo),
		ContactService: NewContactService(contactRepo, userRepo),
		ChatService:    NewChatService(chatRepo),
		MessageService: NewMessageService(messageRepo),
	}
}
