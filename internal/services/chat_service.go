package services

import (
	"time"

	"messenger_backend/internal/models"
	"messenger_backend/internal/repositories"
	"messenger_backend/internal/services/dto"
	"messenger_backend/pkg/apperrors"
)

type ChatService interface {
	CreateChat(req *dto.CreateChatRequest) (uint, error)
	AddMember(userID, chatID uint) error
	ListChats(userID uint) ([]models.Chat, error)
}

type ChatServiceImpl struct {
	chatRepo repositories.ChatRepository
}

func NewChatService(chatRepo repositories.ChatRepository) ChatService {
	return &ChatServiceImpl{chatRepo: chatRepo}
}

// CreateChat inserts the chat and memberships for every participant
// plus the creator, atomically. The creator is always a member even
// when absent from the participant list.
func (s *ChatServiceImpl) CreateChat(req *dto.CreateChatRequest) (uint, error) {
	chat := &models.Chat{
		Name:      req.Name,
		IsGroup:   req.IsGroup,
		CreatedBy: req.CreatedBy,
		CreatedAt: time.Now(),
	}

	memberIDs := make([]uint, 0, len(req.Participants)+1)
	memberIDs = append(memberIDs, req.Participants...)
	memberIDs = append(memberIDs, req.CreatedBy)

	if err := s.chatRepo.CreateWithMembers(chat, memberIDs); err != nil {
		return 0, apperrors.StoreError(err)
	}

	return chat.ID, nil
}

// AddMember adds the user to the chat; adding an existing member is a
// no-op, not an error.
func (s *ChatServiceImpl) AddMember(userID, chatID uint) error {
	if err := s.chatRepo.AddMember(userID, chatID); err != nil {
		return apperrors.StoreError(err)
	}
	return nil
}

// ListChats returns every chat where the user holds membership, newest
// creation first.
func (s *ChatServiceImpl) ListChats(userID uint) ([]models.Chat, error) {
	chats, err := s.chatRepo.ListForUser(userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return chats, nil
}
