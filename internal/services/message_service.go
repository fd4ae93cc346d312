package services

import (
	"time"

	"messenger_backend/internal/models"
	"messenger_backend/internal/repositories"
	"messenger_backend/internal/services/dto"
	"messenger_backend/pkg/apperrors"
)

// ForwardedPrefix marks the body of a forwarded message.
const ForwardedPrefix = "[Forwarded] "

type MessageService interface {
	Send(req *dto.SendMessageRequest) (uint, error)
	Edit(messageID, requesterID uint, newBody string) error
	Delete(messageID, requesterID uint) error
	Forward(originalMessageID, targetChatID, forwarderID uint) (uint, error)
	ListForChat(chatID uint) ([]models.Message, error)
	GetInfo(messageID uint) (*dto.MessageInfoResponse, error)
}

type MessageServiceImpl struct {
	messageRepo repositories.MessageRepository
}

func NewMessageService(messageRepo repositories.MessageRepository) MessageService {
	return &MessageServiceImpl{messageRepo: messageRepo}
}

// Send appends a message row. Lineage fields are stored as given;
// replyId and resendId are not validated against existing rows, so a
// reply to a later-deleted message keeps its dangling reference.
// Chat membership of the author is not checked either, matching the
// ledger's append-only contract.
func (s *MessageServiceImpl) Send(req *dto.SendMessageRequest) (uint, error) {
	message := &models.Message{
		UserID:   req.UserID,
		ChatID:   req.ChatID,
		Body:     req.Message,
		ReplyID:  req.ReplyID,
		ResendID: req.ResendID,
		SendDate: time.Now(),
	}

	if err := s.messageRepo.Create(message); err != nil {
		return 0, apperrors.StoreError(err)
	}

	return message.ID, nil
}

// Edit replaces the body of the message. Only the author may edit;
// a missing message and a foreign message are distinct failures.
func (s *MessageServiceImpl) Edit(messageID, requesterID uint, newBody string) error {
	message, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return apperrors.StoreError(err)
	}

	if message.UserID != requesterID {
		return apperrors.ErrNotMessageAuthor
	}

	if err := s.messageRepo.UpdateBody(messageID, newBody); err != nil {
		return apperrors.StoreError(err)
	}
	return nil
}

// Delete removes the message under the same ownership rule as Edit.
func (s *MessageServiceImpl) Delete(messageID, requesterID uint) error {
	message, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrMessageNotFound
		}
		return apperrors.StoreError(err)
	}

	if message.UserID != requesterID {
		return apperrors.ErrNotMessageAuthor
	}

	if err := s.messageRepo.Delete(messageID); err != nil {
		return apperrors.StoreError(err)
	}
	return nil
}

// Forward copies an existing message into targetChatID as a NEW row
// authored by the forwarder. The body gets the forwarding marker and
// resendId records the ORIGINAL author's user id, so provenance is
// tracked by person rather than by message.
func (s *MessageServiceImpl) Forward(originalMessageID, targetChatID, forwarderID uint) (uint, error) {
	original, err := s.messageRepo.FindByID(originalMessageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return 0, apperrors.ErrOriginalMessageNotFound
		}
		return 0, apperrors.StoreError(err)
	}

	forwarded := &models.Message{
		UserID:   forwarderID,
		ChatID:   targetChatID,
		Body:     ForwardedPrefix + original.Body,
		ResendID: original.UserID,
		SendDate: time.Now(),
	}

	if err := s.messageRepo.Create(forwarded); err != nil {
		return 0, apperrors.StoreError(err)
	}

	return forwarded.ID, nil
}

// ListForChat returns the chat's log ascending by send time, with all
// lineage fields.
func (s *MessageServiceImpl) ListForChat(chatID uint) ([]models.Message, error) {
	messages, err := s.messageRepo.ListForChat(chatID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return messages, nil
}

func (s *MessageServiceImpl) GetInfo(messageID uint) (*dto.MessageInfoResponse, error) {
	message, err := s.messageRepo.FindByID(messageID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, apperrors.StoreError(err)
	}

	return &dto.MessageInfoResponse{
		UserID:  message.UserID,
		Message: message.Body,
	}, nil
}
