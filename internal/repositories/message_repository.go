package repositories

import (
	"errors"

	"messenger_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id uint) (*models.Message, error)
	ListForChat(chatID uint) ([]models.Message, error)
	UpdateBody(id uint, body string) error
	Delete(id uint) error
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

// ListForChat returns the chat's log in send order; id breaks ties
// between equal timestamps.
func (r *MessageRepositoryImpl) ListForChat(chatID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("chat_id = ?", chatID).
		Order("send_date ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// UpdateBody replaces the body only; id and send_date stay untouched.
func (r *MessageRepositoryImpl) UpdateBody(id uint, body string) error {
	result := r.db.Model(&models.Message{}).Where("id = ?", id).Update("body", body)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Message{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
