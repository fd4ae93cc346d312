package repositories

import (
	"messenger_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatRepository interface {
	CreateWithMembers(chat *models.Chat, memberIDs []uint) error
	AddMember(userID, chatID uint) error
	ListForUser(userID uint) ([]models.Chat, error)
}

type ChatRepositoryImpl struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &ChatRepositoryImpl{db: db}
}

// CreateWithMembers inserts the chat row and one membership row per
// member id inside a single transaction, so a failure cannot leave a
// chat with a partial member list. Duplicate ids in memberIDs are
// absorbed by the insert-if-absent clause on the composite key.
func (r *ChatRepositoryImpl) CreateWithMembers(chat *models.Chat, memberIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(chat).Error; err != nil {
			return err
		}

		for _, userID := range memberIDs {
			member := models.ChatMember{UserID: userID, ChatID: chat.ID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AddMember is idempotent: inserting an existing membership is a no-op.
func (r *ChatRepositoryImpl) AddMember(userID, chatID uint) error {
	member := models.ChatMember{UserID: userID, ChatID: chatID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error
}

// ListForUser returns all chats the user is a member of, newest
// creation first.
func (r *ChatRepositoryImpl) ListForUser(userID uint) ([]models.Chat, error) {
	var chats []models.Chat
	err := r.db.Model(&models.Chat{}).
		Joins("JOIN chat_members ON chat_members.chat_id = chats.id").
		Where("chat_members.user_id = ?", userID).
		Order("chats.created_at DESC, chats.id DESC").
		Find(&chats).Error
	return chats, err
}
