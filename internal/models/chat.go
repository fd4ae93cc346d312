package models

import "time"

// Chat is a direct or group conversation. Created atomically with at
// least the creator as a member.
type Chat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	IsGroup   bool      `gorm:"default:false" json:"isGroup"`
	CreatedBy uint      `gorm:"index" json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatMember is the many-to-many user/chat relation. The composite
// primary key makes a user appear at most once per chat.
type ChatMember struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	ChatID uint `gorm:"primaryKey;autoIncrement:false" json:"chatId"`
}
