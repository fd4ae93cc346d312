package models

import "time"

// Message is one row of a chat's append-only log. ReplyID references
// another message id and ResendID references the ORIGINAL author's
// user id when the message is a forward; 0 means none for both.
// Neither is enforced as a foreign key, so dangling references are
// possible after deletes.
type Message struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;index" json:"userId"`
	ChatID   uint      `gorm:"not null;index" json:"chatId"`
	Body     string    `gorm:"type:text;not null" json:"message"`
	ReplyID  uint      `gorm:"default:0" json:"replyId"`
	SendDate time.Time `gorm:"index" json:"sendDate"`
	ResendID uint      `gorm:"default:0" json:"resendId"`
}
