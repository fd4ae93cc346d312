package models

import "time"

// User is an account. Login is the natural key for authentication and
// is immutable after registration; users are never deleted.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Login        string `gorm:"uniqueIndex;not null" json:"login"`
	PasswordHash string `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
