package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	TelegramID   int64 `gorm:"uniqueIndex"`
	Username     string
	FirstName    string
	LastName     string
	LastActivity time.Time
}
