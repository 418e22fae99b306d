package models

import "time"

// Operation — журнал действий пользователей. По нему считаются метрики
// активности за день.
type Operation struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        int64     `gorm:"not null;index"` // telegram id
	OperationType string    `gorm:"type:varchar(64);not null;index"`
	CreatedAt     time.Time `gorm:"index"`
}
