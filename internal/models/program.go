package models

import "time"

// Program — программа тренировок. Активные программы доступны для выбора
// при старте тренировки, архивные остаются только в отчётах.
// Одновременно может быть активно несколько программ.
type Program struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Active    bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time

	Exercises []Exercise `gorm:"constraint:OnDelete:CASCADE"`
	Records   []Record   `gorm:"constraint:OnDelete:CASCADE"`
}
