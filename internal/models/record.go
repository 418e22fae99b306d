package models

import "time"

// Record — один выполненный подход: вес в конкретном подходе упражнения.
// Записи никогда не редактируются и не удаляются по одной, только каскадом
// вместе с программой.
type Record struct {
	ID         uint `gorm:"primaryKey"`
	ProgramID  uint `gorm:"not null;index"`
	ExerciseID uint `gorm:"not null;index"`
	SetNumber  int  `gorm:"not null"` // номер подхода, с единицы
	Weight     float64
	Date       time.Time `gorm:"type:date;index"`
	CreatedAt  time.Time
}
