package models

// Exercise — упражнение программы. Position задаёт порядок выполнения
// внутри программы (с нуля, без пропусков — порядок строк при создании).
type Exercise struct {
	ID        uint   `gorm:"primaryKey"`
	ProgramID uint   `gorm:"not null;index"`
	Name      string `gorm:"type:text;not null"`
	Sets      int    `gorm:"not null"` // целевое число подходов
	Position  int    `gorm:"not null"`

	Records []Record `gorm:"constraint:OnDelete:CASCADE"`
}
