package repository

import "time"

// Period — окно выборки записей для отчёта.
type Period string

const (
	PeriodDay  Period = "day"
	PeriodWeek Period = "week"
	PeriodAll  Period = "all"
)

// ReportRow — строка объединённого запроса по записям тренировок.
type ReportRow struct {
	Date        time.Time `gorm:"column:date" json:"date"`
	ProgramName string    `gorm:"column:program_name" json:"program_name"`
	Exercise    string    `gorm:"column:exercise" json:"exercise"`
	SetNumber   int       `gorm:"column:set_number" json:"set_number"`
	Weight      float64   `gorm:"column:weight" json:"weight"`
}
