package repository

import (
	"time"

	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"gorm.io/gorm"
)

type RecordRepository interface {
	Create(programID, exerciseID uint, setNumber int, weight float64) (*models.Record, error)
	FindByPeriod(period Period) ([]ReportRow, error)
	Count() (int64, error)
	CountToday() (int64, error)
}

type recordRepo struct {
	db *gorm.DB
}

func NewRecordRepo(db *gorm.DB) RecordRepository {
	return &recordRepo{db: db}
}

func (r *recordRepo) Create(programID, exerciseID uint, setNumber int, weight float64) (*models.Record, error) {
	record := &models.Record{
		ProgramID:  programID,
		ExerciseID: exerciseID,
		SetNumber:  setNumber,
		Weight:     weight,
		Date:       time.Now(), // колонка date хранит только календарную дату
	}
	err := r.db.Create(record).Error
	return record, err
}

// FindByPeriod возвращает объединённые строки за окно. День и неделя идут
// хронологически, «за всё время» — свежие даты сверху, внутри даты в
// порядке создания.
func (r *recordRepo) FindByPeriod(period Period) ([]ReportRow, error) {
	q := r.db.Table("records").
		Select("records.date AS date, programs.name AS program_name, exercises.name AS exercise, records.set_number AS set_number, records.weight AS weight").
		Joins("JOIN programs ON programs.id = records.program_id").
		Joins("JOIN exercises ON exercises.id = records.exercise_id")

	switch period {
	case PeriodDay:
		q = q.Where("records.date = CURRENT_DATE").
			Order("records.created_at ASC")
	case PeriodWeek:
		q = q.Where("records.date >= CURRENT_DATE - INTERVAL '7 days'").
			Order("records.date ASC, records.created_at ASC")
	default:
		q = q.Order("records.date DESC, records.created_at ASC")
	}

	var rows []ReportRow
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *recordRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Record{}).Count(&count).Error
	return count, err
}

func (r *recordRepo) CountToday() (int64, error) {
	var count int64
	err := r.db.Model(&models.Record{}).Where("date = CURRENT_DATE").Count(&count).Error
	return count, err
}
