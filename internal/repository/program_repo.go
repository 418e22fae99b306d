package repository

import (
	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"gorm.io/gorm"
)

type ProgramRepository interface {
	// CreateWithExercises создаёт программу и все её упражнения в одной
	// транзакции: либо появляется всё, либо ничего.
	CreateWithExercises(name string, exercises []models.Exercise) (*models.Program, error)
	ListActive() ([]*models.Program, error)
	ListAll() ([]*models.Program, error)
	ListExercises(programID uint) ([]*models.Exercise, error)
	ArchiveAll() error
	DeleteAll() error
	Count() (int64, error)
	CountActive() (int64, error)
}

type programRepo struct {
	db *gorm.DB
}

func NewProgramRepo(db *gorm.DB) ProgramRepository {
	return &programRepo{db: db}
}

func (r *programRepo) CreateWithExercises(name string, exercises []models.Exercise) (*models.Program, error) {
	program := &models.Program{Name: name, Active: true}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(program).Error; err != nil {
			return err
		}
		for i := range exercises {
			exercises[i].ProgramID = program.ID
		}
		return tx.Create(&exercises).Error
	})
	if err != nil {
		return nil, err
	}
	return program, nil
}

func (r *programRepo) ListActive() ([]*models.Program, error) {
	var programs []*models.Program
	err := r.db.Where("active = ?", true).Order("created_at ASC").Find(&programs).Error
	return programs, err
}

func (r *programRepo) ListAll() ([]*models.Program, error) {
	var programs []*models.Program
	err := r.db.Order("created_at ASC").Find(&programs).Error
	return programs, err
}

func (r *programRepo) ListExercises(programID uint) ([]*models.Exercise, error) {
	var exercises []*models.Exercise
	err := r.db.Where("program_id = ?", programID).Order("position ASC").Find(&exercises).Error
	return exercises, err
}

// ArchiveAll снимает флаг active со всех программ. Строки не удаляются.
func (r *programRepo) ArchiveAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.Program{}).Update("active", false).Error
}

// DeleteAll удаляет все данные. Порядок records → exercises → programs
// соблюдает внешние ключи и без каскадов на стороне базы.
func (r *programRepo) DeleteAll() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := session.Delete(&models.Record{}).Error; err != nil {
			return err
		}
		if err := session.Delete(&models.Exercise{}).Error; err != nil {
			return err
		}
		return session.Delete(&models.Program{}).Error
	})
}

func (r *programRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Program{}).Count(&count).Error
	return count, err
}

func (r *programRepo) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Program{}).Where("active = ?", true).Count(&count).Error
	return count, err
}
