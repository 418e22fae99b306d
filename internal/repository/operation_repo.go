package repository

import (
	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
	"gorm.io/gorm"
)

type OperationRepository interface {
	Log(userID int64, operationType string) error
	CountDistinctUsersToday() (int64, error)
	CountTodayByType() (map[string]int64, error)
}

type operationRepo struct {
	db *gorm.DB
}

func NewOperationRepo(db *gorm.DB) OperationRepository {
	return &operationRepo{db: db}
}

func (r *operationRepo) Log(userID int64, operationType string) error {
	return r.db.Create(&models.Operation{
		UserID:        userID,
		OperationType: operationType,
	}).Error
}

func (r *operationRepo) CountDistinctUsersToday() (int64, error) {
	var count int64
	err := r.db.Model(&models.Operation{}).
		Where("created_at::date = CURRENT_DATE").
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

func (r *operationRepo) CountTodayByType() (map[string]int64, error) {
	var rows []struct {
		OperationType string
		Count         int64
	}
	err := r.db.Model(&models.Operation{}).
		Select("operation_type, COUNT(*) AS count").
		Where("created_at::date = CURRENT_DATE").
		Group("operation_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.OperationType] = row.Count
	}
	return counts, nil
}
