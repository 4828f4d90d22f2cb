package db

import (
	"github.com/ogould/fittrack/internal/models"
	"gorm.io/gorm"
)

type WorkoutLogRepository struct {
	database *gorm.DB
}

func NewWorkoutLogRepository(database *gorm.DB) *WorkoutLogRepository {
	return &WorkoutLogRepository{database: database}
}

func (repo *WorkoutLogRepository) Create(entry *models.WorkoutLog) error {
	return translateError(repo.database.Create(entry).Error)
}

func (repo *WorkoutLogRepository) ListByUser(userID uint, category string) ([]models.WorkoutLog, error) {
	query := repo.database.Where("user_id = ?", userID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	entries := make([]models.WorkoutLog, 0)
	if err := query.Order("id ASC").Find(&entries).Error; err != nil {
		return nil, translateError(err)
	}
	return entries, nil
}

func (repo *WorkoutLogRepository) Delete(entryID uint, userID uint) error {
	err := repo.database.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.WorkoutLog{}).Error
	return translateError(err)
}
