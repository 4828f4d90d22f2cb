package db

import (
	"github.com/ogould/fittrack/internal/models"
	"gorm.io/gorm"
)

type MealLogRepository struct {
	database *gorm.DB
}

func NewMealLogRepository(database *gorm.DB) *MealLogRepository {
	return &MealLogRepository{database: database}
}

func (repo *MealLogRepository) Create(entry *models.MealLog) error {
	return translateError(repo.database.Create(entry).Error)
}

func (repo *MealLogRepository) ListByUser(userID uint) ([]models.MealLog, error) {
	entries := make([]models.MealLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, translateError(err)
	}
	return entries, nil
}

// Delete removes one entry scoped to the owning user. A mismatched user
// affects zero rows and is not an error.
func (repo *MealLogRepository) Delete(entryID uint, userID uint) error {
	err := repo.database.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.MealLog{}).Error
	return translateError(err)
}
