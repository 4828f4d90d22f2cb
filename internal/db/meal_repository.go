package db

import (
	"github.com/ogould/fittrack/internal/models"
	"gorm.io/gorm"
)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

// Create inserts a catalog meal after checking the per-owner name
// uniqueness. The check and insert run in one transaction so a concurrent
// insert cannot slip between them.
func (repo *MealRepository) Create(meal *models.Meal) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var matched int64
		if err := ownerScope(tx.Model(&models.Meal{}), meal.OwnerID).
			Where("meal_name = ?", meal.MealName).
			Count(&matched).Error; err != nil {
			return err
		}
		if matched > 0 {
			return ErrDuplicateName
		}
		return tx.Create(meal).Error
	})
	return translateError(err)
}

func (repo *MealRepository) FindByID(mealID uint) (models.Meal, error) {
	var meal models.Meal
	if err := repo.database.First(&meal, mealID).Error; err != nil {
		return models.Meal{}, translateError(err)
	}
	return meal, nil
}

// ListForOwner returns the owner's catalog entries in insertion order.
// A nil owner selects the global catalog.
func (repo *MealRepository) ListForOwner(ownerID *uint) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := ownerScope(repo.database.Model(&models.Meal{}), ownerID).
		Order("id ASC").
		Find(&meals).Error; err != nil {
		return nil, translateError(err)
	}
	return meals, nil
}

// ListVisibleToUser returns the global catalog plus the user's own entries.
func (repo *MealRepository) ListVisibleToUser(userID uint) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Where("owner_id IS NULL OR owner_id = ?", userID).
		Order("id ASC").
		Find(&meals).Error; err != nil {
		return nil, translateError(err)
	}
	return meals, nil
}

// Update replaces all mutable fields of the entry.
func (repo *MealRepository) Update(mealID uint, name string, protein float64, calories float64) error {
	err := repo.database.Model(&models.Meal{}).
		Where("id = ?", mealID).
		Updates(map[string]any{
			"meal_name": name,
			"protein":   protein,
			"calories":  calories,
		}).Error
	return translateError(err)
}

// Delete removes the entry only when both id and owner match. A mismatch
// affects zero rows and is not an error.
func (repo *MealRepository) Delete(mealID uint, ownerID *uint) error {
	err := ownerScope(repo.database.Where("id = ?", mealID), ownerID).
		Delete(&models.Meal{}).Error
	return translateError(err)
}

func ownerScope(query *gorm.DB, ownerID *uint) *gorm.DB {
	if ownerID == nil {
		return query.Where("owner_id IS NULL")
	}
	return query.Where("owner_id = ?", *ownerID)
}
