package db

import (
	"github.com/ogould/fittrack/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func (repo *WorkoutRepository) Create(workout *models.Workout) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		var matched int64
		if err := ownerScope(tx.Model(&models.Workout{}), workout.OwnerID).
			Where("workout_name = ?", workout.WorkoutName).
			Count(&matched).Error; err != nil {
			return err
		}
		if matched > 0 {
			return ErrDuplicateName
		}
		return tx.Create(workout).Error
	})
	return translateError(err)
}

func (repo *WorkoutRepository) FindByID(workoutID uint) (models.Workout, error) {
	var workout models.Workout
	if err := repo.database.First(&workout, workoutID).Error; err != nil {
		return models.Workout{}, translateError(err)
	}
	return workout, nil
}

// ListForOwner returns the owner's workouts in insertion order, optionally
// narrowed to one difficulty category. Empty category means all.
func (repo *WorkoutRepository) ListForOwner(ownerID *uint, category string) ([]models.Workout, error) {
	query := ownerScope(repo.database.Model(&models.Workout{}), ownerID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	workouts := make([]models.Workout, 0)
	if err := query.Order("id ASC").Find(&workouts).Error; err != nil {
		return nil, translateError(err)
	}
	return workouts, nil
}

func (repo *WorkoutRepository) ListVisibleToUser(userID uint, category string) ([]models.Workout, error) {
	query := repo.database.Where("owner_id IS NULL OR owner_id = ?", userID)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	workouts := make([]models.Workout, 0)
	if err := query.Order("id ASC").Find(&workouts).Error; err != nil {
		return nil, translateError(err)
	}
	return workouts, nil
}

func (repo *WorkoutRepository) Update(workoutID uint, name string, reps int, caloriesBurned float64, category string) error {
	err := repo.database.Model(&models.Workout{}).
		Where("id = ?", workoutID).
		Updates(map[string]any{
			"workout_name":    name,
			"reps":            reps,
			"calories_burned": caloriesBurned,
			"category":        category,
		}).Error
	return translateError(err)
}

func (repo *WorkoutRepository) Delete(workoutID uint, ownerID *uint) error {
	err := ownerScope(repo.database.Where("id = ?", workoutID), ownerID).
		Delete(&models.Workout{}).Error
	return translateError(err)
}
