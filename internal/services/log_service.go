package services

import (
	"errors"
	"fmt"

	"github.com/ogould/fittrack/internal/models"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

type MealLogRepository interface {
	Create(entry *models.MealLog) error
	ListByUser(userID uint) ([]models.MealLog, error)
	Delete(entryID uint, userID uint) error
}

type WorkoutLogRepository interface {
	Create(entry *models.WorkoutLog) error
	ListByUser(userID uint, category string) ([]models.WorkoutLog, error)
	Delete(entryID uint, userID uint) error
}

type MealLookupRepository interface {
	FindByID(mealID uint) (models.Meal, error)
}

type WorkoutLookupRepository interface {
	FindByID(workoutID uint) (models.Workout, error)
}

// LogService records catalog entries into per-user logs. Each log row is a
// snapshot of the catalog values at log time; later catalog edits or
// deletions never change what was logged.
type LogService struct {
	mealLogs    MealLogRepository
	workoutLogs WorkoutLogRepository
	meals       MealLookupRepository
	workouts    WorkoutLookupRepository
}

// DayTotals is the running total shown on the meals screen.
type DayTotals struct {
	Calories float64
	Protein  float64
}

func NewLogService(mealLogs MealLogRepository, workoutLogs WorkoutLogRepository, meals MealLookupRepository, workouts WorkoutLookupRepository) *LogService {
	return &LogService{
		mealLogs:    mealLogs,
		workoutLogs: workoutLogs,
		meals:       meals,
		workouts:    workouts,
	}
}

func (service *LogService) LogMeal(userID uint, mealID uint, quantity int) (models.MealLog, error) {
	if quantity <= 0 {
		return models.MealLog{}, ErrInvalidQuantity
	}

	meal, err := service.meals.FindByID(mealID)
	if err != nil {
		return models.MealLog{}, fmt.Errorf("load catalog meal: %w", err)
	}

	entry := models.MealLog{
		UserID:   userID,
		MealID:   meal.ID,
		MealName: meal.MealName,
		Calories: meal.Calories,
		Protein:  meal.Protein,
		Quantity: quantity,
	}
	if err := service.mealLogs.Create(&entry); err != nil {
		return models.MealLog{}, err
	}
	return entry, nil
}

func (service *LogService) LogWorkout(userID uint, workoutID uint) (models.WorkoutLog, error) {
	workout, err := service.workouts.FindByID(workoutID)
	if err != nil {
		return models.WorkoutLog{}, fmt.Errorf("load catalog workout: %w", err)
	}

	entry := models.WorkoutLog{
		UserID:         userID,
		WorkoutID:      workout.ID,
		WorkoutName:    workout.WorkoutName,
		Reps:           workout.Reps,
		CaloriesBurned: workout.CaloriesBurned,
		Category:       workout.Category,
	}
	if err := service.workoutLogs.Create(&entry); err != nil {
		return models.WorkoutLog{}, err
	}
	return entry, nil
}

func (service *LogService) MealLog(userID uint) ([]models.MealLog, error) {
	return service.mealLogs.ListByUser(userID)
}

func (service *LogService) WorkoutLog(userID uint, category string) ([]models.WorkoutLog, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return service.workoutLogs.ListByUser(userID, category)
}

func (service *LogService) MealTotals(userID uint) (DayTotals, error) {
	entries, err := service.mealLogs.ListByUser(userID)
	if err != nil {
		return DayTotals{}, err
	}

	totals := DayTotals{}
	for _, entry := range entries {
		quantity := float64(entry.Quantity)
		totals.Calories += entry.Calories * quantity
		totals.Protein += entry.Protein * quantity
	}
	return totals, nil
}

func (service *LogService) DeleteMealEntry(entryID uint, userID uint) error {
	return service.mealLogs.Delete(entryID, userID)
}

func (service *LogService) DeleteWorkoutEntry(entryID uint, userID uint) error {
	return service.workoutLogs.Delete(entryID, userID)
}
