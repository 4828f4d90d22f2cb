package services

import (
	"errors"
	"strings"

	"github.com/ogould/fittrack/internal/models"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidCategory  = errors.New("invalid workout category")
	ErrInvalidNutrition = errors.New("nutrition values must not be negative")
	ErrAdminRequired    = errors.New("admin privileges required")
)

type MealCatalogRepository interface {
	Create(meal *models.Meal) error
	FindByID(mealID uint) (models.Meal, error)
	ListForOwner(ownerID *uint) ([]models.Meal, error)
	ListVisibleToUser(userID uint) ([]models.Meal, error)
	Update(mealID uint, name string, protein float64, calories float64) error
	Delete(mealID uint, ownerID *uint) error
}

type WorkoutCatalogRepository interface {
	Create(workout *models.Workout) error
	FindByID(workoutID uint) (models.Workout, error)
	ListForOwner(ownerID *uint, category string) ([]models.Workout, error)
	ListVisibleToUser(userID uint, category string) ([]models.Workout, error)
	Update(workoutID uint, name string, reps int, caloriesBurned float64, category string) error
	Delete(workoutID uint, ownerID *uint) error
}

// CatalogService owns the meal and workout catalogs. Mutations of global
// (ownerless) entries are admin-only; users manage their own entries freely.
type CatalogService struct {
	meals    MealCatalogRepository
	workouts WorkoutCatalogRepository
}

func NewCatalogService(meals MealCatalogRepository, workouts WorkoutCatalogRepository) *CatalogService {
	return &CatalogService{meals: meals, workouts: workouts}
}

func (service *CatalogService) authorize(actor models.User, ownerID *uint) error {
	if ownerID == nil && !actor.IsAdmin {
		return ErrAdminRequired
	}
	if ownerID != nil && *ownerID != actor.ID && !actor.IsAdmin {
		return ErrAdminRequired
	}
	return nil
}

func (service *CatalogService) AddMeal(actor models.User, ownerID *uint, name string, protein float64, calories float64) (models.Meal, error) {
	if err := service.authorize(actor, ownerID); err != nil {
		return models.Meal{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Meal{}, ErrNameRequired
	}
	if protein < 0 || calories < 0 {
		return models.Meal{}, ErrInvalidNutrition
	}

	meal := models.Meal{OwnerID: ownerID, MealName: name, Protein: protein, Calories: calories}
	if err := service.meals.Create(&meal); err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

func (service *CatalogService) ListMeals(ownerID *uint) ([]models.Meal, error) {
	return service.meals.ListForOwner(ownerID)
}

func (service *CatalogService) MealsVisibleToUser(userID uint) ([]models.Meal, error) {
	return service.meals.ListVisibleToUser(userID)
}

func (service *CatalogService) UpdateMeal(actor models.User, mealID uint, name string, protein float64, calories float64) error {
	meal, err := service.meals.FindByID(mealID)
	if err != nil {
		return err
	}
	if err := service.authorize(actor, meal.OwnerID); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if protein < 0 || calories < 0 {
		return ErrInvalidNutrition
	}
	return service.meals.Update(mealID, name, protein, calories)
}

// DeleteMeal is scoped to the given owner; an id/owner mismatch silently
// deletes nothing, matching the store contract.
func (service *CatalogService) DeleteMeal(actor models.User, mealID uint, ownerID *uint) error {
	if err := service.authorize(actor, ownerID); err != nil {
		return err
	}
	return service.meals.Delete(mealID, ownerID)
}

func (service *CatalogService) AddWorkout(actor models.User, ownerID *uint, name string, reps int, caloriesBurned float64, category string) (models.Workout, error) {
	if err := service.authorize(actor, ownerID); err != nil {
		return models.Workout{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Workout{}, ErrNameRequired
	}
	if reps <= 0 || caloriesBurned < 0 {
		return models.Workout{}, ErrInvalidNutrition
	}
	if !models.ValidCategory(category) {
		return models.Workout{}, ErrInvalidCategory
	}

	workout := models.Workout{
		OwnerID:        ownerID,
		WorkoutName:    name,
		Reps:           reps,
		CaloriesBurned: caloriesBurned,
		Category:       category,
	}
	if err := service.workouts.Create(&workout); err != nil {
		return models.Workout{}, err
	}
	return workout, nil
}

func (service *CatalogService) ListWorkouts(ownerID *uint, category string) ([]models.Workout, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return service.workouts.ListForOwner(ownerID, category)
}

func (service *CatalogService) WorkoutsVisibleToUser(userID uint, category string) ([]models.Workout, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return service.workouts.ListVisibleToUser(userID, category)
}

func (service *CatalogService) UpdateWorkout(actor models.User, workoutID uint, name string, reps int, caloriesBurned float64, category string) error {
	workout, err := service.workouts.FindByID(workoutID)
	if err != nil {
		return err
	}
	if err := service.authorize(actor, workout.OwnerID); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if reps <= 0 || caloriesBurned < 0 {
		return ErrInvalidNutrition
	}
	if !models.ValidCategory(category) {
		return ErrInvalidCategory
	}
	return service.workouts.Update(workoutID, name, reps, caloriesBurned, category)
}

func (service *CatalogService) DeleteWorkout(actor models.User, workoutID uint, ownerID *uint) error {
	if err := service.authorize(actor, ownerID); err != nil {
		return err
	}
	return service.workouts.Delete(workoutID, ownerID)
}
