package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Profiles    *ProfileRepository
	Meals       *MealRepository
	Workouts    *WorkoutRepository
	MealLogs    *MealLogRepository
	WorkoutLogs *WorkoutLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Profiles:    NewProfileRepository(database),
		Meals:       NewMealRepository(database),
		Workouts:    NewWorkoutRepository(database),
		MealLogs:    NewMealLogRepository(database),
		WorkoutLogs: NewWorkoutLogRepository(database),
	}
}
