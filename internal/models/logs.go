package models

// MealLog is an immutable snapshot of a catalog meal at the moment the user
// logged it. Later catalog edits or deletions never touch these rows.
type MealLog struct {
	ID       uint    `gorm:"primaryKey"`
	UserID   uint    `gorm:"index;not null"`
	MealID   uint    `gorm:"not null"`
	MealName string  `gorm:"not null"`
	Calories float64 `gorm:"not null"`
	Protein  float64 `gorm:"not null"`
	Quantity int     `gorm:"not null;default:1"`
}

func (MealLog) TableName() string {
	return "user_meals"
}

type WorkoutLog struct {
	ID             uint    `gorm:"primaryKey"`
	UserID         uint    `gorm:"index;not null"`
	WorkoutID      uint    `gorm:"not null"`
	WorkoutName    string  `gorm:"not null"`
	Reps           int     `gorm:"not null"`
	CaloriesBurned float64 `gorm:"not null"`
	Category       string  `gorm:"not null"`
}

func (WorkoutLog) TableName() string {
	return "user_workouts"
}
