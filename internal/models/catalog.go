package models

const (
	CategoryBeginner     = "Beginner"
	CategoryIntermediate = "Intermediate"
	CategoryExpert       = "Expert"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryBeginner, CategoryIntermediate, CategoryExpert:
		return true
	}
	return false
}

// Meal is a reusable catalog entry. A nil OwnerID marks a global entry
// visible to every user.
type Meal struct {
	ID       uint    `gorm:"primaryKey"`
	OwnerID  *uint   `gorm:"index"`
	MealName string  `gorm:"not null"`
	Protein  float64 `gorm:"not null"`
	Calories float64 `gorm:"not null"`
}

type Workout struct {
	ID             uint    `gorm:"primaryKey"`
	OwnerID        *uint   `gorm:"index"`
	WorkoutName    string  `gorm:"not null"`
	Reps           int     `gorm:"not null"`
	CaloriesBurned float64 `gorm:"not null"`
	Category       string  `gorm:"not null;default:Beginner"`
}
