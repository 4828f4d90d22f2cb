package models

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

const (
	ActivitySedentary  = "Sedentary"
	ActivityLight      = "Lightly active"
	ActivityModerate   = "Moderately active"
	ActivityVeryActive = "Very active"
)

const (
	GoalLose     = "Lose"
	GoalMaintain = "Maintain"
	GoalGain     = "Gain"
)

// Profile holds the per-user body metrics captured during onboarding.
// BMR and TDEE are stored as computed, not recalculated on read.
type Profile struct {
	ID                  uint    `gorm:"primaryKey"`
	UserID              uint    `gorm:"uniqueIndex;not null"`
	Weight              float64 `gorm:"not null"`
	Height              float64 `gorm:"not null"`
	Age                 int     `gorm:"not null"`
	Gender              string  `gorm:"not null"`
	ActivityLevel       string  `gorm:"not null"`
	BMR                 float64 `gorm:"column:bmr;not null"`
	TDEE                float64 `gorm:"column:tdee;not null"`
	Goal                *string
	RecommendedCalories float64 `gorm:"not null;default:0"`
	ExperienceLevel     *string
	SetupCompleted      bool `gorm:"not null;default:false"`
}

// TableName keeps the legacy table name so existing installs keep working.
func (Profile) TableName() string {
	return "user_data"
}

func ValidGender(gender string) bool {
	return gender == GenderMale || gender == GenderFemale
}

func ValidActivityLevel(level string) bool {
	switch level {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityVeryActive:
		return true
	}
	return false
}

func ValidGoal(goal string) bool {
	switch goal {
	case GoalLose, GoalMaintain, GoalGain:
		return true
	}
	return false
}
