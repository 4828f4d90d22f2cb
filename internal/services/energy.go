package services

import "github.com/ogould/fittrack/internal/models"

// Energy formulas: revised Harris-Benedict BMR, standard activity
// multipliers for TDEE, and a flat 500 kcal adjustment per goal.

const goalCalorieAdjustment = 500

func CalculateBMR(weight float64, height float64, age int, gender string) float64 {
	if gender == models.GenderMale {
		return 88.36 + 13.4*weight + 4.8*height - 5.7*float64(age)
	}
	return 447.6 + 9.2*weight + 3.1*height - 4.3*float64(age)
}

func CalculateTDEE(bmr float64, activityLevel string) float64 {
	switch activityLevel {
	case models.ActivitySedentary:
		return bmr * 1.2
	case models.ActivityLight:
		return bmr * 1.375
	case models.ActivityModerate:
		return bmr * 1.55
	case models.ActivityVeryActive:
		return bmr * 1.725
	}
	return bmr
}

func RecommendedCalories(tdee float64, goal string) float64 {
	switch goal {
	case models.GoalLose:
		return tdee - goalCalorieAdjustment
	case models.GoalGain:
		return tdee + goalCalorieAdjustment
	}
	return tdee
}
