package services

import (
	"errors"
	"fmt"

	"github.com/ogould/fittrack/internal/models"
)

var (
	ErrInvalidGender        = errors.New("invalid gender")
	ErrInvalidActivityLevel = errors.New("invalid activity level")
	ErrInvalidBodyMetrics   = errors.New("invalid body metrics")
	ErrInvalidGoal          = errors.New("invalid goal")
	ErrInvalidExperience    = errors.New("invalid experience level")
)

type ProfileRepository interface {
	Upsert(profile *models.Profile) error
	FindByUser(userID uint) (models.Profile, error)
	HasCompletedSetup(userID uint) (bool, error)
	SaveGoal(userID uint, goal string, recommendedCalories float64, experienceLevel string) error
}

type ProfileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// CompleteSetup validates the body metrics, derives BMR and TDEE, and
// upserts the profile. Repeating setup overwrites the previous metrics for
// the same user, never creating a second row.
func (service *ProfileService) CompleteSetup(userID uint, weight float64, height float64, age int, gender string, activityLevel string) (models.Profile, error) {
	if weight <= 0 || height <= 0 || age <= 0 {
		return models.Profile{}, ErrInvalidBodyMetrics
	}
	if !models.ValidGender(gender) {
		return models.Profile{}, ErrInvalidGender
	}
	if !models.ValidActivityLevel(activityLevel) {
		return models.Profile{}, ErrInvalidActivityLevel
	}

	bmr := CalculateBMR(weight, height, age, gender)
	profile := models.Profile{
		UserID:        userID,
		Weight:        weight,
		Height:        height,
		Age:           age,
		Gender:        gender,
		ActivityLevel: activityLevel,
		BMR:           bmr,
		TDEE:          CalculateTDEE(bmr, activityLevel),
	}
	if err := service.profiles.Upsert(&profile); err != nil {
		return models.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

func (service *ProfileService) HasCompletedSetup(userID uint) (bool, error) {
	return service.profiles.HasCompletedSetup(userID)
}

func (service *ProfileService) Profile(userID uint) (models.Profile, error) {
	return service.profiles.FindByUser(userID)
}

// SelectGoal stores the goal with the calorie target derived from the
// stored TDEE. Requires completed onboarding.
func (service *ProfileService) SelectGoal(userID uint, goal string, experienceLevel string) (float64, error) {
	if !models.ValidGoal(goal) {
		return 0, ErrInvalidGoal
	}
	if !models.ValidCategory(experienceLevel) {
		return 0, ErrInvalidExperience
	}

	profile, err := service.profiles.FindByUser(userID)
	if err != nil {
		return 0, err
	}

	recommended := RecommendedCalories(profile.TDEE, goal)
	if err := service.profiles.SaveGoal(userID, goal, recommended, experienceLevel); err != nil {
		return 0, err
	}
	return recommended, nil
}
