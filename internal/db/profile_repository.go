package db

import (
	"errors"

	"github.com/ogould/fittrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// Upsert inserts the profile or overwrites the existing row for the same
// user in one atomic statement. Setup is always marked completed; goal
// fields are left untouched on conflict so re-running onboarding does not
// wipe a previously selected goal.
func (repo *ProfileRepository) Upsert(profile *models.Profile) error {
	profile.SetupCompleted = true
	err := repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"weight", "height", "age", "gender", "activity_level",
			"bmr", "tdee", "setup_completed",
		}),
	}).Create(profile).Error
	return translateError(err)
}

func (repo *ProfileRepository) FindByUser(userID uint) (models.Profile, error) {
	var profile models.Profile
	err := repo.database.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		return models.Profile{}, translateError(err)
	}
	return profile, nil
}

func (repo *ProfileRepository) HasCompletedSetup(userID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Profile{}).
		Where("user_id = ? AND setup_completed = ?", userID, true).
		Count(&matched).Error; err != nil {
		return false, translateError(err)
	}
	return matched > 0, nil
}

// SaveGoal updates the goal fields of an existing profile. A user who has
// not completed onboarding has no profile row, which is ErrProfileNotFound.
func (repo *ProfileRepository) SaveGoal(userID uint, goal string, recommendedCalories float64, experienceLevel string) error {
	result := repo.database.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"goal":                 goal,
			"recommended_calories": recommendedCalories,
			"experience_level":     experienceLevel,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
