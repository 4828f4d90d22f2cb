package services

import (
	"errors"
	"math"
	"testing"

	"github.com/ogould/fittrack/internal/db"
	"github.com/ogould/fittrack/internal/models"
)

type stubProfileRepo struct {
	profile     *models.Profile
	upsertErr   error
	savedGoal   string
	savedTarget float64
	savedLevel  string
}

func (stub *stubProfileRepo) Upsert(profile *models.Profile) error {
	if stub.upsertErr != nil {
		return stub.upsertErr
	}
	profile.SetupCompleted = true
	stored := *profile
	stub.profile = &stored
	return nil
}

func (stub *stubProfileRepo) FindByUser(uint) (models.Profile, error) {
	if stub.profile == nil {
		return models.Profile{}, db.ErrProfileNotFound
	}
	return *stub.profile, nil
}

func (stub *stubProfileRepo) HasCompletedSetup(uint) (bool, error) {
	return stub.profile != nil && stub.profile.SetupCompleted, nil
}

func (stub *stubProfileRepo) SaveGoal(userID uint, goal string, recommendedCalories float64, experienceLevel string) error {
	if stub.profile == nil {
		return db.ErrProfileNotFound
	}
	stub.savedGoal = goal
	stub.savedTarget = recommendedCalories
	stub.savedLevel = experienceLevel
	return nil
}

func TestCompleteSetupValidatesMetrics(t *testing.T) {
	service := NewProfileService(&stubProfileRepo{})

	tests := []struct {
		name          string
		weight        float64
		height        float64
		age           int
		gender        string
		activityLevel string
		wantErr       error
	}{
		{"zero weight", 0, 165, 30, models.GenderFemale, models.ActivitySedentary, ErrInvalidBodyMetrics},
		{"negative height", 60, -1, 30, models.GenderFemale, models.ActivitySedentary, ErrInvalidBodyMetrics},
		{"zero age", 60, 165, 0, models.GenderFemale, models.ActivitySedentary, ErrInvalidBodyMetrics},
		{"unknown gender", 60, 165, 30, "Other", models.ActivitySedentary, ErrInvalidGender},
		{"unknown activity", 60, 165, 30, models.GenderFemale, "Couch", ErrInvalidActivityLevel},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := service.CompleteSetup(1, test.weight, test.height, test.age, test.gender, test.activityLevel)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("CompleteSetup() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestCompleteSetupDerivesAndStoresEnergyValues(t *testing.T) {
	repo := &stubProfileRepo{}
	service := NewProfileService(repo)

	profile, err := service.CompleteSetup(1, 60, 165, 30, models.GenderFemale, models.ActivitySedentary)
	if err != nil {
		t.Fatalf("CompleteSetup() unexpected error: %v", err)
	}

	wantBMR := 447.6 + 9.2*60 + 3.1*165 - 4.3*30
	if math.Abs(profile.BMR-wantBMR) > 0.001 {
		t.Fatalf("BMR = %v, want %v", profile.BMR, wantBMR)
	}
	if math.Abs(profile.TDEE-wantBMR*1.2) > 0.001 {
		t.Fatalf("TDEE = %v, want %v", profile.TDEE, wantBMR*1.2)
	}
	if repo.profile == nil {
		t.Fatal("profile was never upserted")
	}
}

func TestSelectGoalRequiresCompletedSetup(t *testing.T) {
	service := NewProfileService(&stubProfileRepo{})

	_, err := service.SelectGoal(1, models.GoalLose, models.CategoryBeginner)
	if !errors.Is(err, db.ErrProfileNotFound) {
		t.Fatalf("SelectGoal() without profile error = %v, want ErrProfileNotFound", err)
	}
}

func TestSelectGoalDerivesTargetFromStoredTDEE(t *testing.T) {
	repo := &stubProfileRepo{profile: &models.Profile{UserID: 1, TDEE: 1560, SetupCompleted: true}}
	service := NewProfileService(repo)

	if _, err := service.SelectGoal(1, "Shred", models.CategoryBeginner); !errors.Is(err, ErrInvalidGoal) {
		t.Fatalf("invalid goal error = %v, want ErrInvalidGoal", err)
	}
	if _, err := service.SelectGoal(1, models.GoalLose, "Pro"); !errors.Is(err, ErrInvalidExperience) {
		t.Fatalf("invalid experience error = %v, want ErrInvalidExperience", err)
	}

	recommended, err := service.SelectGoal(1, models.GoalLose, models.CategoryBeginner)
	if err != nil {
		t.Fatalf("SelectGoal() unexpected error: %v", err)
	}
	if recommended != 1060 {
		t.Fatalf("recommended = %v, want 1060", recommended)
	}
	if repo.savedGoal != models.GoalLose || repo.savedTarget != 1060 || repo.savedLevel != models.CategoryBeginner {
		t.Fatalf("goal not persisted as expected: %q %v %q", repo.savedGoal, repo.savedTarget, repo.savedLevel)
	}
}
