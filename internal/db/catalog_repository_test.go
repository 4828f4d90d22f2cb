package db

import (
	"errors"
	"testing"

	"github.com/ogould/fittrack/internal/models"
)

func TestCreateMealRejectsDuplicateNamePerOwner(t *testing.T) {
	repos := openTestRepositories(t)
	user := createTestUser(t, repos, "alice")

	global := models.Meal{MealName: "Oatmeal", Protein: 5, Calories: 150}
	if err := repos.Meals.Create(&global); err != nil {
		t.Fatalf("create global meal: %v", err)
	}

	duplicate := models.Meal{MealName: "Oatmeal", Protein: 6, Calories: 160}
	if err := repos.Meals.Create(&duplicate); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate global name error = %v, want ErrDuplicateName", err)
	}

	// The same name under a different owner is a separate namespace.
	personal := models.Meal{OwnerID: uintPtr(user.ID), MealName: "Oatmeal", Protein: 8, Calories: 200}
	if err := repos.Meals.Create(&personal); err != nil {
		t.Fatalf("create personal meal with same name: %v", err)
	}

	samePersonal := models.Meal{OwnerID: uintPtr(user.ID), MealName: "Oatmeal", Protein: 9, Calories: 210}
	if err := repos.Meals.Create(&samePersonal); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("duplicate personal name error = %v, want ErrDuplicateName", err)
	}
}

func TestListVisibleToUserMergesGlobalAndOwnedMeals(t *testing.T) {
	repos := openTestRepositories(t)
	alice := createTestUser(t, repos, "alice")
	bob := createTestUser(t, repos, "bob")

	seeds := []models.Meal{
		{MealName: "Oatmeal", Protein: 5, Calories: 150},
		{OwnerID: uintPtr(alice.ID), MealName: "Protein shake", Protein: 30, Calories: 220},
		{OwnerID: uintPtr(bob.ID), MealName: "Burrito", Protein: 20, Calories: 550},
	}
	for index := range seeds {
		if err := repos.Meals.Create(&seeds[index]); err != nil {
			t.Fatalf("seed meal %q: %v", seeds[index].MealName, err)
		}
	}

	visible, err := repos.Meals.ListVisibleToUser(alice.ID)
	if err != nil {
		t.Fatalf("ListVisibleToUser() error: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible meals, got %d", len(visible))
	}
	if visible[0].MealName != "Oatmeal" || visible[1].MealName != "Protein shake" {
		t.Fatalf("visible meals out of order: %q, %q", visible[0].MealName, visible[1].MealName)
	}
}

func TestDeleteMealRequiresMatchingOwner(t *testing.T) {
	repos := openTestRepositories(t)
	alice := createTestUser(t, repos, "alice")
	bob := createTestUser(t, repos, "bob")

	meal := models.Meal{OwnerID: uintPtr(alice.ID), MealName: "Protein shake", Protein: 30, Calories: 220}
	if err := repos.Meals.Create(&meal); err != nil {
		t.Fatalf("create meal: %v", err)
	}

	// A mismatched owner must not delete, and must not be an error either.
	if err := repos.Meals.Delete(meal.ID, uintPtr(bob.ID)); err != nil {
		t.Fatalf("delete with wrong owner: %v", err)
	}
	if _, err := repos.Meals.FindByID(meal.ID); err != nil {
		t.Fatalf("meal must survive mismatched delete: %v", err)
	}

	if err := repos.Meals.Delete(meal.ID, uintPtr(alice.ID)); err != nil {
		t.Fatalf("delete with matching owner: %v", err)
	}
	if _, err := repos.Meals.FindByID(meal.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("FindByID() after delete error = %v, want ErrNotFound", err)
	}
}

func TestWorkoutListsFilterByCategory(t *testing.T) {
	repos := openTestRepositories(t)
	user := createTestUser(t, repos, "alice")

	seeds := []models.Workout{
		{WorkoutName: "Push-ups", Reps: 20, CaloriesBurned: 50, Category: models.CategoryBeginner},
		{WorkoutName: "Deadlift", Reps: 5, CaloriesBurned: 90, Category: models.CategoryExpert},
		{OwnerID: uintPtr(user.ID), WorkoutName: "Evening run", Reps: 1, CaloriesBurned: 300, Category: models.CategoryExpert},
	}
	for index := range seeds {
		if err := repos.Workouts.Create(&seeds[index]); err != nil {
			t.Fatalf("seed workout %q: %v", seeds[index].WorkoutName, err)
		}
	}

	expert, err := repos.Workouts.ListVisibleToUser(user.ID, models.CategoryExpert)
	if err != nil {
		t.Fatalf("ListVisibleToUser() error: %v", err)
	}
	if len(expert) != 2 {
		t.Fatalf("expected 2 expert workouts, got %d", len(expert))
	}

	all, err := repos.Workouts.ListVisibleToUser(user.ID, "")
	if err != nil {
		t.Fatalf("ListVisibleToUser() without filter error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 workouts without filter, got %d", len(all))
	}

	globalBeginner, err := repos.Workouts.ListForOwner(nil, models.CategoryBeginner)
	if err != nil {
		t.Fatalf("ListForOwner() error: %v", err)
	}
	if len(globalBeginner) != 1 || globalBeginner[0].WorkoutName != "Push-ups" {
		t.Fatalf("unexpected global beginner list: %+v", globalBeginner)
	}
}

func TestCreateWorkoutRejectsInvalidCategory(t *testing.T) {
	repos := openTestRepositories(t)

	workout := models.Workout{WorkoutName: "Push-ups", Reps: 20, CaloriesBurned: 50, Category: "Impossible"}
	err := repos.Workouts.Create(&workout)
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("invalid category error = %v, want ErrConstraintViolation", err)
	}
}
