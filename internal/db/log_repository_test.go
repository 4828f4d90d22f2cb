package db

import (
	"testing"

	"github.com/ogould/fittrack/internal/models"
)

func TestMealLogSurvivesCatalogDeletion(t *testing.T) {
	repos := openTestRepositories(t)
	user := createTestUser(t, repos, "alice")

	meal := models.Meal{MealName: "Oatmeal", Protein: 5, Calories: 150}
	if err := repos.Meals.Create(&meal); err != nil {
		t.Fatalf("create meal: %v", err)
	}

	entry := models.MealLog{
		UserID:   user.ID,
		MealID:   meal.ID,
		MealName: meal.MealName,
		Calories: meal.Calories,
		Protein:  meal.Protein,
		Quantity: 2,
	}
	if err := repos.MealLogs.Create(&entry); err != nil {
		t.Fatalf("create log entry: %v", err)
	}

	if err := repos.Meals.Delete(meal.ID, nil); err != nil {
		t.Fatalf("delete catalog meal: %v", err)
	}

	entries, err := repos.MealLogs.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("ListByUser() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry after catalog deletion, got %d", len(entries))
	}
	logged := entries[0]
	if logged.MealName != "Oatmeal" || logged.Calories != 150 || logged.Protein != 5 || logged.Quantity != 2 {
		t.Fatalf("log entry lost its snapshot values: %+v", logged)
	}
}

func TestDeleteMealLogRequiresMatchingUser(t *testing.T) {
	repos := openTestRepositories(t)
	alice := createTestUser(t, repos, "alice")
	bob := createTestUser(t, repos, "bob")

	entry := models.MealLog{UserID: alice.ID, MealID: 1, MealName: "Oatmeal", Calories: 150, Protein: 5, Quantity: 1}
	if err := repos.MealLogs.Create(&entry); err != nil {
		t.Fatalf("create log entry: %v", err)
	}

	if err := repos.MealLogs.Delete(entry.ID, bob.ID); err != nil {
		t.Fatalf("delete with wrong user: %v", err)
	}
	entries, err := repos.MealLogs.ListByUser(alice.ID)
	if err != nil {
		t.Fatalf("ListByUser() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatal("entry must survive a delete scoped to another user")
	}

	if err := repos.MealLogs.Delete(entry.ID, alice.ID); err != nil {
		t.Fatalf("delete with matching user: %v", err)
	}
	entries, err = repos.MealLogs.ListByUser(alice.ID)
	if err != nil {
		t.Fatalf("ListByUser() after delete error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty log after delete, got %d entries", len(entries))
	}
}

func TestWorkoutLogHistoryFiltersByCategory(t *testing.T) {
	repos := openTestRepositories(t)
	user := createTestUser(t, repos, "alice")

	seeds := []models.WorkoutLog{
		{UserID: user.ID, WorkoutID: 1, WorkoutName: "Push-ups", Reps: 20, CaloriesBurned: 50, Category: models.CategoryBeginner},
		{UserID: user.ID, WorkoutID: 2, WorkoutName: "Deadlift", Reps: 5, CaloriesBurned: 90, Category: models.CategoryExpert},
	}
	for index := range seeds {
		if err := repos.WorkoutLogs.Create(&seeds[index]); err != nil {
			t.Fatalf("seed workout log %q: %v", seeds[index].WorkoutName, err)
		}
	}

	expert, err := repos.WorkoutLogs.ListByUser(user.ID, models.CategoryExpert)
	if err != nil {
		t.Fatalf("ListByUser() error: %v", err)
	}
	if len(expert) != 1 || expert[0].WorkoutName != "Deadlift" {
		t.Fatalf("unexpected expert history: %+v", expert)
	}

	all, err := repos.WorkoutLogs.ListByUser(user.ID, "")
	if err != nil {
		t.Fatalf("ListByUser() without filter error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(all))
	}
}
