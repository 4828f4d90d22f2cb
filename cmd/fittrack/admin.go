package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/ogould/fittrack/internal/models"
	"github.com/ogould/fittrack/internal/security"
	"github.com/ogould/fittrack/internal/services"
	"github.com/spf13/cobra"
)

var (
	adminOwnerID uint

	adminMealProtein  float64
	adminMealCalories float64

	adminWorkoutReps     int
	adminWorkoutCalories float64
	adminWorkoutCategory string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage catalogs and accounts (admin only)",
}

// adminActor loads the full user record for the admin session; the catalog
// service authorizes against the stored admin flag, not the session copy.
func adminActor() (models.User, error) {
	current, err := requireAdmin()
	if err != nil {
		return models.User{}, err
	}
	return repos.Users.FindByID(current.UserID)
}

// ownerFlag maps the --owner flag to a catalog owner: 0 means the global
// shared catalog.
func ownerFlag() *uint {
	if adminOwnerID == 0 {
		return nil
	}
	owner := adminOwnerID
	return &owner
}

var adminMealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage the meal catalog",
}

var adminMealAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a catalog meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, err := adminActor()
		if err != nil {
			return err
		}

		meal, err := catalogService.AddMeal(actor, ownerFlag(), args[0], adminMealProtein, adminMealCalories)
		if err != nil {
			return err
		}

		color.Green("✓ Meal #%d %q added", meal.ID, meal.MealName)
		return nil
	},
}

var adminMealUpdateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Replace a catalog meal's fields",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, err := adminActor()
		if err != nil {
			return err
		}

		mealID, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := catalogService.UpdateMeal(actor, mealID, args[1], adminMealProtein, adminMealCalories); err != nil {
			return err
		}

		color.Green("✓ Meal #%d updated", mealID)
		return nil
	},
}

var adminMealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a catalog meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, err := adminActor()
		if err != nil {
			return err
		}

		mealID, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := catalogService.DeleteMeal(actor, mealID, ownerFlag()); err != nil {
			return err
		}

		fmt.Println("Deleted (if the id and owner matched).")
		return nil
	},
}

var adminWorkoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Manage the workout catalog",
}

var adminWorkoutAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a catalog workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, err := adminActor()
		if err != nil {
			return err
		}

		workout, err := catalogService.AddWorkout(
			actor, ownerFlag(), args[0], adminWorkoutReps, adminWorkoutCalories, adminWorkoutCategory)
		if err != nil {
			return err
		}

		color.Green("✓ Workout #%d %q added (%s)", workout.ID, workout.WorkoutName, workout.Category)
		return nil
	},
}

var adminWorkoutUpdateCmd = &cobra.Command{
	Use:   "update <id> <name>",
	Short: "Replace a catalog workout's fields",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, err := adminActor()
		if err != nil {
			return err
		}

		workoutID, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := catalogService.UpdateWorkout(
			actor, workoutID, args[1], adminWorkoutReps, adminWorkoutCalories, adminWorkoutCategory); err != nil {
			return err
		}

		color.Green("✓ Workout #%d updated", workoutID)
		return nil
	},
}

var adminWorkoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a catalog workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, err := adminActor()
		if err != nil {
			return err
		}

		workoutID, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := catalogService.DeleteWorkout(actor, workoutID, ownerFlag()); err != nil {
			return err
		}

		fmt.Println("Deleted (if the id and owner matched).")
		return nil
	},
}

var adminUserCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts",
}

var adminUserListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(); err != nil {
			return err
		}

		users, err := repos.Users.ListAll()
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		for _, user := range users {
			role := ""
			if user.IsAdmin {
				role = faint.Sprint(" admin")
			}
			fmt.Printf("%s %s%s\n", faint.Sprintf("#%-4d", user.ID), user.Username, role)
		}
		return nil
	},
}

var adminUserDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Delete an account and everything it owns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := requireAdmin()
		if err != nil {
			return err
		}

		user, err := findUserByUsername(args[0])
		if err != nil {
			return err
		}
		if user.ID == current.UserID {
			return fmt.Errorf("refusing to delete the logged-in account")
		}

		if err := repos.Users.DeleteAccountAndRelatedData(user.ID); err != nil {
			return err
		}

		color.Green("✓ Account %q and all its data deleted", user.Username)
		return nil
	},
}

var adminUserResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <username>",
	Short: "Set a temporary password for an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireAdmin(); err != nil {
			return err
		}

		user, err := findUserByUsername(args[0])
		if err != nil {
			return err
		}

		temporary, err := security.GenerateToken(12)
		if err != nil {
			return fmt.Errorf("generate temporary password: %w", err)
		}
		if err := authService.ChangePassword(user.ID, temporary); err != nil {
			return err
		}

		color.Green("✓ Password reset for %q", user.Username)
		fmt.Printf("Temporary password: %s\n", temporary)
		return nil
	},
}

func findUserByUsername(username string) (models.User, error) {
	return repos.Users.FindByNormalizedUsername(services.NormalizeUsername(username))
}

func init() {
	adminCmd.PersistentFlags().UintVar(&adminOwnerID, "owner", 0,
		"owning user id for catalog entries (0 = global catalog)")

	adminMealAddCmd.Flags().Float64Var(&adminMealProtein, "protein", 0, "protein in grams")
	adminMealAddCmd.Flags().Float64Var(&adminMealCalories, "calories", 0, "calories per serving")
	adminMealUpdateCmd.Flags().Float64Var(&adminMealProtein, "protein", 0, "protein in grams")
	adminMealUpdateCmd.Flags().Float64Var(&adminMealCalories, "calories", 0, "calories per serving")

	adminWorkoutAddCmd.Flags().IntVar(&adminWorkoutReps, "reps", 10, "repetitions")
	adminWorkoutAddCmd.Flags().Float64Var(&adminWorkoutCalories, "calories", 0, "calories burned")
	adminWorkoutAddCmd.Flags().StringVar(&adminWorkoutCategory, "category", models.CategoryBeginner, "difficulty category")
	adminWorkoutUpdateCmd.Flags().IntVar(&adminWorkoutReps, "reps", 10, "repetitions")
	adminWorkoutUpdateCmd.Flags().Float64Var(&adminWorkoutCalories, "calories", 0, "calories burned")
	adminWorkoutUpdateCmd.Flags().StringVar(&adminWorkoutCategory, "category", models.CategoryBeginner, "difficulty category")

	adminMealCmd.AddCommand(adminMealAddCmd, adminMealUpdateCmd, adminMealDeleteCmd)
	adminWorkoutCmd.AddCommand(adminWorkoutAddCmd, adminWorkoutUpdateCmd, adminWorkoutDeleteCmd)
	adminUserCmd.AddCommand(adminUserListCmd, adminUserDeleteCmd, adminUserResetPasswordCmd)
	adminCmd.AddCommand(adminMealCmd, adminWorkoutCmd, adminUserCmd)
	rootCmd.AddCommand(adminCmd)
}
