package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	workoutListCategory    string
	workoutHistoryCategory string
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Browse the workout catalog and log workouts",
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog workouts visible to you",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		workouts, err := catalogService.WorkoutsVisibleToUser(current.UserID, workoutListCategory)
		if err != nil {
			return err
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts in the catalog yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, workout := range workouts {
			fmt.Printf("%s %-24s %3d reps %6.0f kcal %s\n",
				faint.Sprintf("#%-4d", workout.ID), workout.WorkoutName,
				workout.Reps, workout.CaloriesBurned, faint.Sprint(workout.Category))
		}
		return nil
	},
}

var workoutLogCmd = &cobra.Command{
	Use:   "log <workout-id>",
	Short: "Record a catalog workout as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		workoutID, err := parseID(args[0])
		if err != nil {
			return err
		}

		entry, err := logService.LogWorkout(current.UserID, workoutID)
		if err != nil {
			return err
		}

		color.Green("✓ Logged %s (%d reps, %.0f kcal burned)",
			entry.WorkoutName, entry.Reps, entry.CaloriesBurned)
		return nil
	},
}

var workoutHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your workout log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		entries, err := logService.WorkoutLog(current.UserID, workoutHistoryCategory)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Nothing logged yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, entry := range entries {
			fmt.Printf("%s %-24s %3d reps %6.0f kcal %s\n",
				faint.Sprintf("#%-4d", entry.ID), entry.WorkoutName,
				entry.Reps, entry.CaloriesBurned, faint.Sprint(entry.Category))
		}
		return nil
	},
}

var workoutRemoveCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Remove an entry from your workout log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		entryID, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := logService.DeleteWorkoutEntry(entryID, current.UserID); err != nil {
			return err
		}

		fmt.Println("Removed.")
		return nil
	},
}

func init() {
	workoutListCmd.Flags().StringVar(&workoutListCategory, "category", "",
		`filter by category: "Beginner", "Intermediate" or "Expert"`)
	workoutHistoryCmd.Flags().StringVar(&workoutHistoryCategory, "category", "", "filter by category")
	workoutCmd.AddCommand(workoutListCmd, workoutLogCmd, workoutHistoryCmd, workoutRemoveCmd)
	rootCmd.AddCommand(workoutCmd)
}
