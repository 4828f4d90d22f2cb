package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/ogould/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var goalExperience string

var goalCmd = &cobra.Command{
	Use:   "goal <Lose|Maintain|Gain>",
	Short: "Pick a goal and get your calorie target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		goal := args[0]
		recommended, err := profileService.SelectGoal(current.UserID, goal, goalExperience)
		if err != nil {
			return err
		}

		current.SelectedGoal = goal
		if err := sessions.Save(current); err != nil {
			return err
		}

		color.Green("✓ Goal saved: %s (%s)", goal, goalExperience)
		fmt.Printf("Recommended daily intake: %.0f kcal\n", recommended)
		return nil
	},
}

func init() {
	goalCmd.Flags().StringVar(&goalExperience, "experience", models.CategoryBeginner,
		`experience level: "Beginner", "Intermediate" or "Expert"`)
	rootCmd.AddCommand(goalCmd)
}
