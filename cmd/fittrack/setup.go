package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/ogould/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	setupWeight   float64
	setupHeight   float64
	setupAge      int
	setupGender   string
	setupActivity string
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Enter body metrics and compute BMR/TDEE",
	Long: `Complete the body-metric onboarding. Weight is in kilograms, height in
centimeters. Running setup again overwrites the previous metrics.

Activity levels: "Sedentary", "Lightly active", "Moderately active",
"Very active".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		profile, err := profileService.CompleteSetup(
			current.UserID, setupWeight, setupHeight, setupAge, setupGender, setupActivity)
		if err != nil {
			return err
		}

		current.HasCompletedSetup = true
		if err := sessions.Save(current); err != nil {
			return err
		}

		color.Green("✓ Setup complete")
		fmt.Printf("  BMR:  %.0f kcal\n", profile.BMR)
		fmt.Printf("  TDEE: %.0f kcal\n", profile.TDEE)
		fmt.Println("Run 'fittrack goal' to pick a goal.")
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your stored profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		profile, err := profileService.Profile(current.UserID)
		if err != nil {
			return err
		}

		fmt.Printf("Weight:   %.1f kg\n", profile.Weight)
		fmt.Printf("Height:   %.1f cm\n", profile.Height)
		fmt.Printf("Age:      %d\n", profile.Age)
		fmt.Printf("Gender:   %s\n", profile.Gender)
		fmt.Printf("Activity: %s\n", profile.ActivityLevel)
		fmt.Printf("BMR:      %.0f kcal\n", profile.BMR)
		fmt.Printf("TDEE:     %.0f kcal\n", profile.TDEE)
		if profile.Goal != nil {
			fmt.Printf("Goal:     %s (%.0f kcal/day", *profile.Goal, profile.RecommendedCalories)
			if profile.ExperienceLevel != nil {
				fmt.Printf(", %s", *profile.ExperienceLevel)
			}
			fmt.Println(")")
		}
		return nil
	},
}

func init() {
	setupCmd.Flags().Float64Var(&setupWeight, "weight", 0, "weight in kg")
	setupCmd.Flags().Float64Var(&setupHeight, "height", 0, "height in cm")
	setupCmd.Flags().IntVar(&setupAge, "age", 0, "age in years")
	setupCmd.Flags().StringVar(&setupGender, "gender", "", `"Male" or "Female"`)
	setupCmd.Flags().StringVar(&setupActivity, "activity", models.ActivitySedentary, "activity level")
	_ = setupCmd.MarkFlagRequired("weight")
	_ = setupCmd.MarkFlagRequired("height")
	_ = setupCmd.MarkFlagRequired("age")
	_ = setupCmd.MarkFlagRequired("gender")

	rootCmd.AddCommand(setupCmd, profileCmd)
}
