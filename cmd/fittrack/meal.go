package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var mealLogQuantity int

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Browse the meal catalog and log meals",
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog meals visible to you",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		meals, err := catalogService.MealsVisibleToUser(current.UserID)
		if err != nil {
			return err
		}
		if len(meals) == 0 {
			fmt.Println("No meals in the catalog yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, meal := range meals {
			scope := "global"
			if meal.OwnerID != nil {
				scope = "yours"
			}
			fmt.Printf("%s %-24s %6.0f kcal %5.1f g protein %s\n",
				faint.Sprintf("#%-4d", meal.ID), meal.MealName,
				meal.Calories, meal.Protein, faint.Sprint(scope))
		}
		return nil
	},
}

var mealLogCmd = &cobra.Command{
	Use:   "log <meal-id>",
	Short: "Add a catalog meal to your log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		mealID, err := parseID(args[0])
		if err != nil {
			return err
		}

		entry, err := logService.LogMeal(current.UserID, mealID, mealLogQuantity)
		if err != nil {
			return err
		}

		color.Green("✓ Logged %s ×%d (%.0f kcal)", entry.MealName, entry.Quantity, entry.Calories)
		return nil
	},
}

var mealTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show your meal log and running totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentSession()
		if err != nil {
			return err
		}

		entries, err := logService.MealLog(current.UserID)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Nothing logged yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, entry := range entries {
			fmt.Printf("%s %-24s ×%-2d %6.0f kcal %5.1f g protein\n",
				faint.Sprintf("#%-4d", entry.ID), entry.MealName, entry.Quantity,
				entry.Calories*float64(entry.Quantity), entry.Protein*float64(entry.Quantity))
		}

		totals, err := logService.MealTotals(current.UserID)
		if err != nil {
			return err
		}
		fmt.Printf("Total: %.0f kcal, %.1f g protein\n", totals.Calories, totals.Protein)

		profile, err := profileService.Profile(current.UserID)
		if err == nil && profile.RecommendedCalories > 0 {
			fmt.Printf("Target: %.0f kcal\n", profile.RecommendedCalories)
		}
		return nil
	},
}

var mealRemoveCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Remove an entry from your meal log",
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
		if err := logService.DeleteMealEntry(entryID, current.UserID); err != nil {
			return err
		}

		fmt.Println("Removed.")
		return nil
	},
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id: %s", raw)
	}
	return uint(id), nil
}

func init() {
	mealLogCmd.Flags().IntVar(&mealLogQuantity, "quantity", 1, "number of servings")
	mealCmd.AddCommand(mealListCmd, mealLogCmd, mealTodayCmd, mealRemoveCmd)
	rootCmd.AddCommand(mealCmd)
}
