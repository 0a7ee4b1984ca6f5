// ABOUTME: CLI command for training statistics.
// ABOUTME: Weekly summary, most-logged exercises, last workout date.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsTop int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		weekly, err := store.GetWeeklyStats()
		if err != nil {
			return fmt.Errorf("failed to load weekly stats: %w", err)
		}

		bold := color.New(color.Bold)
		bold.Println("Last 7 days")
		fmt.Printf("  days trained: %d\n", weekly.Days)
		fmt.Printf("  sets:         %d\n", weekly.Sets)
		fmt.Printf("  volume:       %.1f\n", weekly.TotalVolume)

		last, err := store.GetLastWorkoutDate()
		if err != nil {
			return fmt.Errorf("failed to load last workout date: %w", err)
		}
		if last == "" {
			fmt.Println("\nNo workouts recorded yet.")
			return nil
		}
		fmt.Printf("\nLast workout: %s\n", last)

		top, err := store.GetTopExercises(statsTop)
		if err != nil {
			return fmt.Errorf("failed to load top exercises: %w", err)
		}
		if len(top) > 0 {
			bold.Println("\nMost logged")
			for _, u := range top {
				fmt.Printf("  %3d  %s\n", u.LogCount, u.ExerciseName)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 5, "how many exercises to rank")
	rootCmd.AddCommand(statsCmd)
}
