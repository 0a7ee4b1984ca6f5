// ABOUTME: CLI commands for workouts (training programs).
// ABOUTME: Add, list, rename, remove, and reorder.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mlgx/liftlog/internal/models"
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage workouts (training programs)",
}

var workoutAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := models.NewWorkout(args[0])
		if err := store.CreateWorkout(w); err != nil {
			return fmt.Errorf("failed to create workout: %w", err)
		}
		color.Green("✓ Added workout %q", w.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(w.ID))
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts in manual order",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := store.ListWorkouts()
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts yet.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, w := range workouts {
			fmt.Printf("%d  %s  %s\n", w.Order, w.Name, faint.Sprint(w.ID))
		}
		return nil
	},
}

var workoutRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a workout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.UpdateWorkout(id, args[1]); err != nil {
			return fmt.Errorf("failed to rename workout: %w", err)
		}
		color.Green("✓ Renamed workout")
		return nil
	},
}

var workoutRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a workout and everything under it",
	Long: `Delete a workout by id.

Its sessions, their exercises, and all logs and sets cascade with it.
There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.DeleteWorkout(id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		color.Yellow("✗ Deleted workout")
		return nil
	},
}

var workoutReorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Reorder workouts",
	Long: `Rewrite the manual order of workouts to match the given id sequence.

Pass the COMPLETE list of workout ids in the desired order; ids left out
keep their old order values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		if err := store.ReorderWorkouts(ids); err != nil {
			return fmt.Errorf("failed to reorder workouts: %w", err)
		}
		color.Green("✓ Reordered %d workouts", len(ids))
		return nil
	},
}

func init() {
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutRenameCmd, workoutRmCmd, workoutReorderCmd)
	rootCmd.AddCommand(workoutCmd)
}
