// ABOUTME: CLI commands for saved rest/interval timers.
// ABOUTME: Timers share the manual-ordering contract of the other lists.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mlgx/liftlog/internal/models"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Manage saved timers",
}

var timerAddCmd = &cobra.Command{
	Use:   "add <name> <seconds>",
	Short: "Add a timer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[1])
		if err != nil || seconds <= 0 {
			return fmt.Errorf("invalid duration: %s", args[1])
		}
		t := models.NewTimer(args[0], seconds)
		if err := store.CreateTimer(t); err != nil {
			return fmt.Errorf("failed to create timer: %w", err)
		}
		color.Green("✓ Added timer %q (%ds)", t.Name, t.Duration)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(t.ID))
		return nil
	},
}

var timerListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List timers in manual order",
	RunE: func(cmd *cobra.Command, args []string) error {
		timers, err := store.ListTimers()
		if err != nil {
			return fmt.Errorf("failed to list timers: %w", err)
		}
		if len(timers) == 0 {
			fmt.Println("No timers yet.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, t := range timers {
			fmt.Printf("%d  %s  %ds  %s\n", t.Order, t.Name, t.Duration, faint.Sprint(t.ID))
		}
		return nil
	},
}

var timerSetCmd = &cobra.Command{
	Use:   "set <id> <name> <seconds>",
	Short: "Update a timer",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		seconds, err := strconv.Atoi(args[2])
		if err != nil || seconds <= 0 {
			return fmt.Errorf("invalid duration: %s", args[2])
		}
		if err := store.UpdateTimer(id, args[1], seconds); err != nil {
			return fmt.Errorf("failed to update timer: %w", err)
		}
		color.Green("✓ Updated timer")
		return nil
	},
}

var timerRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a timer",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.DeleteTimer(id); err != nil {
			return fmt.Errorf("failed to delete timer: %w", err)
		}
		color.Yellow("✗ Deleted timer")
		return nil
	},
}

var timerReorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Reorder timers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		if err := store.ReorderTimers(ids); err != nil {
			return fmt.Errorf("failed to reorder timers: %w", err)
		}
		color.Green("✓ Reordered %d timers", len(ids))
		return nil
	},
}

func init() {
	timerCmd.AddCommand(timerAddCmd, timerListCmd, timerSetCmd, timerRmCmd, timerReorderCmd)
	rootCmd.AddCommand(timerCmd)
}
