// ABOUTME: CLI commands for sessions (training days) within a workout.
// ABOUTME: Add, list, rename, remove, and reorder.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mlgx/liftlog/internal/models"
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Manage sessions (training days)",
}

var sessionAddCmd = &cobra.Command{
	Use:   "add <workout-id> <name>",
	Short: "Add a session to a workout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		workoutID, err := parseID(args[0])
		if err != nil {
			return err
		}
		s := models.NewSession(workoutID, args[1])
		if err := store.CreateSession(s); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		color.Green("✓ Added session %q", s.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(s.ID))
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list <workout-id>",
	Aliases: []string{"ls"},
	Short:   "List a workout's sessions in manual order",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workoutID, err := parseID(args[0])
		if err != nil {
			return err
		}
		sessions, err := store.GetSessionsByWorkoutID(workoutID)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, s := range sessions {
			fmt.Printf("%d  %s  %s\n", s.Order, s.Name, faint.Sprint(s.ID))
		}
		return nil
	},
}

var sessionRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.UpdateSession(id, args[1]); err != nil {
			return fmt.Errorf("failed to rename session: %w", err)
		}
		color.Green("✓ Renamed session")
		return nil
	},
}

var sessionRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a session and its exercises",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.DeleteSession(id); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		color.Yellow("✗ Deleted session")
		return nil
	},
}

var sessionReorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Reorder one workout's sessions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		if err := store.ReorderSessions(ids); err != nil {
			return fmt.Errorf("failed to reorder sessions: %w", err)
		}
		color.Green("✓ Reordered %d sessions", len(ids))
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionAddCmd, sessionListCmd, sessionRenameCmd, sessionRmCmd, sessionReorderCmd)
	rootCmd.AddCommand(sessionCmd)
}
