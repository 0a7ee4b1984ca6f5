// ABOUTME: CLI commands for exercise logs and sets.
// ABOUTME: 'log add' appends to today's log; 'log edit' replaces the set list.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mlgx/liftlog/internal/models"
)

var (
	logDate    string
	logReps    int
	logWeight  float64
	logSeconds int
	logSets    []string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and browse exercise logs",
}

var logAddCmd = &cobra.Command{
	Use:   "add <exercise-id>",
	Short: "Record one set",
	Long: `Record one set for an exercise.

The set is appended to the exercise's log for the date (today unless
--date is given); the log is created when none exists yet.

EXAMPLES:

  liftlog log add <exercise-id> --reps 8 --weight 80
  liftlog log add <exercise-id> --seconds 60
  liftlog log add <exercise-id> --reps 5 --weight 100 --date 2025-01-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := parseID(args[0])
		if err != nil {
			return err
		}
		date := logDate
		if date == "" {
			date = models.Today()
		}

		var set models.SetInput
		switch {
		case logSeconds > 0:
			set = models.NewTimeSet(logSeconds)
		case logReps > 0:
			set = models.NewWeightSet(logReps, logWeight)
		default:
			return fmt.Errorf("give either --reps/--weight or --seconds")
		}

		log, err := store.AddSetToLog(exerciseID, date, set)
		if err != nil {
			return fmt.Errorf("failed to record set: %w", err)
		}
		color.Green("✓ Recorded set %d for %s", len(log.Sets), date)
		return nil
	},
}

var logEditCmd = &cobra.Command{
	Use:   "edit <log-id>",
	Short: "Replace a log's date and set list",
	Long: `Replace a log's date and its entire set list.

Every --set becomes one set, in flag order: REPSxWEIGHT for weight sets
(8x80, 6x72.5) or SECONDSs for time sets (60s). The previous sets are
discarded and the new ones get fresh ids, so cached set ids go stale.

EXAMPLES:

  liftlog log edit <log-id> --date 2025-01-01 --set 8x80 --set 6x85`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logID, err := parseID(args[0])
		if err != nil {
			return err
		}
		date := logDate
		if date == "" {
			date = models.Today()
		}

		sets := make([]models.SetInput, 0, len(logSets))
		for _, spec := range logSets {
			set, err := parseSetSpec(spec)
			if err != nil {
				return err
			}
			sets = append(sets, set)
		}

		if err := store.UpdateLog(logID, date, sets); err != nil {
			return fmt.Errorf("failed to edit log: %w", err)
		}
		color.Green("✓ Replaced log with %d sets", len(sets))
		return nil
	},
}

var logHistoryCmd = &cobra.Command{
	Use:   "history <exercise-id>",
	Short: "Show an exercise's logs, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := parseID(args[0])
		if err != nil {
			return err
		}
		logs, err := store.GetLogsByExerciseID(exerciseID)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(logs) == 0 {
			fmt.Println("No logs yet.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, log := range logs {
			fmt.Printf("%s  %s\n", log.Date, faint.Sprint(log.ID))
			for _, set := range log.Sets {
				fmt.Printf("  %d: %s\n", set.Order, formatSet(set))
			}
		}
		return nil
	},
}

var logRmCmd = &cobra.Command{
	Use:     "rm <log-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a log and its sets",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logID, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.DeleteLog(logID); err != nil {
			return fmt.Errorf("failed to delete log: %w", err)
		}
		color.Yellow("✗ Deleted log")
		return nil
	},
}

func init() {
	logAddCmd.Flags().StringVar(&logDate, "date", "", "log date (YYYY-MM-DD, default today)")
	logAddCmd.Flags().IntVar(&logReps, "reps", 0, "repetitions")
	logAddCmd.Flags().Float64Var(&logWeight, "weight", 0, "weight")
	logAddCmd.Flags().IntVar(&logSeconds, "seconds", 0, "duration in seconds (time exercises)")

	logEditCmd.Flags().StringVar(&logDate, "date", "", "log date (YYYY-MM-DD, default today)")
	logEditCmd.Flags().StringArrayVar(&logSets, "set", nil, "set spec, repeatable (8x80 or 60s)")

	logCmd.AddCommand(logAddCmd, logEditCmd, logHistoryCmd, logRmCmd)
	rootCmd.AddCommand(logCmd)
}
