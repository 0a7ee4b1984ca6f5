// ABOUTME: CLI calendar view: training dates and one day's logs.
// ABOUTME: Runs the orphaned-log repair pass opportunistically on focus.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar [date]",
	Aliases: []string{"cal"},
	Short:   "Show training dates, or one day's logs",
	Long: `Without arguments, list every date that has at least one log.
With a date (YYYY-MM-DD), show that day's logs with their sets.

Opening the calendar also deletes logs whose exercise no longer
exists, repairing any write that bypassed cascade deletion.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if n, err := store.CleanupOrphanedLogs(); err == nil && n > 0 {
			color.Yellow("Repaired %d orphaned logs", n)
		}

		if len(args) == 0 {
			dates, err := store.GetDatesWithLogs()
			if err != nil {
				return fmt.Errorf("failed to load dates: %w", err)
			}
			if len(dates) == 0 {
				fmt.Println("No training days yet.")
				return nil
			}
			for _, date := range dates {
				fmt.Println(date)
			}
			return nil
		}

		logs, err := store.GetLogsWithExerciseInfo(args[0])
		if err != nil {
			return fmt.Errorf("failed to load logs: %w", err)
		}
		if len(logs) == 0 {
			fmt.Println("No logs on that date.")
			return nil
		}
		for _, log := range logs {
			group := ""
			if log.MuscleGroup != nil {
				group = " [" + *log.MuscleGroup + "]"
			}
			fmt.Printf("%s%s\n", log.ExerciseName, group)
			for _, set := range log.Sets {
				fmt.Printf("  %d: %s\n", set.Order, formatSet(set))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
