// ABOUTME: CLI commands for exporting and importing the full store as JSON.
// ABOUTME: Import expects an empty destination; ids come through verbatim.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as JSON",
	Long: `Export every workout, session, exercise, log, set, template, the
profile, measurements, and timers as a single JSON document. Writes to
stdout unless a file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := store.ExportJSON()
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
		if len(args) == 0 {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(args[0], data, 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported to %s", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read export: %w", err)
		}
		if err := store.ImportJSON(raw); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}
		color.Green("✓ Imported %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}
