// ABOUTME: Root Cobra command for liftlog CLI.
// ABOUTME: Opens the store and seeds the template catalogue before any command.
package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mlgx/liftlog/internal/config"
	"github.com/mlgx/liftlog/internal/storage"
)

var store *storage.DB

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "Offline-first training log",
	Long: `Liftlog is a local, offline-first training log.

It stores a hierarchy of workouts (programs), sessions (training days),
exercises, and per-date logs with their sets, plus a user profile with
body measurements, saved timers, and a reusable exercise catalogue.

QUICK START:

  $ liftlog workout add "Push Pull Legs"     # Create a program
  $ liftlog session add <workout-id> "Push"  # Add a training day
  $ liftlog template list --group Pectoraux  # Browse the catalogue
  $ liftlog exercise from-template <template-id> <session-id>
  $ liftlog log add <exercise-id> --reps 8 --weight 80
  $ liftlog stats                            # Weekly summary

DATA STORAGE:

  Data lives in a single SQLite file, ~/.local/share/liftlog/liftlog.db
  by default. Set LIFTLOG_DB (or data_dir in the config file) to move it.
  The schema migrates itself on every launch; a migration failure aborts
  startup rather than running against a half-migrated store.

MCP INTEGRATION:

  Run 'liftlog mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// A .env file may carry LIFTLOG_DB; absence is fine.
		_ = godotenv.Load()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		store, err = storage.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		if err := store.InitializeDefaultTemplates(); err != nil {
			return fmt.Errorf("seed exercise catalogue: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
