// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mlgx/liftlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants to read and update your training data through a
standardized protocol. The server communicates via stdin/stdout.

AVAILABLE TOOLS:

  log_set            Record one set for an exercise
  list_workouts      List workouts with sessions and exercises
  exercise_history   Logged history for an exercise
  day_logs           Everything logged on a date
  weekly_stats       Last 7 days of training stats
  top_exercises      Most frequently logged exercises
  last_workout_date  Date of the most recent log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
