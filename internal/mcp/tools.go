// ABOUTME: MCP tool implementations for the workout store.
// ABOUTME: Exposes logging, browsing, and stats operations over stdio.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Record one set for an exercise (reps+weight, or duration in seconds)",
	}, s.handleLogSet)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List all workout programs with their sessions and exercises",
	}, s.handleListWorkouts)

	// exercise_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_history",
		Description: "Get the logged history for an exercise, newest first",
	}, s.handleExerciseHistory)

	// day_logs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "day_logs",
		Description: "List everything logged on a given date (defaults to today)",
	}, s.handleDayLogs)

	// weekly_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_stats",
		Description: "Training stats for the last 7 days (active days, sets, total volume)",
	}, s.handleWeeklyStats)

	// top_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "top_exercises",
		Description: "Most frequently logged exercises",
	}, s.handleTopExercises)

	// last_workout_date
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "last_workout_date",
		Description: "Date of the most recent logged workout",
	}, s.handleLastWorkoutDate)
}

// Tool input/output types

type logSetInput struct {
	ExerciseID  string   `json:"exercise_id" jsonschema:"Exercise ID"`
	Date        string   `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Repetitions *int     `json:"repetitions,omitempty" jsonschema:"Repetitions for a weight/reps set"`
	Weight      *float64 `json:"weight,omitempty" jsonschema:"Weight in kg for a weight/reps set"`
	Duration    *int     `json:"duration,omitempty" jsonschema:"Duration in seconds for a time set"`
}

type logSetOutput struct {
	LogID   string `json:"log_id"`
	Date    string `json:"date"`
	Sets    int    `json:"sets"`
	Message string `json:"message"`
}

type exerciseHistoryInput struct {
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise ID"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Max logs (default 20)"`
}

type dayLogsInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type topExercisesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 5)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type workoutNode struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Sessions []sessionNode `json:"sessions"`
}

type sessionNode struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Exercises []exerciseNode `json:"exercises"`
}

type exerciseNode struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	MuscleGroup string `json:"muscle_group,omitempty"`
}

// Tool handlers

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, logSetOutput, error) {
	exerciseID, err := uuid.Parse(input.ExerciseID)
	if err != nil {
		return nil, logSetOutput{}, fmt.Errorf("invalid exercise id: %s", input.ExerciseID)
	}

	date := input.Date
	if date == "" {
		date = models.Today()
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, logSetOutput{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	var set models.SetInput
	switch {
	case input.Duration != nil:
		set = models.NewTimeSet(*input.Duration)
	case input.Repetitions != nil && input.Weight != nil:
		set = models.NewWeightSet(*input.Repetitions, *input.Weight)
	default:
		return nil, logSetOutput{}, fmt.Errorf("provide repetitions and weight, or duration")
	}

	log, err := s.store.AddSetToLog(exerciseID, date, set)
	if err != nil {
		return nil, logSetOutput{}, fmt.Errorf("failed to log set: %w", err)
	}

	return nil, logSetOutput{
		LogID:   log.ID.String(),
		Date:    log.Date,
		Sets:    len(log.Sets),
		Message: fmt.Sprintf("Logged set %d on %s", len(log.Sets), log.Date),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	workouts, err := s.store.ListWorkouts()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}

	out := make([]workoutNode, 0, len(workouts))
	for _, w := range workouts {
		node := workoutNode{ID: w.ID.String(), Name: w.Name}
		sessions, err := s.store.GetSessionsByWorkoutID(w.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
		}
		for _, sess := range sessions {
			sn := sessionNode{ID: sess.ID.String(), Name: sess.Name}
			exercises, err := s.store.GetExercisesBySessionID(sess.ID)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
			}
			for _, e := range exercises {
				en := exerciseNode{ID: e.ID.String(), Name: e.Name, Type: string(e.Type)}
				if e.MuscleGroup != nil {
					en.MuscleGroup = *e.MuscleGroup
				}
				sn.Exercises = append(sn.Exercises, en)
			}
			node.Sessions = append(node.Sessions, sn)
		}
		out = append(out, node)
	}

	return nil, out, nil
}

func (s *Server) handleExerciseHistory(ctx context.Context, req *mcp.CallToolRequest, input exerciseHistoryInput) (*mcp.CallToolResult, any, error) {
	exerciseID, err := uuid.Parse(input.ExerciseID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid exercise id: %s", input.ExerciseID)
	}

	if input.Limit <= 0 {
		input.Limit = 20
	}

	logs, err := s.store.GetLogsByExerciseID(exerciseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get history: %w", err)
	}
	if len(logs) > input.Limit {
		logs = logs[:input.Limit]
	}

	if len(logs) == 0 {
		return nil, map[string]interface{}{"message": "No logs found."}, nil
	}

	return nil, logs, nil
}

func (s *Server) handleDayLogs(ctx context.Context, req *mcp.CallToolRequest, input dayLogsInput) (*mcp.CallToolResult, any, error) {
	date := input.Date
	if date == "" {
		date = models.Today()
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	logs, err := s.store.GetLogsWithExerciseInfo(date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get logs: %w", err)
	}

	if len(logs) == 0 {
		return nil, map[string]interface{}{"message": fmt.Sprintf("Nothing logged on %s.", date)}, nil
	}

	return nil, logs, nil
}

func (s *Server) handleWeeklyStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	stats, err := s.store.GetWeeklyStats()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return nil, stats, nil
}

func (s *Server) handleTopExercises(ctx context.Context, req *mcp.CallToolRequest, input topExercisesInput) (*mcp.CallToolResult, any, error) {
	top, err := s.store.GetTopExercises(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get top exercises: %w", err)
	}

	if len(top) == 0 {
		return nil, map[string]interface{}{"message": "No logs yet."}, nil
	}

	return nil, top, nil
}

func (s *Server) handleLastWorkoutDate(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := s.store.GetLastWorkoutDate()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to get last workout date: %w", err)
	}

	if date == "" {
		return nil, simpleOutput{Message: "No workouts logged yet."}, nil
	}

	return nil, simpleOutput{Message: date}, nil
}
