// ABOUTME: Small shared helpers for CLI commands.
// ABOUTME: ID parsing and set-spec parsing live here.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mlgx/liftlog/internal/models"
)

// parseID parses a command argument as an entity id.
func parseID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// parseIDs parses a list of arguments as entity ids, preserving order.
func parseIDs(args []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseSetSpec parses one --set value: "REPSxWEIGHT" for weight sets
// (e.g. "8x80" or "8x72.5") or "SECONDSs" for time sets (e.g. "60s").
func parseSetSpec(spec string) (models.SetInput, error) {
	if strings.HasSuffix(spec, "s") {
		seconds, err := strconv.Atoi(strings.TrimSuffix(spec, "s"))
		if err != nil || seconds <= 0 {
			return models.SetInput{}, fmt.Errorf("invalid set %q, expected e.g. 60s", spec)
		}
		return models.NewTimeSet(seconds), nil
	}

	parts := strings.SplitN(spec, "x", 2)
	if len(parts) != 2 {
		return models.SetInput{}, fmt.Errorf("invalid set %q, expected REPSxWEIGHT or SECONDSs", spec)
	}
	reps, err := strconv.Atoi(parts[0])
	if err != nil || reps <= 0 {
		return models.SetInput{}, fmt.Errorf("invalid reps in set %q", spec)
	}
	weight, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || weight < 0 {
		return models.SetInput{}, fmt.Errorf("invalid weight in set %q", spec)
	}
	return models.NewWeightSet(reps, weight), nil
}

// formatSet renders a set for display.
func formatSet(s models.ExerciseSet) string {
	if s.Duration != nil {
		return fmt.Sprintf("%ds", *s.Duration)
	}
	reps, weight := 0, 0.0
	if s.Repetitions != nil {
		reps = *s.Repetitions
	}
	if s.Weight != nil {
		weight = *s.Weight
	}
	return fmt.Sprintf("%dx%g", reps, weight)
}
