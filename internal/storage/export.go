// ABOUTME: Export and import of the full training hierarchy as JSON.
// ABOUTME: Import preserves ids and manual order values verbatim.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mlgx/liftlog/internal/models"
)

// ExportData represents the full export format for the store.
type ExportData struct {
	Version      string                     `json:"version"`
	ExportedAt   time.Time                  `json:"exported_at"`
	Tool         string                     `json:"tool"`
	Workouts     []*models.Workout          `json:"workouts"`
	Sessions     []*models.Session          `json:"sessions"`
	Exercises    []*models.Exercise         `json:"exercises"`
	Logs         []*models.ExerciseLog      `json:"logs"`
	Templates    []*models.ExerciseTemplate `json:"templates"`
	Profile      *models.Profile            `json:"profile,omitempty"`
	Measurements []*models.Measurement      `json:"measurements"`
	Timers       []*models.Timer            `json:"timers"`
}

// GetAllData snapshots every table for export. Logs carry their sets.
func (d *DB) GetAllData() (*ExportData, error) {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "liftlog",
	}

	var err error
	if data.Workouts, err = d.ListWorkouts(); err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}
	for _, w := range data.Workouts {
		sessions, err := d.GetSessionsByWorkoutID(w.ID)
		if err != nil {
			return nil, fmt.Errorf("export sessions: %w", err)
		}
		data.Sessions = append(data.Sessions, sessions...)
	}
	for _, s := range data.Sessions {
		exercises, err := d.GetExercisesBySessionID(s.ID)
		if err != nil {
			return nil, fmt.Errorf("export exercises: %w", err)
		}
		data.Exercises = append(data.Exercises, exercises...)
	}
	for _, e := range data.Exercises {
		logs, err := d.GetLogsByExerciseID(e.ID)
		if err != nil {
			return nil, fmt.Errorf("export logs: %w", err)
		}
		data.Logs = append(data.Logs, logs...)
	}

	if data.Templates, err = d.ListTemplates(""); err != nil {
		return nil, fmt.Errorf("export templates: %w", err)
	}

	profile, err := d.GetProfile()
	if err != nil && !IsNotFound(err) {
		return nil, fmt.Errorf("export profile: %w", err)
	}
	if profile != nil {
		data.Profile = profile
		if data.Measurements, err = d.GetMeasurementsByProfileID(profile.ID); err != nil {
			return nil, fmt.Errorf("export measurements: %w", err)
		}
	}

	if data.Timers, err = d.ListTimers(); err != nil {
		return nil, fmt.Errorf("export timers: %w", err)
	}

	return data, nil
}

// ImportData loads an export snapshot into the store. Rows are inserted
// verbatim, parents before children; the destination should be empty.
func (d *DB) ImportData(data *ExportData) error {
	for _, w := range data.Workouts {
		_, err := d.exec(`INSERT INTO workouts (id, name, "order", created_at) VALUES (?, ?, ?, ?)`,
			w.ID.String(), w.Name, w.Order, w.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("import workout: %w", err)
		}
	}
	for _, s := range data.Sessions {
		_, err := d.exec(`INSERT INTO sessions (id, workout_id, name, "order", created_at) VALUES (?, ?, ?, ?, ?)`,
			s.ID.String(), s.WorkoutID.String(), s.Name, s.Order, s.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}
	for _, e := range data.Exercises {
		_, err := d.exec(`
			INSERT INTO exercises
				(id, session_id, name, "order", image_url, description, muscle_group, type, category, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID.String(), e.SessionID.String(), e.Name, e.Order,
			e.ImageURL, e.Description, e.MuscleGroup,
			string(e.Type), string(e.Category), e.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}
	for _, log := range data.Logs {
		_, err := d.exec(`INSERT INTO exercise_logs (id, exercise_id, date, created_at) VALUES (?, ?, ?, ?)`,
			log.ID.String(), log.ExerciseID.String(), log.Date, log.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("import log: %w", err)
		}
		for i := range log.Sets {
			set := log.Sets[i]
			_, err := d.exec(`INSERT INTO exercise_sets (id, log_id, repetitions, weight, duration, "order") VALUES (?, ?, ?, ?, ?, ?)`,
				set.ID.String(), log.ID.String(), set.Repetitions, set.Weight, set.Duration, set.Order)
			if err != nil {
				return fmt.Errorf("import set: %w", err)
			}
		}
	}
	for _, t := range data.Templates {
		if err := d.CreateTemplate(t); err != nil {
			return fmt.Errorf("import template: %w", err)
		}
	}
	if data.Profile != nil {
		if err := d.CreateProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	for _, m := range data.Measurements {
		if err := d.CreateMeasurement(m); err != nil {
			return fmt.Errorf("import measurement: %w", err)
		}
	}
	for _, t := range data.Timers {
		_, err := d.exec(`INSERT INTO timers (id, name, duration, "order", created_at) VALUES (?, ?, ?, ?, ?)`,
			t.ID.String(), t.Name, t.Duration, t.Order, t.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("import timer: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all data as indented JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ImportJSON imports a JSON export produced by ExportJSON.
func (d *DB) ImportJSON(raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse export: %w", err)
	}
	return d.ImportData(&data)
}
