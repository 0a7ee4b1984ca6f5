// ABOUTME: Workout CRUD and reorder operations.
// ABOUTME: Deleting a workout cascades through sessions, exercises, logs, sets.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
)

// CreateWorkout stores a new workout at the end of the workout list.
func (d *DB) CreateWorkout(w *models.Workout) error {
	order, err := d.nextOrder("workouts", "", "")
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	w.Order = order

	query := `
		INSERT INTO workouts (id, name, "order", created_at)
		VALUES (?, ?, ?, ?)
	`
	_, err = d.exec(query,
		w.ID.String(),
		w.Name,
		w.Order,
		w.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a workout by ID.
func (d *DB) GetWorkout(id uuid.UUID) (*models.Workout, error) {
	query := `
		SELECT id, name, "order", created_at
		FROM workouts
		WHERE id = ?
	`
	w, err := d.scanWorkoutRow(query, id.String())
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return w, nil
}

// ListWorkouts retrieves all workouts ordered by their manual order.
func (d *DB) ListWorkouts() ([]*models.Workout, error) {
	query := `
		SELECT id, name, "order", created_at
		FROM workouts
		ORDER BY "order" ASC
	`
	rows, err := d.query(query)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []*models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// UpdateWorkout renames a workout. Order and children are never touched here.
func (d *DB) UpdateWorkout(id uuid.UUID, name string) error {
	_, err := d.exec(`UPDATE workouts SET name = ? WHERE id = ?`, name, id.String())
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	return nil
}

// DeleteWorkout removes a workout. Sessions, exercises, logs, and sets go
// with it via cascade. Deleting an unknown id is a no-op.
func (d *DB) DeleteWorkout(id uuid.UUID) error {
	_, err := d.exec(`DELETE FROM workouts WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// ReorderWorkouts rewrites the manual order to match the given full list of
// workout ids. The caller is responsible for passing the complete set.
func (d *DB) ReorderWorkouts(ids []uuid.UUID) error {
	return d.reorderRows("workouts", ids)
}

// scanWorkoutRow fetches and scans a single workout row.
func (d *DB) scanWorkoutRow(query string, args ...interface{}) (*models.Workout, error) {
	var w models.Workout
	var idStr, createdAt string

	err := d.queryRowScan(query, args, &idStr, &w.Name, &w.Order, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan workout: %w", err)
	}

	w.ID, _ = uuid.Parse(idStr)
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &w, nil
}

// scanWorkout scans the current row of a multi-row result.
func scanWorkout(rows *sql.Rows) (*models.Workout, error) {
	var w models.Workout
	var idStr, createdAt string

	if err := rows.Scan(&idStr, &w.Name, &w.Order, &createdAt); err != nil {
		return nil, fmt.Errorf("scan workout: %w", err)
	}

	w.ID, _ = uuid.Parse(idStr)
	w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &w, nil
}
