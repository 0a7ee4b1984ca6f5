// ABOUTME: Session CRUD and reorder operations within a workout.
// ABOUTME: Order is contiguous 0..N-1 per workout after create or reorder.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
)

// CreateSession stores a new session at the end of its workout's list.
func (d *DB) CreateSession(s *models.Session) error {
	order, err := d.nextOrder("sessions", "workout_id", s.WorkoutID.String())
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	s.Order = order

	query := `
		INSERT INTO sessions (id, workout_id, name, "order", created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = d.exec(query,
		s.ID.String(),
		s.WorkoutID.String(),
		s.Name,
		s.Order,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID.
func (d *DB) GetSession(id uuid.UUID) (*models.Session, error) {
	query := `
		SELECT id, workout_id, name, "order", created_at
		FROM sessions
		WHERE id = ?
	`
	var s models.Session
	var idStr, workoutIDStr, createdAt string

	err := d.queryRowScan(query, []interface{}{id.String()},
		&idStr, &workoutIDStr, &s.Name, &s.Order, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("get session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	s.ID, _ = uuid.Parse(idStr)
	s.WorkoutID, _ = uuid.Parse(workoutIDStr)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &s, nil
}

// GetSessionsByWorkoutID retrieves a workout's sessions by manual order.
// Drag-reorder consumers rely on this ordering; it must not degrade to
// insertion order.
func (d *DB) GetSessionsByWorkoutID(workoutID uuid.UUID) ([]*models.Session, error) {
	query := `
		SELECT id, workout_id, name, "order", created_at
		FROM sessions
		WHERE workout_id = ?
		ORDER BY "order" ASC
	`
	rows, err := d.query(query, workoutID.String())
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		var s models.Session
		var idStr, workoutIDStr, createdAt string
		if err := rows.Scan(&idStr, &workoutIDStr, &s.Name, &s.Order, &createdAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.ID, _ = uuid.Parse(idStr)
		s.WorkoutID, _ = uuid.Parse(workoutIDStr)
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}

// UpdateSession renames a session. Order and workout linkage never change.
func (d *DB) UpdateSession(id uuid.UUID, name string) error {
	_, err := d.exec(`UPDATE sessions SET name = ? WHERE id = ?`, name, id.String())
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// DeleteSession removes a session; its exercises, logs, and sets cascade.
func (d *DB) DeleteSession(id uuid.UUID) error {
	_, err := d.exec(`DELETE FROM sessions WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// ReorderSessions rewrites the manual order of one workout's sessions to
// match the given full sibling list.
func (d *DB) ReorderSessions(ids []uuid.UUID) error {
	return d.reorderRows("sessions", ids)
}
