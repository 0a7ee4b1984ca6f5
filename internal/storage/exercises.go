// ABOUTME: Exercise CRUD and reorder operations within a session.
// ABOUTME: Type and category follow the muscle group; deletes cascade to logs.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
)

// ExerciseUpdate carries the optional fields of an exercise update. Nil
// fields are left untouched. Order and session linkage cannot be changed.
type ExerciseUpdate struct {
	Name        *string
	ImageURL    *string
	Description *string
	MuscleGroup *string
}

// CreateExercise stores a new exercise at the end of its session's list.
func (d *DB) CreateExercise(e *models.Exercise) error {
	order, err := d.nextOrder("exercises", "session_id", e.SessionID.String())
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	e.Order = order

	query := `
		INSERT INTO exercises
			(id, session_id, name, "order", image_url, description, muscle_group, type, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.exec(query,
		e.ID.String(),
		e.SessionID.String(),
		e.Name,
		e.Order,
		e.ImageURL,
		e.Description,
		e.MuscleGroup,
		string(e.Type),
		string(e.Category),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

// GetExercise retrieves an exercise by ID.
func (d *DB) GetExercise(id uuid.UUID) (*models.Exercise, error) {
	query := exerciseSelect + ` WHERE id = ?`

	var e models.Exercise
	var idStr, sessionIDStr, typeStr, categoryStr, createdAt string
	var imageURL, description, muscleGroup sql.NullString

	err := d.queryRowScan(query, []interface{}{id.String()},
		&idStr, &sessionIDStr, &e.Name, &e.Order,
		&imageURL, &description, &muscleGroup,
		&typeStr, &categoryStr, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("get exercise: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	fillExercise(&e, idStr, sessionIDStr, imageURL, description, muscleGroup, typeStr, categoryStr, createdAt)
	return &e, nil
}

// GetExercisesBySessionID retrieves a session's exercises by manual order.
func (d *DB) GetExercisesBySessionID(sessionID uuid.UUID) ([]*models.Exercise, error) {
	query := exerciseSelect + ` WHERE session_id = ? ORDER BY "order" ASC`

	rows, err := d.query(query, sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.Exercise
	for rows.Next() {
		var e models.Exercise
		var idStr, sessionIDStr, typeStr, categoryStr, createdAt string
		var imageURL, description, muscleGroup sql.NullString

		err := rows.Scan(&idStr, &sessionIDStr, &e.Name, &e.Order,
			&imageURL, &description, &muscleGroup,
			&typeStr, &categoryStr, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}

		fillExercise(&e, idStr, sessionIDStr, imageURL, description, muscleGroup, typeStr, categoryStr, createdAt)
		exercises = append(exercises, &e)
	}
	return exercises, rows.Err()
}

// UpdateExercise applies a partial update. Changing the muscle group
// rederives type and category; order and session never change.
func (d *DB) UpdateExercise(id uuid.UUID, upd ExerciseUpdate) error {
	var sets []string
	var args []interface{}

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.ImageURL != nil {
		sets = append(sets, "image_url = ?")
		args = append(args, *upd.ImageURL)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.MuscleGroup != nil {
		t, c := models.Classify(*upd.MuscleGroup)
		sets = append(sets, "muscle_group = ?", "type = ?", "category = ?")
		args = append(args, *upd.MuscleGroup, string(t), string(c))
	}
	if len(sets) == 0 {
		return nil
	}

	query := `UPDATE exercises SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	args = append(args, id.String())

	if _, err := d.exec(query, args...); err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	return nil
}

// DeleteExercise removes an exercise; its logs and sets cascade.
func (d *DB) DeleteExercise(id uuid.UUID) error {
	_, err := d.exec(`DELETE FROM exercises WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

// ReorderExercises rewrites the manual order of one session's exercises to
// match the given full sibling list.
func (d *DB) ReorderExercises(ids []uuid.UUID) error {
	return d.reorderRows("exercises", ids)
}

const exerciseSelect = `
	SELECT id, session_id, name, "order", image_url, description, muscle_group, type, category, created_at
	FROM exercises`

// fillExercise converts scanned columns into model fields.
func fillExercise(e *models.Exercise, idStr, sessionIDStr string,
	imageURL, description, muscleGroup sql.NullString,
	typeStr, categoryStr, createdAt string) {
	e.ID, _ = uuid.Parse(idStr)
	e.SessionID, _ = uuid.Parse(sessionIDStr)
	if imageURL.Valid {
		e.ImageURL = &imageURL.String
	}
	if description.Valid {
		e.Description = &description.String
	}
	if muscleGroup.Valid {
		e.MuscleGroup = &muscleGroup.String
	}
	e.Type = models.ExerciseType(typeStr)
	e.Category = models.Category(categoryStr)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
}
