// ABOUTME: ExerciseLog and ExerciseSet operations: the two-level log hierarchy.
// ABOUTME: Bulk edits replace the whole set list; single captures append-or-create.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
)

// CreateLog always inserts a new log row plus its sets, ordered by list
// index, in one transaction. It does not look for an existing log on that
// date; callers wanting append-to-existing-date semantics use AddSetToLog.
// Several logs for the same (exercise, date) are legal and readers aggregate
// across them.
func (d *DB) CreateLog(exerciseID uuid.UUID, date string, sets []models.SetInput) (*models.ExerciseLog, error) {
	log := models.NewExerciseLog(exerciseID, date)

	err := d.withRetry(func() error {
		tx, err := d.db.Begin()
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback()

		_, err = tx.Exec(
			`INSERT INTO exercise_logs (id, exercise_id, date, created_at) VALUES (?, ?, ?, ?)`,
			log.ID.String(),
			log.ExerciseID.String(),
			log.Date,
			log.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert log: %w", err)
		}

		log.Sets = log.Sets[:0]
		for i, in := range sets {
			set := models.ExerciseSet{
				ID:          uuid.New(),
				LogID:       log.ID,
				Repetitions: in.Repetitions,
				Weight:      in.Weight,
				Duration:    in.Duration,
				Order:       i,
			}
			if err := insertSet(tx, &set); err != nil {
				return err
			}
			log.Sets = append(log.Sets, set)
		}

		return tx.Commit()
	})
	if err != nil {
		return nil, fmt.Errorf("create log: %w", err)
	}
	return log, nil
}

// AddSetToLog appends one set to the log for (exercise, date), creating the
// log when none exists. This entry point is what keeps one canonical log per
// date; it picks the oldest log when direct CreateLog calls have produced
// duplicates.
func (d *DB) AddSetToLog(exerciseID uuid.UUID, date string, set models.SetInput) (*models.ExerciseLog, error) {
	var logIDStr, createdAt string
	err := d.queryRowScan(
		`SELECT id, created_at FROM exercise_logs WHERE exercise_id = ? AND date = ? ORDER BY created_at ASC LIMIT 1`,
		[]interface{}{exerciseID.String(), date},
		&logIDStr, &createdAt,
	)
	if err == sql.ErrNoRows {
		return d.CreateLog(exerciseID, date, []models.SetInput{set})
	}
	if err != nil {
		return nil, fmt.Errorf("add set to log: %w", err)
	}

	logID, _ := uuid.Parse(logIDStr)
	order, err := d.nextOrder("exercise_sets", "log_id", logID.String())
	if err != nil {
		return nil, fmt.Errorf("add set to log: %w", err)
	}

	s := models.ExerciseSet{
		ID:          uuid.New(),
		LogID:       logID,
		Repetitions: set.Repetitions,
		Weight:      set.Weight,
		Duration:    set.Duration,
		Order:       order,
	}
	_, err = d.exec(
		`INSERT INTO exercise_sets (id, log_id, repetitions, weight, duration, "order") VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID.String(), s.LogID.String(), s.Repetitions, s.Weight, s.Duration, s.Order,
	)
	if err != nil {
		return nil, fmt.Errorf("add set to log: %w", err)
	}

	log := &models.ExerciseLog{ID: logID, ExerciseID: exerciseID, Date: date}
	log.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	log.Sets, err = d.getSetsByLogID(logID)
	if err != nil {
		return nil, fmt.Errorf("add set to log: %w", err)
	}
	return log, nil
}

// UpdateLog sets the log's date, drops every existing set, and re-inserts
// the new list with fresh ids and order = index. Replacing instead of
// diffing guarantees contiguous order after every edit; set ids are not
// stable across this call and callers must not cache them.
func (d *DB) UpdateLog(logID uuid.UUID, date string, sets []models.SetInput) error {
	err := d.withRetry(func() error {
		tx, err := d.db.Begin()
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback()

		if _, err := tx.Exec(`UPDATE exercise_logs SET date = ? WHERE id = ?`, date, logID.String()); err != nil {
			return fmt.Errorf("update log date: %w", err)
		}
		if _, err := tx.Exec(`DELETE FROM exercise_sets WHERE log_id = ?`, logID.String()); err != nil {
			return fmt.Errorf("clear sets: %w", err)
		}

		for i, in := range sets {
			set := models.ExerciseSet{
				ID:          uuid.New(),
				LogID:       logID,
				Repetitions: in.Repetitions,
				Weight:      in.Weight,
				Duration:    in.Duration,
				Order:       i,
			}
			if err := insertSet(tx, &set); err != nil {
				return err
			}
		}

		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("update log: %w", err)
	}
	return nil
}

// DeleteLog removes a log; its sets cascade.
func (d *DB) DeleteLog(id uuid.UUID) error {
	_, err := d.exec(`DELETE FROM exercise_logs WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete log: %w", err)
	}
	return nil
}

// GetLogsByExerciseID retrieves an exercise's logs newest-first (dates are
// stored in sortable ISO form), each with its sets in manual order.
func (d *DB) GetLogsByExerciseID(exerciseID uuid.UUID) ([]*models.ExerciseLog, error) {
	query := `
		SELECT id, exercise_id, date, created_at
		FROM exercise_logs
		WHERE exercise_id = ?
		ORDER BY date DESC, created_at DESC
	`
	rows, err := d.query(query, exerciseID.String())
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.ExerciseLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, log := range logs {
		log.Sets, err = d.getSetsByLogID(log.ID)
		if err != nil {
			return nil, fmt.Errorf("list logs: %w", err)
		}
	}
	return logs, nil
}

// GetLogsWithExerciseInfo retrieves logs joined with their exercise's display
// fields, newest-first. A non-empty date restricts the result to that day,
// which is what the calendar view shows.
func (d *DB) GetLogsWithExerciseInfo(date string) ([]*models.LogWithExercise, error) {
	query := `
		SELECT l.id, l.exercise_id, l.date, l.created_at, e.name, e.muscle_group, e.type
		FROM exercise_logs l
		JOIN exercises e ON e.id = l.exercise_id
	`
	var args []interface{}
	if date != "" {
		query += ` WHERE l.date = ?`
		args = append(args, date)
	}
	query += ` ORDER BY l.date DESC, l.created_at DESC`

	rows, err := d.query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list logs with exercise info: %w", err)
	}
	defer rows.Close()

	var logs []*models.LogWithExercise
	for rows.Next() {
		var lw models.LogWithExercise
		var idStr, exerciseIDStr, createdAt, typeStr string
		var muscleGroup sql.NullString

		err := rows.Scan(&idStr, &exerciseIDStr, &lw.Date, &createdAt,
			&lw.ExerciseName, &muscleGroup, &typeStr)
		if err != nil {
			return nil, fmt.Errorf("scan log with exercise info: %w", err)
		}

		lw.ID, _ = uuid.Parse(idStr)
		lw.ExerciseID, _ = uuid.Parse(exerciseIDStr)
		lw.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if muscleGroup.Valid {
			lw.MuscleGroup = &muscleGroup.String
		}
		lw.ExerciseType = models.ExerciseType(typeStr)
		logs = append(logs, &lw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, lw := range logs {
		lw.Sets, err = d.getSetsByLogID(lw.ID)
		if err != nil {
			return nil, fmt.Errorf("list logs with exercise info: %w", err)
		}
	}
	return logs, nil
}

// CleanupOrphanedLogs deletes logs whose exercise no longer exists and
// returns how many were removed. Cascade normally prevents orphans; this is
// a defensive repair pass for writes that bypassed the repositories.
func (d *DB) CleanupOrphanedLogs() (int64, error) {
	res, err := d.exec(`
		DELETE FROM exercise_logs
		WHERE exercise_id NOT IN (SELECT id FROM exercises)
	`)
	if err != nil {
		return 0, fmt.Errorf("cleanup orphaned logs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup orphaned logs: %w", err)
	}
	return n, nil
}

// getSetsByLogID retrieves a log's sets in manual order.
func (d *DB) getSetsByLogID(logID uuid.UUID) ([]models.ExerciseSet, error) {
	query := `
		SELECT id, log_id, repetitions, weight, duration, "order"
		FROM exercise_sets
		WHERE log_id = ?
		ORDER BY "order" ASC
	`
	rows, err := d.query(query, logID.String())
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	defer rows.Close()

	var sets []models.ExerciseSet
	for rows.Next() {
		var s models.ExerciseSet
		var idStr, logIDStr string
		var reps, duration sql.NullInt64
		var weight sql.NullFloat64

		if err := rows.Scan(&idStr, &logIDStr, &reps, &weight, &duration, &s.Order); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}

		s.ID, _ = uuid.Parse(idStr)
		s.LogID, _ = uuid.Parse(logIDStr)
		if reps.Valid {
			r := int(reps.Int64)
			s.Repetitions = &r
		}
		if weight.Valid {
			w := weight.Float64
			s.Weight = &w
		}
		if duration.Valid {
			dur := int(duration.Int64)
			s.Duration = &dur
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// insertSet writes one set inside an open transaction.
func insertSet(tx *sql.Tx, s *models.ExerciseSet) error {
	_, err := tx.Exec(
		`INSERT INTO exercise_sets (id, log_id, repetitions, weight, duration, "order") VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID.String(), s.LogID.String(), s.Repetitions, s.Weight, s.Duration, s.Order,
	)
	if err != nil {
		return fmt.Errorf("insert set: %w", err)
	}
	return nil
}

// scanLog scans the current row of a log query.
func scanLog(rows *sql.Rows) (*models.ExerciseLog, error) {
	var log models.ExerciseLog
	var idStr, exerciseIDStr, createdAt string

	if err := rows.Scan(&idStr, &exerciseIDStr, &log.Date, &createdAt); err != nil {
		return nil, fmt.Errorf("scan log: %w", err)
	}

	log.ID, _ = uuid.Parse(idStr)
	log.ExerciseID, _ = uuid.Parse(exerciseIDStr)
	log.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &log, nil
}
