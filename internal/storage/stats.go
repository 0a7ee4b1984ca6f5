// ABOUTME: Read-only aggregate projections over logs and sets.
// ABOUTME: Every query tolerates an empty store and returns zeroed results.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
)

// GetWeeklyStats summarises the last seven days: distinct training dates,
// total sets, and total volume (weight x reps over weight sets).
func (d *DB) GetWeeklyStats() (*models.WeeklyStats, error) {
	since := time.Now().AddDate(0, 0, -6).Format(models.DateLayout)

	stats := &models.WeeklyStats{}
	err := d.queryRowScan(`
		SELECT
			COUNT(DISTINCT l.date),
			COUNT(s.id),
			COALESCE(SUM(s.weight * s.repetitions), 0)
		FROM exercise_logs l
		LEFT JOIN exercise_sets s ON s.log_id = l.id
		WHERE l.date >= ?
	`, []interface{}{since}, &stats.Days, &stats.Sets, &stats.TotalVolume)
	if err != nil {
		return nil, fmt.Errorf("weekly stats: %w", err)
	}
	return stats, nil
}

// GetTopExercises returns the most-logged exercises, busiest first.
func (d *DB) GetTopExercises(limit int) ([]*models.ExerciseUsage, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := d.query(`
		SELECT e.id, e.name, COUNT(l.id) AS logs
		FROM exercises e
		JOIN exercise_logs l ON l.exercise_id = e.id
		GROUP BY e.id, e.name
		ORDER BY logs DESC, e.name ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top exercises: %w", err)
	}
	defer rows.Close()

	var usage []*models.ExerciseUsage
	for rows.Next() {
		var u models.ExerciseUsage
		var idStr string
		if err := rows.Scan(&idStr, &u.ExerciseName, &u.LogCount); err != nil {
			return nil, fmt.Errorf("scan top exercise: %w", err)
		}
		u.ExerciseID, _ = uuid.Parse(idStr)
		usage = append(usage, &u)
	}
	return usage, rows.Err()
}

// GetDatesWithLogs returns every distinct training date, newest first.
func (d *DB) GetDatesWithLogs() ([]string, error) {
	rows, err := d.query(`SELECT DISTINCT date FROM exercise_logs ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("dates with logs: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan date: %w", err)
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

// GetLastWorkoutDate returns the most recent training date, or "" when the
// store has no logs yet.
func (d *DB) GetLastWorkoutDate() (string, error) {
	var date sql.NullString
	err := d.queryRowScan(`SELECT MAX(date) FROM exercise_logs`, nil, &date)
	if err != nil {
		return "", fmt.Errorf("last workout date: %w", err)
	}
	if !date.Valid {
		return "", nil
	}
	return date.String, nil
}
