// ABOUTME: Timer CRUD and reorder operations.
// ABOUTME: Timers form one global manually ordered list.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
)

// CreateTimer stores a new timer at the end of the timer list.
func (d *DB) CreateTimer(t *models.Timer) error {
	order, err := d.nextOrder("timers", "", "")
	if err != nil {
		return fmt.Errorf("create timer: %w", err)
	}
	t.Order = order

	query := `
		INSERT INTO timers (id, name, duration, "order", created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = d.exec(query,
		t.ID.String(),
		t.Name,
		t.Duration,
		t.Order,
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create timer: %w", err)
	}
	return nil
}

// ListTimers retrieves all timers by manual order.
func (d *DB) ListTimers() ([]*models.Timer, error) {
	query := `
		SELECT id, name, duration, "order", created_at
		FROM timers
		ORDER BY "order" ASC
	`
	rows, err := d.query(query)
	if err != nil {
		return nil, fmt.Errorf("list timers: %w", err)
	}
	defer rows.Close()

	var timers []*models.Timer
	for rows.Next() {
		var t models.Timer
		var idStr, createdAt string
		if err := rows.Scan(&idStr, &t.Name, &t.Duration, &t.Order, &createdAt); err != nil {
			return nil, fmt.Errorf("scan timer: %w", err)
		}
		t.ID, _ = uuid.Parse(idStr)
		t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		timers = append(timers, &t)
	}
	return timers, rows.Err()
}

// UpdateTimer changes a timer's name and duration. Order never changes here.
func (d *DB) UpdateTimer(id uuid.UUID, name string, duration int) error {
	_, err := d.exec(`UPDATE timers SET name = ?, duration = ? WHERE id = ?`,
		name, duration, id.String())
	if err != nil {
		return fmt.Errorf("update timer: %w", err)
	}
	return nil
}

// DeleteTimer removes a timer. Deleting an unknown id is a no-op.
func (d *DB) DeleteTimer(id uuid.UUID) error {
	_, err := d.exec(`DELETE FROM timers WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete timer: %w", err)
	}
	return nil
}

// ReorderTimers rewrites the manual order to match the given full list.
func (d *DB) ReorderTimers(ids []uuid.UUID) error {
	return d.reorderRows("timers", ids)
}
