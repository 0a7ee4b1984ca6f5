// ABOUTME: Profile and Measurement operations.
// ABOUTME: Profile is a near-singleton; the most recently created row wins.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
)

// ProfileUpdate carries the optional fields of a profile update. Nil fields
// are left untouched.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	Avatar      *string
	LastWorkout *string
}

// CreateProfile stores a new profile row. Uniqueness is not enforced;
// GetProfile resolves accidental duplicates in favour of the newest row.
func (d *DB) CreateProfile(p *models.Profile) error {
	query := `
		INSERT INTO profile (id, first_name, last_name, avatar, last_workout, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.exec(query,
		p.ID.String(),
		p.FirstName,
		p.LastName,
		p.Avatar,
		p.LastWorkout,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the current profile: the most recently created row.
// ErrNotFound means no profile has been created yet.
func (d *DB) GetProfile() (*models.Profile, error) {
	query := `
		SELECT id, first_name, last_name, avatar, last_workout, created_at, updated_at
		FROM profile
		ORDER BY created_at DESC
		LIMIT 1
	`
	var p models.Profile
	var idStr, createdAt, updatedAt string
	var avatar, lastWorkout sql.NullString

	err := d.queryRowScan(query, nil,
		&idStr, &p.FirstName, &p.LastName, &avatar, &lastWorkout, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("get profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.ID, _ = uuid.Parse(idStr)
	if avatar.Valid {
		p.Avatar = &avatar.String
	}
	if lastWorkout.Valid {
		p.LastWorkout = &lastWorkout.String
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &p, nil
}

// UpdateProfile applies a partial update and refreshes updated_at.
func (d *DB) UpdateProfile(id uuid.UUID, upd ProfileUpdate) error {
	var sets []string
	var args []interface{}

	if upd.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *upd.FirstName)
	}
	if upd.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *upd.LastName)
	}
	if upd.Avatar != nil {
		sets = append(sets, "avatar = ?")
		args = append(args, *upd.Avatar)
	}
	if upd.LastWorkout != nil {
		sets = append(sets, "last_workout = ?")
		args = append(args, *upd.LastWorkout)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().Format(time.RFC3339), id.String())

	query := `UPDATE profile SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	if _, err := d.exec(query, args...); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// CreateMeasurement stores a body measurement. Duplicate labels are allowed.
func (d *DB) CreateMeasurement(m *models.Measurement) error {
	query := `
		INSERT INTO measurements (id, profile_id, label, value, unit, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.exec(query,
		m.ID.String(),
		m.ProfileID.String(),
		m.Label,
		m.Value,
		m.Unit,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create measurement: %w", err)
	}
	return nil
}

// GetMeasurementsByProfileID retrieves a profile's measurements, newest
// first. Labels may repeat; callers display them all.
func (d *DB) GetMeasurementsByProfileID(profileID uuid.UUID) ([]*models.Measurement, error) {
	query := `
		SELECT id, profile_id, label, value, unit, created_at
		FROM measurements
		WHERE profile_id = ?
		ORDER BY created_at DESC
	`
	rows, err := d.query(query, profileID.String())
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	var measurements []*models.Measurement
	for rows.Next() {
		var m models.Measurement
		var idStr, profileIDStr, createdAt string

		if err := rows.Scan(&idStr, &profileIDStr, &m.Label, &m.Value, &m.Unit, &createdAt); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}

		m.ID, _ = uuid.Parse(idStr)
		m.ProfileID, _ = uuid.Parse(profileIDStr)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		measurements = append(measurements, &m)
	}
	return measurements, rows.Err()
}

// DeleteMeasurement removes a measurement by id.
func (d *DB) DeleteMeasurement(id uuid.UUID) error {
	_, err := d.exec(`DELETE FROM measurements WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete measurement: %w", err)
	}
	return nil
}
