// ABOUTME: Profile and Measurement models for the user profile.
// ABOUTME: Profile is a near-singleton; measurements tolerate duplicate labels.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the local user profile. The store does not enforce uniqueness;
// readers treat the most recently created row as authoritative.
type Profile struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Avatar      *string
	LastWorkout *string // last trained date, DateLayout
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProfile creates a new Profile with generated UUID and timestamps.
func NewProfile(firstName, lastName string) *Profile {
	now := time.Now()
	return &Profile{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithAvatar sets the avatar reference.
func (p *Profile) WithAvatar(avatar string) *Profile {
	p.Avatar = &avatar
	return p
}

// Measurement is a body measurement attached to a profile. Labels are free
// text and may repeat; readers must not assume uniqueness.
type Measurement struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Label     string
	Value     float64
	Unit      string
	CreatedAt time.Time
}

// NewMeasurement creates a measurement for the given profile.
func NewMeasurement(profileID uuid.UUID, label string, value float64, unit string) *Measurement {
	return &Measurement{
		ID:        uuid.New(),
		ProfileID: profileID,
		Label:     label,
		Value:     value,
		Unit:      unit,
		CreatedAt: time.Now(),
	}
}
