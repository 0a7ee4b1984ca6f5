// ABOUTME: Timer model for rest and interval timers.
// ABOUTME: Timers form one manually ordered list, like other sibling sets.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Timer is a saved countdown timer.
type Timer struct {
	ID        uuid.UUID
	Name      string
	Duration  int // seconds
	Order     int
	CreatedAt time.Time
}

// NewTimer creates a new Timer. Order is assigned by the repository.
func NewTimer(name string, duration int) *Timer {
	return &Timer{
		ID:        uuid.New(),
		Name:      name,
		Duration:  duration,
		CreatedAt: time.Now(),
	}
}
