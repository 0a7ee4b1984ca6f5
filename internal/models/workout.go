// ABOUTME: Workout and Session models for the training-program hierarchy.
// ABOUTME: A Workout owns ordered Sessions; a Session owns ordered Exercises.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Workout is a training program, the root of the planning hierarchy.
type Workout struct {
	ID        uuid.UUID
	Name      string
	Order     int
	CreatedAt time.Time
}

// NewWorkout creates a new Workout with generated UUID and current timestamp.
// Order is assigned by the repository on insert.
func NewWorkout(name string) *Workout {
	return &Workout{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// Session is one training day inside a Workout.
type Session struct {
	ID        uuid.UUID
	WorkoutID uuid.UUID
	Name      string
	Order     int
	CreatedAt time.Time
}

// NewSession creates a new Session under the given workout.
func NewSession(workoutID uuid.UUID, name string) *Session {
	return &Session{
		ID:        uuid.New(),
		WorkoutID: workoutID,
		Name:      name,
		CreatedAt: time.Now(),
	}
}
