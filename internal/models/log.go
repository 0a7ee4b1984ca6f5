// ABOUTME: ExerciseLog and ExerciseSet models plus read-only stats projections.
// ABOUTME: Logs are keyed by exercise and ISO date; sets are manually ordered.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the storage format for log dates. It sorts lexically.
const DateLayout = "2006-01-02"

// Today returns the current date in storage format.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ExerciseLog groups the sets performed for one exercise on one date.
type ExerciseLog struct {
	ID         uuid.UUID
	ExerciseID uuid.UUID
	Date       string // DateLayout
	CreatedAt  time.Time
	Sets       []ExerciseSet // Populated when fetching full log
}

// NewExerciseLog creates a log for the given exercise and date.
func NewExerciseLog(exerciseID uuid.UUID, date string) *ExerciseLog {
	return &ExerciseLog{
		ID:         uuid.New(),
		ExerciseID: exerciseID,
		Date:       date,
		CreatedAt:  time.Now(),
	}
}

// ExerciseSet is a single set inside a log. Weight/reps sets leave Duration
// nil; time-based sets leave Repetitions and Weight nil.
type ExerciseSet struct {
	ID          uuid.UUID
	LogID       uuid.UUID
	Repetitions *int
	Weight      *float64
	Duration    *int // seconds
	Order       int
}

// SetInput carries the user-supplied fields of a set. Identity and order are
// assigned by the log repository on write.
type SetInput struct {
	Repetitions *int
	Weight      *float64
	Duration    *int
}

// NewWeightSet builds a weight/reps set input.
func NewWeightSet(reps int, weight float64) SetInput {
	return SetInput{Repetitions: &reps, Weight: &weight}
}

// NewTimeSet builds a duration set input.
func NewTimeSet(seconds int) SetInput {
	return SetInput{Duration: &seconds}
}

// LogWithExercise is a log annotated with its exercise's display fields,
// for history and calendar views.
type LogWithExercise struct {
	ExerciseLog
	ExerciseName string
	MuscleGroup  *string
	ExerciseType ExerciseType
}

// WeeklyStats summarises the last seven days of training.
type WeeklyStats struct {
	Days        int     // distinct dates with at least one log
	Sets        int     // total sets recorded
	TotalVolume float64 // sum of weight * reps over weight sets
}

// ExerciseUsage counts how often an exercise has been logged.
type ExerciseUsage struct {
	ExerciseID   uuid.UUID
	ExerciseName string
	LogCount     int
}
