// ABOUTME: Exercise and ExerciseTemplate models with type/category classification.
// ABOUTME: Templates are copied by value into session-scoped Exercise instances.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseType says how an exercise is measured.
type ExerciseType string

const (
	ExerciseWeightReps ExerciseType = "weight_reps"
	ExerciseTime       ExerciseType = "time"
)

// Category groups exercises for display.
type Category string

const (
	CategoryMusculation Category = "Musculation"
	CategoryCardio      Category = "Cardio"
	CategoryAutres      Category = "Autres"
)

// MuscleGroups lists the catalogue's muscle groups in display order.
var MuscleGroups = []string{
	"Pectoraux", "Dos", "Épaules", "Biceps", "Triceps",
	"Jambes", "Abdominaux", "Cardio", "Autres",
}

// Classify derives the exercise type and category from a muscle group.
// Cardio and Autres are time-based; everything else is weight and reps.
func Classify(muscleGroup string) (ExerciseType, Category) {
	switch muscleGroup {
	case "Cardio":
		return ExerciseTime, CategoryCardio
	case "Autres":
		return ExerciseTime, CategoryAutres
	default:
		return ExerciseWeightReps, CategoryMusculation
	}
}

// Exercise is a concrete exercise inside a Session.
type Exercise struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	Name        string
	Order       int
	ImageURL    *string
	Description *string
	MuscleGroup *string
	Type        ExerciseType
	Category    Category
	CreatedAt   time.Time
}

// NewExercise creates a new Exercise under the given session.
// Type and category are derived from the muscle group when one is set.
func NewExercise(sessionID uuid.UUID, name string) *Exercise {
	return &Exercise{
		ID:        uuid.New(),
		SessionID: sessionID,
		Name:      name,
		Type:      ExerciseWeightReps,
		Category:  CategoryMusculation,
		CreatedAt: time.Now(),
	}
}

// WithMuscleGroup sets the muscle group and reclassifies type/category.
func (e *Exercise) WithMuscleGroup(group string) *Exercise {
	e.MuscleGroup = &group
	e.Type, e.Category = Classify(group)
	return e
}

// WithImageURL sets the illustration URL.
func (e *Exercise) WithImageURL(url string) *Exercise {
	e.ImageURL = &url
	return e
}

// WithDescription sets the description.
func (e *Exercise) WithDescription(desc string) *Exercise {
	e.Description = &desc
	return e
}

// ExerciseTemplate is a reusable exercise definition in the catalogue.
type ExerciseTemplate struct {
	ID          uuid.UUID
	Name        string
	MuscleGroup string
	ImageURL    *string
	Description *string
	IsDefault   bool
	Type        ExerciseType
	Category    Category
	CreatedAt   time.Time
}

// NewExerciseTemplate creates a user template for the given muscle group.
func NewExerciseTemplate(name, muscleGroup string) *ExerciseTemplate {
	t, c := Classify(muscleGroup)
	return &ExerciseTemplate{
		ID:          uuid.New(),
		Name:        name,
		MuscleGroup: muscleGroup,
		Type:        t,
		Category:    c,
		CreatedAt:   time.Now(),
	}
}

// WithImageURL sets the illustration URL.
func (t *ExerciseTemplate) WithImageURL(url string) *ExerciseTemplate {
	t.ImageURL = &url
	return t
}

// WithDescription sets the description.
func (t *ExerciseTemplate) WithDescription(desc string) *ExerciseTemplate {
	t.Description = &desc
	return t
}
