// ABOUTME: Tests for exercise CRUD, classification, and partial updates.
// ABOUTME: Muscle group drives type/category on create and update.
package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
)

func setupSession(t *testing.T, db *DB) *models.Session {
	t.Helper()

	w := models.NewWorkout("PPL")
	if err := db.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	s := models.NewSession(w.ID, "Push")
	if err := db.CreateSession(s); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	return s
}

func TestCreateAndGetExercise(t *testing.T) {
	db := setupTestDB(t)
	s := setupSession(t, db)

	e := models.NewExercise(s.ID, "Développé couché").
		WithMuscleGroup("Pectoraux").
		WithDescription("Barre, banc plat")
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	got, err := db.GetExercise(e.ID)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if got.Name != "Développé couché" {
		t.Errorf("Name mismatch: got %q", got.Name)
	}
	if got.MuscleGroup == nil || *got.MuscleGroup != "Pectoraux" {
		t.Errorf("MuscleGroup mismatch: got %v", got.MuscleGroup)
	}
	if got.Type != models.ExerciseWeightReps || got.Category != models.CategoryMusculation {
		t.Errorf("Classification mismatch: got %s/%s", got.Type, got.Category)
	}
	if got.Description == nil || *got.Description != "Barre, banc plat" {
		t.Errorf("Description mismatch: got %v", got.Description)
	}
	if got.ImageURL != nil {
		t.Errorf("Unset ImageURL must stay nil, got %v", *got.ImageURL)
	}
}

func TestCreateExerciseCardioIsTimeBased(t *testing.T) {
	db := setupTestDB(t)
	s := setupSession(t, db)

	e := models.NewExercise(s.ID, "Course à pied").WithMuscleGroup("Cardio")
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	got, err := db.GetExercise(e.ID)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if got.Type != models.ExerciseTime || got.Category != models.CategoryCardio {
		t.Errorf("Cardio classification mismatch: got %s/%s", got.Type, got.Category)
	}
}

func TestUpdateExercisePartial(t *testing.T) {
	db := setupTestDB(t)
	s := setupSession(t, db)

	e := models.NewExercise(s.ID, "Rowing").WithMuscleGroup("Dos")
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	desc := "Haltère, banc incliné"
	if err := db.UpdateExercise(e.ID, ExerciseUpdate{Description: &desc}); err != nil {
		t.Fatalf("UpdateExercise failed: %v", err)
	}

	got, err := db.GetExercise(e.ID)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if got.Description == nil || *got.Description != desc {
		t.Errorf("Description not updated: got %v", got.Description)
	}
	// Untouched fields survive.
	if got.Name != "Rowing" {
		t.Errorf("Name changed unexpectedly: got %q", got.Name)
	}
	if got.MuscleGroup == nil || *got.MuscleGroup != "Dos" {
		t.Errorf("MuscleGroup changed unexpectedly: got %v", got.MuscleGroup)
	}
}

func TestUpdateExerciseMuscleGroupReclassifies(t *testing.T) {
	db := setupTestDB(t)
	s := setupSession(t, db)

	e := models.NewExercise(s.ID, "Corde à sauter").WithMuscleGroup("Jambes")
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	group := "Cardio"
	if err := db.UpdateExercise(e.ID, ExerciseUpdate{MuscleGroup: &group}); err != nil {
		t.Fatalf("UpdateExercise failed: %v", err)
	}

	got, err := db.GetExercise(e.ID)
	if err != nil {
		t.Fatalf("GetExercise failed: %v", err)
	}
	if got.Type != models.ExerciseTime || got.Category != models.CategoryCardio {
		t.Errorf("Expected reclassification to time/Cardio, got %s/%s", got.Type, got.Category)
	}
}

func TestUpdateExerciseEmptyUpdateIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	s := setupSession(t, db)

	e := models.NewExercise(s.ID, "Squat")
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	if err := db.UpdateExercise(e.ID, ExerciseUpdate{}); err != nil {
		t.Errorf("Empty update should be a no-op, got %v", err)
	}
}

func TestReorderExercises(t *testing.T) {
	db := setupTestDB(t)
	s := setupSession(t, db)

	a := models.NewExercise(s.ID, "A")
	b := models.NewExercise(s.ID, "B")
	c := models.NewExercise(s.ID, "C")
	for _, e := range []*models.Exercise{a, b, c} {
		if err := db.CreateExercise(e); err != nil {
			t.Fatalf("CreateExercise failed: %v", err)
		}
	}

	if err := db.ReorderExercises([]uuid.UUID{b.ID, c.ID, a.ID}); err != nil {
		t.Fatalf("ReorderExercises failed: %v", err)
	}

	exercises, err := db.GetExercisesBySessionID(s.ID)
	if err != nil {
		t.Fatalf("GetExercisesBySessionID failed: %v", err)
	}
	want := []string{"B", "C", "A"}
	for i, e := range exercises {
		if e.Name != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], e.Name)
		}
		if e.Order != i {
			t.Errorf("Position %d: expected order %d, got %d", i, i, e.Order)
		}
	}
}

func TestDeleteExerciseCascadesToLogs(t *testing.T) {
	db := setupTestDB(t)
	s := setupSession(t, db)

	e := models.NewExercise(s.ID, "Tractions").WithMuscleGroup("Dos")
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	if _, err := db.CreateLog(e.ID, "2024-06-01", []models.SetInput{models.NewWeightSet(10, 0)}); err != nil {
		t.Fatalf("CreateLog failed: %v", err)
	}

	if err := db.DeleteExercise(e.ID); err != nil {
		t.Fatalf("DeleteExercise failed: %v", err)
	}

	logs, err := db.GetLogsByExerciseID(e.ID)
	if err != nil {
		t.Fatalf("GetLogsByExerciseID failed: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("Expected logs gone after cascade, got %d", len(logs))
	}
}
