// ABOUTME: Tests for session CRUD and per-workout ordering.
// ABOUTME: Sibling lists in different workouts are ordered independently.
package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
)

func TestCreateSessionOrdersPerWorkout(t *testing.T) {
	db := setupTestDB(t)

	w1 := models.NewWorkout("PPL")
	w2 := models.NewWorkout("Upper Lower")
	for _, w := range []*models.Workout{w1, w2} {
		if err := db.CreateWorkout(w); err != nil {
			t.Fatalf("CreateWorkout failed: %v", err)
		}
	}

	// Interleave creates across the two workouts.
	s1 := models.NewSession(w1.ID, "Push")
	s2 := models.NewSession(w2.ID, "Upper")
	s3 := models.NewSession(w1.ID, "Pull")
	for _, s := range []*models.Session{s1, s2, s3} {
		if err := db.CreateSession(s); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
	}

	// Order counts siblings only, not the global table.
	if s1.Order != 0 || s3.Order != 1 {
		t.Errorf("w1 sessions: expected orders 0,1, got %d,%d", s1.Order, s3.Order)
	}
	if s2.Order != 0 {
		t.Errorf("w2 session: expected order 0, got %d", s2.Order)
	}

	sessions, err := db.GetSessionsByWorkoutID(w1.ID)
	if err != nil {
		t.Fatalf("GetSessionsByWorkoutID failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions in w1, got %d", len(sessions))
	}
	if sessions[0].Name != "Push" || sessions[1].Name != "Pull" {
		t.Errorf("Unexpected session order: %s, %s", sessions[0].Name, sessions[1].Name)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetSession(uuid.New())
	if !IsNotFound(err) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestReorderSessions(t *testing.T) {
	db := setupTestDB(t)

	w := models.NewWorkout("PPL")
	if err := db.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}

	push := models.NewSession(w.ID, "Push")
	pull := models.NewSession(w.ID, "Pull")
	legs := models.NewSession(w.ID, "Legs")
	for _, s := range []*models.Session{push, pull, legs} {
		if err := db.CreateSession(s); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
	}

	if err := db.ReorderSessions([]uuid.UUID{legs.ID, push.ID, pull.ID}); err != nil {
		t.Fatalf("ReorderSessions failed: %v", err)
	}

	sessions, err := db.GetSessionsByWorkoutID(w.ID)
	if err != nil {
		t.Fatalf("GetSessionsByWorkoutID failed: %v", err)
	}
	want := []string{"Legs", "Push", "Pull"}
	for i, s := range sessions {
		if s.Name != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], s.Name)
		}
	}
}

func TestUpdateSessionRename(t *testing.T) {
	db := setupTestDB(t)

	w := models.NewWorkout("PPL")
	if err := db.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	s := models.NewSession(w.ID, "Push")
	if err := db.CreateSession(s); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	if err := db.UpdateSession(s.ID, "Push A"); err != nil {
		t.Fatalf("UpdateSession failed: %v", err)
	}

	got, err := db.GetSession(s.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got.Name != "Push A" {
		t.Errorf("Name mismatch: got %q", got.Name)
	}
	if got.WorkoutID != w.ID {
		t.Errorf("Rename must not move the session: got workout %v", got.WorkoutID)
	}
}

func TestDeleteSessionCascadesToExercises(t *testing.T) {
	db := setupTestDB(t)

	w := models.NewWorkout("PPL")
	if err := db.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	s := models.NewSession(w.ID, "Push")
	if err := db.CreateSession(s); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	e := models.NewExercise(s.ID, "Dips")
	if err := db.CreateExercise(e); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	if err := db.DeleteSession(s.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	if _, err := db.GetExercise(e.ID); !IsNotFound(err) {
		t.Errorf("Expected exercise gone after cascade, got %v", err)
	}
	// The workout itself survives.
	if _, err := db.GetWorkout(w.ID); err != nil {
		t.Errorf("Workout must survive session deletion: %v", err)
	}
}
