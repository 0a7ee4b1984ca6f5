// ABOUTME: Tests for timer CRUD and the global timer list ordering.
package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mlgx/liftlog/internal/models"
)

func TestCreateAndListTimers(t *testing.T) {
	db := setupTestDB(t)

	rest := models.NewTimer("Repos court", 90)
	long := models.NewTimer("Repos long", 180)
	for _, tm := range []*models.Timer{rest, long} {
		if err := db.CreateTimer(tm); err != nil {
			t.Fatalf("CreateTimer failed: %v", err)
		}
	}

	timers, err := db.ListTimers()
	if err != nil {
		t.Fatalf("ListTimers failed: %v", err)
	}
	if len(timers) != 2 {
		t.Fatalf("Expected 2 timers, got %d", len(timers))
	}
	if timers[0].Name != "Repos court" || timers[0].Order != 0 {
		t.Errorf("First timer mismatch: %s (order %d)", timers[0].Name, timers[0].Order)
	}
	if timers[1].Duration != 180 || timers[1].Order != 1 {
		t.Errorf("Second timer mismatch: %ds (order %d)", timers[1].Duration, timers[1].Order)
	}
}

func TestUpdateTimer(t *testing.T) {
	db := setupTestDB(t)

	tm := models.NewTimer("Repos", 90)
	if err := db.CreateTimer(tm); err != nil {
		t.Fatalf("CreateTimer failed: %v", err)
	}

	if err := db.UpdateTimer(tm.ID, "Repos lourd", 240); err != nil {
		t.Fatalf("UpdateTimer failed: %v", err)
	}

	timers, err := db.ListTimers()
	if err != nil {
		t.Fatalf("ListTimers failed: %v", err)
	}
	if timers[0].Name != "Repos lourd" || timers[0].Duration != 240 {
		t.Errorf("Update not applied: %s %ds", timers[0].Name, timers[0].Duration)
	}
}

func TestDeleteTimer(t *testing.T) {
	db := setupTestDB(t)

	tm := models.NewTimer("Repos", 90)
	if err := db.CreateTimer(tm); err != nil {
		t.Fatalf("CreateTimer failed: %v", err)
	}

	if err := db.DeleteTimer(tm.ID); err != nil {
		t.Fatalf("DeleteTimer failed: %v", err)
	}
	timers, err := db.ListTimers()
	if err != nil {
		t.Fatalf("ListTimers failed: %v", err)
	}
	if len(timers) != 0 {
		t.Errorf("Expected 0 timers, got %d", len(timers))
	}
}

func TestReorderTimers(t *testing.T) {
	db := setupTestDB(t)

	a := models.NewTimer("A", 60)
	b := models.NewTimer("B", 120)
	c := models.NewTimer("C", 180)
	for _, tm := range []*models.Timer{a, b, c} {
		if err := db.CreateTimer(tm); err != nil {
			t.Fatalf("CreateTimer failed: %v", err)
		}
	}

	if err := db.ReorderTimers([]uuid.UUID{c.ID, b.ID, a.ID}); err != nil {
		t.Fatalf("ReorderTimers failed: %v", err)
	}

	timers, err := db.ListTimers()
	if err != nil {
		t.Fatalf("ListTimers failed: %v", err)
	}
	want := []string{"C", "B", "A"}
	for i, tm := range timers {
		if tm.Name != want[i] {
			t.Errorf("Position %d: expected %q, got %q", i, want[i], tm.Name)
		}
	}
}
