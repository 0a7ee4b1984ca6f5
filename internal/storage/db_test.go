// ABOUTME: Shared test setup and database lifecycle tests.
// ABOUTME: Each test opens a fresh store in a temp directory.
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/mlgx/liftlog/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "liftlog-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "liftlog.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func mustParseUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("Failed to parse UUID %q: %v", s, err)
	}
	return id
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "deeper", "liftlog.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("Database file not created: %v", err)
	}
	if db.Path() != dbPath {
		t.Errorf("Path mismatch: got %s, want %s", db.Path(), dbPath)
	}
}

func TestOpenEnforcesForeignKeys(t *testing.T) {
	db := setupTestDB(t)

	var enabled int
	if err := db.db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("Failed to read pragma: %v", err)
	}
	if enabled != 1 {
		t.Errorf("Expected foreign_keys = 1, got %d", enabled)
	}
}

func TestForeignKeysHoldOnSecondPoolConnection(t *testing.T) {
	db := setupTestDB(t)

	// Keep an iterator open so its connection stays checked out and the
	// pragma read below is forced onto a freshly opened connection.
	rows, err := db.db.Query("SELECT name FROM exercise_templates")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	defer rows.Close()
	if !rows.Next() {
		t.Fatal("Expected at least one seeded template")
	}

	var enabled int
	if err := db.db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		t.Fatalf("Failed to read pragma: %v", err)
	}
	if enabled != 1 {
		t.Errorf("Expected foreign_keys = 1 on second connection, got %d", enabled)
	}
}

func TestDeleteCascadesOnSecondPoolConnection(t *testing.T) {
	db := setupTestDB(t)

	w := models.NewWorkout("PPL")
	if err := db.CreateWorkout(w); err != nil {
		t.Fatalf("CreateWorkout failed: %v", err)
	}
	s := models.NewSession(w.ID, "Push")
	if err := db.CreateSession(s); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	// Pin the idle connection with an open iterator so the delete runs on
	// a second one. Cascades must still fire there.
	rows, err := db.db.Query("SELECT id FROM workouts")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if !rows.Next() {
		rows.Close()
		t.Fatal("Expected a workout row")
	}

	if err := db.DeleteWorkout(w.ID); err != nil {
		rows.Close()
		t.Fatalf("DeleteWorkout failed: %v", err)
	}
	rows.Close()

	var count int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 sessions after cascading delete, got %d", count)
	}
}
