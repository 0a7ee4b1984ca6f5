// ABOUTME: Tests for the idempotent schema migrator.
// ABOUTME: Covers repeated runs, legacy upgrades, and backfill ranking.
package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func TestMigrateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	// Open already migrated once; repeated runs must be no-ops.
	for i := 0; i < 3; i++ {
		if err := db.Migrate(); err != nil {
			t.Fatalf("Migrate run %d failed: %v", i+1, err)
		}
	}

	// The store stays usable afterwards.
	var count int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM workouts").Scan(&count); err != nil {
		t.Fatalf("Store unusable after repeated migration: %v", err)
	}
}

// legacySchema mimics a database created before manual ordering, exercise
// classification, and time-based sets existed.
const legacySchema = `
CREATE TABLE workouts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE sessions (
	id TEXT PRIMARY KEY,
	workout_id TEXT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE exercises (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE exercise_logs (
	id TEXT PRIMARY KEY,
	exercise_id TEXT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
	date TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE exercise_sets (
	id TEXT PRIMARY KEY,
	log_id TEXT NOT NULL REFERENCES exercise_logs(id) ON DELETE CASCADE,
	repetitions INTEGER,
	weight REAL
);
CREATE TABLE exercise_templates (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	muscle_group TEXT NOT NULL,
	image_url TEXT,
	description TEXT,
	is_default INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE TABLE profile (
	id TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	avatar TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE timers (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	duration INTEGER NOT NULL,
	"order" INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE TABLE measurements (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL REFERENCES profile(id) ON DELETE CASCADE,
	label TEXT NOT NULL,
	value REAL NOT NULL,
	unit TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

func setupLegacyDB(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "liftlog-legacy-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "liftlog.db")
	raw, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open raw database: %v", err)
	}
	defer raw.Close()

	if _, err := raw.Exec(legacySchema); err != nil {
		t.Fatalf("Failed to create legacy schema: %v", err)
	}

	// Three workouts in insertion order; no order column yet.
	seed := []string{
		`INSERT INTO workouts (id, name, created_at) VALUES
			('11111111-1111-1111-1111-111111111111', 'Push Pull Legs', '2023-01-01T10:00:00Z'),
			('22222222-2222-2222-2222-222222222222', 'Upper Lower', '2023-01-02T10:00:00Z'),
			('33333333-3333-3333-3333-333333333333', 'Full Body', '2023-01-03T10:00:00Z')`,
		`INSERT INTO sessions (id, workout_id, name, created_at) VALUES
			('44444444-4444-4444-4444-444444444444', '11111111-1111-1111-1111-111111111111', 'Push', '2023-01-01T10:01:00Z'),
			('55555555-5555-5555-5555-555555555555', '11111111-1111-1111-1111-111111111111', 'Pull', '2023-01-01T10:02:00Z')`,
		`INSERT INTO exercises (id, session_id, name, created_at) VALUES
			('66666666-6666-6666-6666-666666666666', '44444444-4444-4444-4444-444444444444', 'Développé couché', '2023-01-01T10:03:00Z')`,
		`INSERT INTO exercise_templates (id, name, muscle_group, is_default, created_at) VALUES
			('77777777-7777-7777-7777-777777777777', 'Course à pied', 'Cardio', 1, '2023-01-01T10:00:00Z'),
			('88888888-8888-8888-8888-888888888888', 'Squat', 'Jambes', 1, '2023-01-01T10:00:00Z')`,
	}
	for _, stmt := range seed {
		if _, err := raw.Exec(stmt); err != nil {
			t.Fatalf("Failed to seed legacy data: %v", err)
		}
	}

	return dbPath
}

func TestMigrateUpgradesLegacySchema(t *testing.T) {
	dbPath := setupLegacyDB(t)

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open on legacy database failed: %v", err)
	}
	defer db.Close()

	// Order backfill ranks rows by insertion order.
	workouts, err := db.ListWorkouts()
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 3 {
		t.Fatalf("Expected 3 workouts, got %d", len(workouts))
	}
	for i, w := range workouts {
		if w.Order != i {
			t.Errorf("Workout %d: expected order %d, got %d", i, i, w.Order)
		}
	}
	if workouts[0].Name != "Push Pull Legs" || workouts[2].Name != "Full Body" {
		t.Errorf("Backfill changed relative order: %s, %s", workouts[0].Name, workouts[2].Name)
	}

	// Classification backfill derives type and category from muscle group.
	templates, err := db.ListTemplates("")
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}
	byGroup := map[string]string{}
	for _, tpl := range templates {
		byGroup[tpl.MuscleGroup] = string(tpl.Type) + "/" + string(tpl.Category)
	}
	if byGroup["Cardio"] != "time/Cardio" {
		t.Errorf("Cardio template classification: got %s", byGroup["Cardio"])
	}
	if byGroup["Jambes"] != "weight_reps/Musculation" {
		t.Errorf("Jambes template classification: got %s", byGroup["Jambes"])
	}

	// Exercises with no muscle group default to weight/reps Musculation.
	exercises, err := db.GetExercisesBySessionID(mustParseUUID(t, "44444444-4444-4444-4444-444444444444"))
	if err != nil {
		t.Fatalf("GetExercisesBySessionID failed: %v", err)
	}
	if len(exercises) != 1 {
		t.Fatalf("Expected 1 exercise, got %d", len(exercises))
	}
	if exercises[0].Type != "weight_reps" || exercises[0].Category != "Musculation" {
		t.Errorf("Exercise classification: got %s/%s", exercises[0].Type, exercises[0].Category)
	}

	// The upgraded store accepts current-revision writes.
	if err := db.Migrate(); err != nil {
		t.Fatalf("Re-running Migrate on upgraded store failed: %v", err)
	}
}

func TestMigrateHalfAppliedStep(t *testing.T) {
	dbPath := setupLegacyDB(t)

	// Simulate a crash between the two ALTERs of a multi-column step.
	raw, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open raw database: %v", err)
	}
	if _, err := raw.Exec(`ALTER TABLE exercises ADD COLUMN image_url TEXT`); err != nil {
		t.Fatalf("Failed to half-apply step: %v", err)
	}
	raw.Close()

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open after half-applied step failed: %v", err)
	}
	defer db.Close()

	// Both columns must exist now.
	rows, err := db.db.Query(`SELECT image_url, description FROM exercises LIMIT 1`)
	if err != nil {
		t.Fatalf("Columns missing after recovery: %v", err)
	}
	rows.Close()
}
