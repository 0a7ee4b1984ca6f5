// ABOUTME: Idempotent schema migration: baseline tables, column probes, backfills.
// ABOUTME: Safe to run on every launch regardless of the prior on-disk version.
package storage

import (
	"fmt"
	"strings"
)

// baselineSchema creates every table at the current revision. Parent tables
// come before the tables that reference them; all foreign keys cascade.
const baselineSchema = `
CREATE TABLE IF NOT EXISTS workouts (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	"order" INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	workout_id TEXT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	"order" INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS exercises (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	name TEXT NOT NULL,
	"order" INTEGER NOT NULL DEFAULT 0,
	image_url TEXT,
	description TEXT,
	muscle_group TEXT,
	type TEXT NOT NULL DEFAULT 'weight_reps',
	category TEXT NOT NULL DEFAULT 'Musculation',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS exercise_logs (
	id TEXT PRIMARY KEY,
	exercise_id TEXT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
	date TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS exercise_templates (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	muscle_group TEXT NOT NULL,
	image_url TEXT,
	description TEXT,
	is_default INTEGER NOT NULL DEFAULT 0,
	type TEXT NOT NULL DEFAULT 'weight_reps',
	category TEXT NOT NULL DEFAULT 'Musculation',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS profile (
	id TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	avatar TEXT,
	last_workout TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS timers (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	duration INTEGER NOT NULL,
	"order" INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS exercise_sets (
	id TEXT PRIMARY KEY,
	log_id TEXT NOT NULL REFERENCES exercise_logs(id) ON DELETE CASCADE,
	repetitions INTEGER,
	weight REAL,
	duration INTEGER,
	"order" INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS measurements (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL REFERENCES profile(id) ON DELETE CASCADE,
	label TEXT NOT NULL,
	value REAL NOT NULL,
	unit TEXT NOT NULL,
	created_at TEXT NOT NULL
);

`

// baselineIndexes must run after the column migrations: on a legacy store the
// "order" columns they cover do not exist until the ALTER steps have run.
const baselineIndexes = `
CREATE INDEX IF NOT EXISTS idx_sessions_workout ON sessions(workout_id, "order");
CREATE INDEX IF NOT EXISTS idx_exercises_session ON exercises(session_id, "order");
CREATE INDEX IF NOT EXISTS idx_logs_exercise_date ON exercise_logs(exercise_id, date);
CREATE INDEX IF NOT EXISTS idx_sets_log ON exercise_sets(log_id, "order");
CREATE INDEX IF NOT EXISTS idx_measurements_profile ON measurements(profile_id);
`

// migration is one independently idempotent schema step. When probe is set it
// is executed first: a failing probe means the patch is still missing and the
// patch statements run; a succeeding probe means the step is a no-op. Steps
// without a probe run unconditionally and must guard themselves with a
// predicate that becomes false once applied.
type migration struct {
	name  string
	probe string
	patch []string
}

// migrations lists every post-baseline step, oldest first. Columns added by
// ALTER stay nullable so the matching backfill can find unmigrated rows.
var migrations = []migration{
	{
		name:  "workouts: manual order column",
		probe: `SELECT [order] FROM workouts LIMIT 1`,
		patch: []string{`ALTER TABLE workouts ADD COLUMN "order" INTEGER`},
	},
	{
		name:  "sessions: manual order column",
		probe: `SELECT [order] FROM sessions LIMIT 1`,
		patch: []string{`ALTER TABLE sessions ADD COLUMN "order" INTEGER`},
	},
	{
		name:  "exercises: manual order column",
		probe: `SELECT [order] FROM exercises LIMIT 1`,
		patch: []string{`ALTER TABLE exercises ADD COLUMN "order" INTEGER`},
	},
	{
		name:  "exercise_sets: manual order column",
		probe: `SELECT [order] FROM exercise_sets LIMIT 1`,
		patch: []string{`ALTER TABLE exercise_sets ADD COLUMN "order" INTEGER`},
	},
	{
		name:  "exercises: illustration and description",
		probe: `SELECT image_url, description FROM exercises LIMIT 1`,
		patch: []string{
			`ALTER TABLE exercises ADD COLUMN image_url TEXT`,
			`ALTER TABLE exercises ADD COLUMN description TEXT`,
		},
	},
	{
		name:  "exercises: muscle group",
		probe: `SELECT muscle_group FROM exercises LIMIT 1`,
		patch: []string{`ALTER TABLE exercises ADD COLUMN muscle_group TEXT`},
	},
	{
		name:  "exercises: type and category",
		probe: `SELECT type, category FROM exercises LIMIT 1`,
		patch: []string{
			`ALTER TABLE exercises ADD COLUMN type TEXT`,
			`ALTER TABLE exercises ADD COLUMN category TEXT`,
		},
	},
	{
		name:  "exercise_templates: type and category",
		probe: `SELECT type, category FROM exercise_templates LIMIT 1`,
		patch: []string{
			`ALTER TABLE exercise_templates ADD COLUMN type TEXT`,
			`ALTER TABLE exercise_templates ADD COLUMN category TEXT`,
		},
	},
	{
		name:  "exercise_sets: duration for time-based sets",
		probe: `SELECT duration FROM exercise_sets LIMIT 1`,
		patch: []string{`ALTER TABLE exercise_sets ADD COLUMN duration INTEGER`},
	},
	{
		name:  "profile: last workout date",
		probe: `SELECT last_workout FROM profile LIMIT 1`,
		patch: []string{`ALTER TABLE profile ADD COLUMN last_workout TEXT`},
	},
	{
		// Legacy rows predate manual ordering. Rank them by insertion order
		// within their parent; the IS NULL predicate goes false once applied.
		name: "backfill: assign order to legacy rows",
		patch: []string{
			`UPDATE workouts SET "order" = (
				SELECT COUNT(*) FROM workouts w2 WHERE w2.rowid < workouts.rowid
			) WHERE "order" IS NULL`,
			`UPDATE sessions SET "order" = (
				SELECT COUNT(*) FROM sessions s2
				WHERE s2.workout_id = sessions.workout_id AND s2.rowid < sessions.rowid
			) WHERE "order" IS NULL`,
			`UPDATE exercises SET "order" = (
				SELECT COUNT(*) FROM exercises e2
				WHERE e2.session_id = exercises.session_id AND e2.rowid < exercises.rowid
			) WHERE "order" IS NULL`,
			`UPDATE exercise_sets SET "order" = (
				SELECT COUNT(*) FROM exercise_sets x2
				WHERE x2.log_id = exercise_sets.log_id AND x2.rowid < exercise_sets.rowid
			) WHERE "order" IS NULL`,
		},
	},
	{
		name: "backfill: derive exercise classification from muscle group",
		patch: []string{
			`UPDATE exercises SET
				type = CASE WHEN muscle_group IN ('Cardio', 'Autres') THEN 'time' ELSE 'weight_reps' END,
				category = CASE
					WHEN muscle_group = 'Cardio' THEN 'Cardio'
					WHEN muscle_group = 'Autres' THEN 'Autres'
					ELSE 'Musculation'
				END
			WHERE type IS NULL OR type = ''`,
			`UPDATE exercise_templates SET
				type = CASE WHEN muscle_group IN ('Cardio', 'Autres') THEN 'time' ELSE 'weight_reps' END,
				category = CASE
					WHEN muscle_group = 'Cardio' THEN 'Cardio'
					WHEN muscle_group = 'Autres' THEN 'Autres'
					ELSE 'Musculation'
				END
			WHERE type IS NULL OR type = ''`,
		},
	},
}

// Migrate brings the store from any prior schema to the current one. Every
// step is independently idempotent, so rerunning after a partial failure is
// safe. Open calls this automatically; tests call it directly.
func (d *DB) Migrate() error {
	if _, err := d.exec(baselineSchema); err != nil {
		return fmt.Errorf("create baseline schema: %w", err)
	}

	for _, m := range migrations {
		if err := d.applyMigration(m); err != nil {
			return fmt.Errorf("migration %q: %w", m.name, err)
		}
	}

	if _, err := d.exec(baselineIndexes); err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// applyMigration runs one probe-then-patch step.
func (d *DB) applyMigration(m migration) error {
	if m.probe != "" {
		rows, err := d.query(m.probe)
		if err == nil {
			rows.Close()
			return nil // column already present
		}
	}

	for _, stmt := range m.patch {
		if _, err := d.exec(stmt); err != nil {
			// A half-applied multi-column step leaves some columns behind;
			// re-adding those is not a failure.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return err
		}
	}
	return nil
}
