// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DB wraps the single SQLite connection shared by all repositories.
// Construct one with Open and pass it to every consumer; there is no
// package-level instance.
type DB struct {
	db     *sql.DB
	dbPath string

	retryAttempts int
	retryDelay    time.Duration
}

// Open opens or creates a SQLite database at the given path, applies the
// pragmas, and brings the schema up to date. A migration failure aborts the
// open; the caller must treat that as fatal.
func Open(dbPath string) (*DB, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	// Pragmas go in the DSN so the driver applies them to every pooled
	// connection. A one-off Exec("PRAGMA ...") only configures whichever
	// connection happens to run it; foreign_keys in particular is
	// per-connection, and losing it silently disables ON DELETE CASCADE.
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	d := &DB{
		db:            db,
		dbPath:        dbPath,
		retryAttempts: defaultRetryAttempts,
		retryDelay:    defaultRetryDelay,
	}

	if err := d.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return d, nil
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.dbPath
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.db.Close()
}
