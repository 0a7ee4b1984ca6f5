// ABOUTME: Bounded exponential-backoff retry around individual statements.
// ABOUTME: Absorbs transient SQLITE_BUSY contention; everything else fails fast.
package storage

import (
	"database/sql"
	"strings"
	"time"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = 100 * time.Millisecond
)

// IsLocked reports whether err is a transient lock/busy error from the
// single-writer store. Only these errors are worth retrying.
func IsLocked(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "SQLITE_BUSY")
}

// withRetry runs op, retrying with doubled delays while the store reports
// lock contention. Structural errors propagate on the first attempt; after
// every attempt has failed the last error propagates.
func (d *DB) withRetry(op func() error) error {
	delay := d.retryDelay
	var err error
	for attempt := 0; attempt < d.retryAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if !IsLocked(err) {
			return err
		}
		if attempt < d.retryAttempts-1 {
			time.Sleep(delay)
			delay *= 2
		}
	}
	return err
}

// exec runs a statement through the retry executor.
func (d *DB) exec(query string, args ...interface{}) (sql.Result, error) {
	var res sql.Result
	err := d.withRetry(func() error {
		var e error
		res, e = d.db.Exec(query, args...)
		return e
	})
	return res, err
}

// query runs a multi-row query through the retry executor.
func (d *DB) query(query string, args ...interface{}) (*sql.Rows, error) {
	var rows *sql.Rows
	err := d.withRetry(func() error {
		var e error
		rows, e = d.db.Query(query, args...)
		return e
	})
	return rows, err
}

// queryRowScan runs a single-row query through the retry executor and scans
// the result. sql.ErrNoRows propagates unchanged for callers to translate.
func (d *DB) queryRowScan(query string, args []interface{}, dest ...interface{}) error {
	return d.withRetry(func() error {
		return d.db.QueryRow(query, args...).Scan(dest...)
	})
}
