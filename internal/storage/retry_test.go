// ABOUTME: Tests for the bounded lock-retry executor.
// ABOUTME: Locked errors retry with doubled delays; everything else fails fast.
package storage

import (
	"errors"
	"testing"
	"time"
)

func TestIsLocked(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("database is locked"), true},
		{errors.New("database table is locked"), true},
		{errors.New("SQLITE_BUSY: database is busy"), true},
		{errors.New("stmt failed: database is locked (5)"), true},
		{errors.New("no such table: workouts"), false},
		{errors.New("UNIQUE constraint failed: workouts.id"), false},
	}
	for _, c := range cases {
		if got := IsLocked(c.err); got != c.want {
			t.Errorf("IsLocked(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestWithRetryExhaustsAttemptsOnLock(t *testing.T) {
	db := setupTestDB(t)
	db.retryDelay = time.Millisecond

	attempts := 0
	lockErr := errors.New("database is locked")
	err := db.withRetry(func() error {
		attempts++
		return lockErr
	})

	if attempts != defaultRetryAttempts {
		t.Errorf("Expected %d attempts, got %d", defaultRetryAttempts, attempts)
	}
	if !errors.Is(err, lockErr) {
		t.Errorf("Expected last lock error, got %v", err)
	}
}

func TestWithRetryFailsFastOnStructuralError(t *testing.T) {
	db := setupTestDB(t)
	db.retryDelay = time.Millisecond

	attempts := 0
	structural := errors.New("no such column: nope")
	err := db.withRetry(func() error {
		attempts++
		return structural
	})

	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got %d", attempts)
	}
	if !errors.Is(err, structural) {
		t.Errorf("Expected structural error, got %v", err)
	}
}

func TestWithRetryRecoversWhenLockClears(t *testing.T) {
	db := setupTestDB(t)
	db.retryDelay = time.Millisecond

	attempts := 0
	err := db.withRetry(func() error {
		attempts++
		if attempts < 3 {
			return errors.New("database is locked")
		}
		return nil
	})

	if err != nil {
		t.Errorf("Expected success after lock cleared, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
}
