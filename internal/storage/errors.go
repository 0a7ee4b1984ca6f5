// ABOUTME: Error sentinels shared by all repositories.
// ABOUTME: Distinguishes expected-row-missing from structural failures.
package storage

import "errors"

// ErrNotFound marks reads that expected exactly one row and found none.
// Deletes and updates of unknown ids are silent no-ops and do not use it.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
