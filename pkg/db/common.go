package db

import (
	"errors"
	"strings"
)

// errCritical marks errors the retrier should not repeat
var errCritical = errors.New("critical error")

// errVersionConflict signals that a document changed between read and conditional write
var errVersionConflict = errors.New("feed version conflict")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is makes criticalError match errCritical, the stop error passed to repeater
func (e *criticalError) Is(target error) bool {
	return target == errCritical
}

// unwrapCritical strips the criticalError marker so callers see the underlying error
func unwrapCritical(err error) error {
	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
