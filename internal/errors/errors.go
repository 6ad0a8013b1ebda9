package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means the store is absent or unreachable. Read paths
	// degrade to a fallback; it is never shown to end users.
	ErrNotConfigured = errors.New("store not configured")

	// ErrNoCandidates means the rotation pool has no enabled topics.
	ErrNoCandidates = errors.New("no content available")

	// ErrWriteConflict means a uniqueness constraint rejected a concurrent insert.
	ErrWriteConflict = errors.New("write conflict")
)

// ValidationError rejects a write with a field-level reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a *ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
