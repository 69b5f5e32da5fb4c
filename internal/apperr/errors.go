// Package apperr defines the sentinel errors shared across services and
// handlers. Handlers map these to HTTP responses; services never touch
// status codes directly.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common application errors
var (
	// ErrForbidden means the actor lacks the role or ownership required
	// for the operation. Terminal for the request.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound covers both genuinely absent resources and resources
	// deliberately hidden from the caller (e.g. an unpublished job fetched
	// publicly). Both map to the same response so existence never leaks.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyApplied is returned when a job seeker applies twice to the
	// same posting. User-facing and recoverable.
	ErrAlreadyApplied = errors.New("you have already applied to this job")

	// ErrProfileRequired is returned when a job seeker without a profile
	// tries to apply.
	ErrProfileRequired = errors.New("you must complete your profile before applying")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrRegistrationTaken  = errors.New("registration number is already registered")
)

// ValidationError carries field-keyed messages for malformed input. The
// caller can fix the listed fields and resubmit.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidation builds a single-field validation error.
func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// AsValidation extracts a *ValidationError from err, if present.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
