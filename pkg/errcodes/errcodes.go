// Package errcodes defines the error classes shared between the usecase
// layer and the HTTP layer.
package errcodes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound covers both missing records and records the actor is
	// not allowed to know exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthenticated is returned when an operation requires a
	// signed-in actor and none is present.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnauthorized is returned when the actor is known but lacks
	// permission for the requested mutation. Distinct from ErrNotFound.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError rejects a request atomically with per-field messages.
// Illegal state transitions are surfaced through this class as well.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records another field failure on the same error.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
