// Package apperr defines the error taxonomy shared by usecases and handlers.
// Handlers translate these into HTTP status codes; anything outside the
// taxonomy is treated as an internal error and never leaked to the client.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound means the requested record does not exist. Kept distinct
	// from validation failures: an unknown reference is 404, never 400.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized means the HR API key was missing or wrong.
	ErrUnauthorized = errors.New("invalid or missing HR API key")

	// ErrServerMisconfigured means a required server-side setting (the HR
	// API key) is unset. Fails closed: this is a 500, not an open door.
	ErrServerMisconfigured = errors.New("server is not configured")
)

// ValidationError carries per-field messages for rejected input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validation builds a single-field validation error.
func Validation(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
