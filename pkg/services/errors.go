// Package services implements the application operations behind the HTTP
// API: submission, status, cancellation, results, and reference-data
// seeding.
package services

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped to HTTP statuses by the API layer.
var (
	// ErrNotFound means the request ID is unknown or archived.
	ErrNotFound = errors.New("request not found")

	// ErrAlreadyTerminal means the request cannot be cancelled anymore.
	ErrAlreadyTerminal = errors.New("request already terminal")

	// ErrProcessing means results are not composed yet.
	ErrProcessing = errors.New("request still processing")

	// ErrRequestFailed means the request terminated without results.
	ErrRequestFailed = errors.New("request failed")
)

// ValidationError reports an invalid submission or query field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
