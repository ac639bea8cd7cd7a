// Package domain defines the core records and their validation errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a record fails validation.
	// Record-specific errors wrap it so callers can test for the whole class
	// with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRole is returned when a role string is not one of the known roles.
	ErrInvalidRole = errors.New("invalid role")
)
