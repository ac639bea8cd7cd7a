package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested record does not exist in the store.
	// This is a generic version of the record-specific not found errors
	// (e.g., ErrUserNotFound, ErrCourseNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when a create would reuse an id already present.
	// The existing record is never overwritten.
	ErrDuplicate = errors.New("entity already exists")

	// ErrConflict is returned when an operation is well formed but the
	// current state forbids it, such as enrolling into a full course.
	ErrConflict = errors.New("conflict with current state")

	// ErrInvalidReference is returned when an operation is handed a user or id
	// that does not resolve to the expected role or record.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidEntity is returned when a record fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidCredentials is returned by Login when the id is unknown or the
	// password does not match. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Record-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrCourseNotFound indicates that the requested course does not exist in the store.
	ErrCourseNotFound = fmt.Errorf("%w: course", ErrNotFound)

	// ErrAssignmentNotFound indicates that the requested assignment does not exist in the store.
	ErrAssignmentNotFound = fmt.Errorf("%w: assignment", ErrNotFound)

	// ErrGradeNotFound indicates that the requested grade does not exist in the store.
	ErrGradeNotFound = fmt.Errorf("%w: grade", ErrNotFound)

	// Record-specific "duplicate" errors

	// ErrUserExists indicates that a user with the given id already exists.
	ErrUserExists = fmt.Errorf("%w: user", ErrDuplicate)

	// ErrCourseExists indicates that a course with the given id already exists.
	ErrCourseExists = fmt.Errorf("%w: course", ErrDuplicate)

	// ErrAssignmentExists indicates that an assignment with the given id already exists.
	ErrAssignmentExists = fmt.Errorf("%w: assignment", ErrDuplicate)

	// ErrGradeExists indicates that a grade with the given id already exists.
	ErrGradeExists = fmt.Errorf("%w: grade", ErrDuplicate)

	// Conflict errors

	// ErrCourseFull indicates that the course already holds as many students
	// as its capacity allows.
	ErrCourseFull = fmt.Errorf("%w: course is full", ErrConflict)

	// ErrAlreadyEnrolled indicates that the student is already in the course.
	ErrAlreadyEnrolled = fmt.Errorf("%w: student already enrolled", ErrConflict)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all record-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsConflictError checks if the error is a capacity or membership conflict.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The record type (e.g., "user", "course")
	Operation string // The operation that failed (e.g., "create", "enroll")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
