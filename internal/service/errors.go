package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
var (
	// ErrWrongRole indicates a user exists but does not have the role the
	// operation needs, e.g. enrolling a teacher in a course.
	ErrWrongRole = errors.New("user has the wrong role for this operation")

	// ErrNotAssigned indicates a teacher tried to act on a course they do not teach.
	ErrNotAssigned = errors.New("teacher is not assigned to this course")

	// ErrNotEnrolled indicates a student tried to view a course they are not enrolled in.
	ErrNotEnrolled = errors.New("student is not enrolled in this course")

	// ErrPointsOutOfRange indicates a grade outside 0..max points of its assignment.
	ErrPointsOutOfRange = errors.New("points are outside the assignment's range")

	// ErrInvalidRequest indicates a request failed field validation.
	ErrInvalidRequest = errors.New("invalid request")
)
