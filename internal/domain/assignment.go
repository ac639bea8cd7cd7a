package domain

import (
	"fmt"
	"math"
	"strings"
)

// Common validation errors for Assignment
var (
	ErrEmptyAssignmentID    = fmt.Errorf("%w: assignment ID cannot be empty", ErrValidation)
	ErrEmptyAssignmentTitle = fmt.Errorf("%w: assignment title cannot be empty", ErrValidation)
	ErrInvalidMaxPoints     = fmt.Errorf("%w: max points must be a non-negative number", ErrValidation)
)

// Assignment is a piece of graded work in a course. DueDate is kept as the
// text the teacher typed; it is never parsed.
type Assignment struct {
	ID          string  `json:"id"`
	CourseID    string  `json:"course_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date"`
	MaxPoints   float64 `json:"max_points"`
}

// NewAssignment creates a new Assignment and validates it.
func NewAssignment(id, courseID, title, description, dueDate string, maxPoints float64) (*Assignment, error) {
	assignment := &Assignment{
		ID:          id,
		CourseID:    courseID,
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		MaxPoints:   maxPoints,
	}

	if err := assignment.Validate(); err != nil {
		return nil, err
	}

	return assignment, nil
}

// Validate checks if the Assignment has valid data.
func (a *Assignment) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return ErrEmptyAssignmentID
	}

	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyAssignmentTitle
	}

	if a.MaxPoints < 0 || math.IsNaN(a.MaxPoints) || math.IsInf(a.MaxPoints, 0) {
		return ErrInvalidMaxPoints
	}

	return nil
}
