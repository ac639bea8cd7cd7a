package domain

import (
	"fmt"
	"strings"
)

// Common validation errors for Grade
var (
	ErrEmptyGradeID           = fmt.Errorf("%w: grade ID cannot be empty", ErrValidation)
	ErrEmptyGradeStudentID    = fmt.Errorf("%w: grade student ID cannot be empty", ErrValidation)
	ErrEmptyGradeAssignmentID = fmt.Errorf("%w: grade assignment ID cannot be empty", ErrValidation)
)

// Grade is the points one student earned on one assignment.
// Points are expected to lie in 0..MaxPoints of the assignment but the
// record does not enforce it.
type Grade struct {
	ID           string  `json:"id"`
	StudentID    string  `json:"student_id"`
	AssignmentID string  `json:"assignment_id"`
	Points       float64 `json:"points"`
}

// NewGrade creates a new Grade and validates it.
func NewGrade(id, studentID, assignmentID string, points float64) (*Grade, error) {
	grade := &Grade{
		ID:           id,
		StudentID:    studentID,
		AssignmentID: assignmentID,
		Points:       points,
	}

	if err := grade.Validate(); err != nil {
		return nil, err
	}

	return grade, nil
}

// Validate checks if the Grade has valid data.
func (g *Grade) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return ErrEmptyGradeID
	}

	if strings.TrimSpace(g.StudentID) == "" {
		return ErrEmptyGradeStudentID
	}

	if strings.TrimSpace(g.AssignmentID) == "" {
		return ErrEmptyGradeAssignmentID
	}

	return nil
}

// InRange reports whether the points lie within 0..maxPoints.
func (g *Grade) InRange(maxPoints float64) bool {
	return g.Points >= 0 && g.Points <= maxPoints
}
