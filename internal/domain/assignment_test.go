package domain

import (
	"math"
	"testing"
)

func TestNewAssignment(t *testing.T) {
	t.Parallel()

	a, err := NewAssignment("A1", "CS101", "Homework 1", "Read ch. 1", "2024-12-15", 50)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if a.DueDate != "2024-12-15" || a.MaxPoints != 50 {
		t.Errorf("Unexpected assignment %+v", a)
	}

	// Zero max points is allowed; the final grade guards the division.
	if _, err := NewAssignment("A2", "CS101", "Survey", "", "", 0); err != nil {
		t.Errorf("Expected no error for zero max points, got %v", err)
	}

	if _, err := NewAssignment("", "CS101", "Homework", "", "", 10); err != ErrEmptyAssignmentID {
		t.Errorf("Expected error %v, got %v", ErrEmptyAssignmentID, err)
	}
	if _, err := NewAssignment("A3", "CS101", "", "", "", 10); err != ErrEmptyAssignmentTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyAssignmentTitle, err)
	}
	if _, err := NewAssignment("A4", "CS101", "Homework", "", "", -1); err != ErrInvalidMaxPoints {
		t.Errorf("Expected error %v, got %v", ErrInvalidMaxPoints, err)
	}
	if _, err := NewAssignment("A5", "CS101", "Homework", "", "", math.NaN()); err != ErrInvalidMaxPoints {
		t.Errorf("Expected error %v, got %v", ErrInvalidMaxPoints, err)
	}
}
