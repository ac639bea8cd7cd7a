package store

import "github.com/phrazzld/classroom/internal/domain"

// GradeStore defines the interface for the grade book.
type GradeStore interface {
	// Create validates and inserts a new grade. Points are not range checked.
	// Returns ErrGradeExists if the id is taken.
	Create(id, studentID, assignmentID string, points float64) (*domain.Grade, error)

	// Add inserts a grade unless the id exists. Used by bulk loading.
	Add(grade *domain.Grade)

	// FindByID retrieves a grade by id.
	// Returns ErrGradeNotFound if the grade does not exist.
	FindByID(id string) (*domain.Grade, error)

	// Update overwrites the student id, assignment id and points of the grade
	// with the same id.
	// Returns ErrGradeNotFound if the grade does not exist.
	Update(grade *domain.Grade) error

	// Delete removes a grade.
	// Returns ErrGradeNotFound if the grade does not exist.
	Delete(id string) error

	// ListAll returns every grade in insertion order.
	ListAll() []*domain.Grade

	// ForStudent returns the grades recorded for studentID.
	ForStudent(studentID string) []*domain.Grade

	// ForAssignment returns the grades recorded for assignmentID.
	ForAssignment(assignmentID string) []*domain.Grade

	// GradeFor returns the first grade recorded for the student on the
	// assignment. Returns ErrGradeNotFound if there is none.
	GradeFor(studentID, assignmentID string) (*domain.Grade, error)

	// FinalGradeForCourse returns the student's percentage over the given
	// course assignments: 100 * earned / possible, or 0 when nothing is
	// possible. The result is not clamped.
	FinalGradeForCourse(studentID, courseID string, assignments []*domain.Assignment) float64
}
