package store

import "github.com/phrazzld/classroom/internal/domain"

// AssignmentStore defines the interface for the assignment board.
type AssignmentStore interface {
	// Create validates and inserts a new assignment. The course id is not
	// checked against the catalog.
	// Returns ErrAssignmentExists if the id is taken.
	Create(id, courseID, title, description, dueDate string, maxPoints float64) (*domain.Assignment, error)

	// Add inserts an assignment unless the id exists. Used by bulk loading.
	Add(assignment *domain.Assignment)

	// FindByID retrieves an assignment by id.
	// Returns ErrAssignmentNotFound if the assignment does not exist.
	FindByID(id string) (*domain.Assignment, error)

	// Update overwrites every mutable field of the assignment with the same id.
	// Returns ErrAssignmentNotFound if the assignment does not exist.
	Update(assignment *domain.Assignment) error

	// Delete removes an assignment without touching its grades.
	// Returns ErrAssignmentNotFound if the assignment does not exist.
	Delete(id string) error

	// ListAll returns every assignment in insertion order.
	ListAll() []*domain.Assignment

	// ForCourse returns the assignments of courseID in insertion order.
	ForCourse(courseID string) []*domain.Assignment

	// ForStudent returns the assignments of every course the student is
	// enrolled in, course by course in enrollment order.
	ForStudent(student *domain.User) []*domain.Assignment
}
