package memory

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
)

// AssignmentBoard implements store.AssignmentStore over an in-memory collection.
type AssignmentBoard struct {
	assignments *collection[*domain.Assignment]
	logger      *slog.Logger
}

// Ensure AssignmentBoard implements store.AssignmentStore interface
var _ store.AssignmentStore = (*AssignmentBoard)(nil)

// NewAssignmentBoard creates an empty assignment board.
// If logger is nil, a default logger will be used.
func NewAssignmentBoard(logger *slog.Logger) *AssignmentBoard {
	if logger == nil {
		logger = slog.Default()
	}

	return &AssignmentBoard{
		assignments: newCollection[*domain.Assignment](),
		logger:      logger.With(slog.String("component", "assignment_board")),
	}
}

// Create implements store.AssignmentStore.Create
func (b *AssignmentBoard) Create(
	id, courseID, title, description, dueDate string,
	maxPoints float64,
) (*domain.Assignment, error) {
	assignment, err := domain.NewAssignment(id, courseID, title, description, dueDate, maxPoints)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if !b.assignments.insert(assignment.ID, assignment) {
		return nil, store.ErrAssignmentExists
	}

	b.logger.Debug("assignment created",
		slog.String("assignment_id", assignment.ID),
		slog.String("course_id", assignment.CourseID))

	return assignment, nil
}

// Add implements store.AssignmentStore.Add
func (b *AssignmentBoard) Add(assignment *domain.Assignment) {
	if assignment == nil {
		return
	}

	if err := assignment.Validate(); err != nil {
		b.logger.Warn("skipping invalid assignment",
			slog.String("assignment_id", assignment.ID),
			slog.String("error", err.Error()))
		return
	}

	if !b.assignments.insert(assignment.ID, assignment) {
		b.logger.Debug("skipping duplicate assignment", slog.String("assignment_id", assignment.ID))
	}
}

// FindByID implements store.AssignmentStore.FindByID
func (b *AssignmentBoard) FindByID(id string) (*domain.Assignment, error) {
	assignment, ok := b.assignments.get(id)
	if !ok {
		return nil, store.ErrAssignmentNotFound
	}
	return assignment, nil
}

// Update implements store.AssignmentStore.Update
func (b *AssignmentBoard) Update(assignment *domain.Assignment) error {
	if assignment == nil {
		return fmt.Errorf("%w: nil assignment", store.ErrInvalidEntity)
	}

	existing, ok := b.assignments.get(assignment.ID)
	if !ok {
		return store.ErrAssignmentNotFound
	}

	if err := assignment.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	existing.CourseID = assignment.CourseID
	existing.Title = assignment.Title
	existing.Description = assignment.Description
	existing.DueDate = assignment.DueDate
	existing.MaxPoints = assignment.MaxPoints

	return nil
}

// Delete implements store.AssignmentStore.Delete
func (b *AssignmentBoard) Delete(id string) error {
	if !b.assignments.remove(id) {
		return store.ErrAssignmentNotFound
	}
	b.logger.Debug("assignment deleted", slog.String("assignment_id", id))
	return nil
}

// ListAll implements store.AssignmentStore.ListAll
func (b *AssignmentBoard) ListAll() []*domain.Assignment {
	return b.assignments.values()
}

// ForCourse implements store.AssignmentStore.ForCourse
// The course id is matched as a plain string, so assignments of a deleted
// course are still returned.
func (b *AssignmentBoard) ForCourse(courseID string) []*domain.Assignment {
	return b.assignments.filter(func(a *domain.Assignment) bool {
		return a.CourseID == courseID
	})
}

// ForStudent implements store.AssignmentStore.ForStudent
func (b *AssignmentBoard) ForStudent(student *domain.User) []*domain.Assignment {
	out := make([]*domain.Assignment, 0)
	for _, courseID := range student.EnrolledCourseIDs() {
		out = append(out, b.ForCourse(courseID)...)
	}
	return out
}
