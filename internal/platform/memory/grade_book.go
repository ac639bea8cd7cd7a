package memory

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
)

// GradeBook implements store.GradeStore over an in-memory collection.
type GradeBook struct {
	grades *collection[*domain.Grade]
	logger *slog.Logger
}

// Ensure GradeBook implements store.GradeStore interface
var _ store.GradeStore = (*GradeBook)(nil)

// NewGradeBook creates an empty grade book.
// If logger is nil, a default logger will be used.
func NewGradeBook(logger *slog.Logger) *GradeBook {
	if logger == nil {
		logger = slog.Default()
	}

	return &GradeBook{
		grades: newCollection[*domain.Grade](),
		logger: logger.With(slog.String("component", "grade_book")),
	}
}

// Create implements store.GradeStore.Create
func (g *GradeBook) Create(id, studentID, assignmentID string, points float64) (*domain.Grade, error) {
	grade, err := domain.NewGrade(id, studentID, assignmentID, points)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if !g.grades.insert(grade.ID, grade) {
		return nil, store.ErrGradeExists
	}

	g.logger.Debug("grade created",
		slog.String("grade_id", grade.ID),
		slog.String("student_id", grade.StudentID),
		slog.String("assignment_id", grade.AssignmentID))

	return grade, nil
}

// Add implements store.GradeStore.Add
func (g *GradeBook) Add(grade *domain.Grade) {
	if grade == nil {
		return
	}

	if err := grade.Validate(); err != nil {
		g.logger.Warn("skipping invalid grade",
			slog.String("grade_id", grade.ID),
			slog.String("error", err.Error()))
		return
	}

	if !g.grades.insert(grade.ID, grade) {
		g.logger.Debug("skipping duplicate grade", slog.String("grade_id", grade.ID))
	}
}

// FindByID implements store.GradeStore.FindByID
func (g *GradeBook) FindByID(id string) (*domain.Grade, error) {
	grade, ok := g.grades.get(id)
	if !ok {
		return nil, store.ErrGradeNotFound
	}
	return grade, nil
}

// Update implements store.GradeStore.Update
func (g *GradeBook) Update(grade *domain.Grade) error {
	if grade == nil {
		return fmt.Errorf("%w: nil grade", store.ErrInvalidEntity)
	}

	existing, ok := g.grades.get(grade.ID)
	if !ok {
		return store.ErrGradeNotFound
	}

	if err := grade.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	existing.StudentID = grade.StudentID
	existing.AssignmentID = grade.AssignmentID
	existing.Points = grade.Points

	return nil
}

// Delete implements store.GradeStore.Delete
func (g *GradeBook) Delete(id string) error {
	if !g.grades.remove(id) {
		return store.ErrGradeNotFound
	}
	g.logger.Debug("grade deleted", slog.String("grade_id", id))
	return nil
}

// ListAll implements store.GradeStore.ListAll
func (g *GradeBook) ListAll() []*domain.Grade {
	return g.grades.values()
}

// ForStudent implements store.GradeStore.ForStudent
func (g *GradeBook) ForStudent(studentID string) []*domain.Grade {
	return g.grades.filter(func(grade *domain.Grade) bool {
		return grade.StudentID == studentID
	})
}

// ForAssignment implements store.GradeStore.ForAssignment
func (g *GradeBook) ForAssignment(assignmentID string) []*domain.Grade {
	return g.grades.filter(func(grade *domain.Grade) bool {
		return grade.AssignmentID == assignmentID
	})
}

// GradeFor implements store.GradeStore.GradeFor
func (g *GradeBook) GradeFor(studentID, assignmentID string) (*domain.Grade, error) {
	for _, id := range g.grades.order {
		grade := g.grades.byID[id]
		if grade.StudentID == studentID && grade.AssignmentID == assignmentID {
			return grade, nil
		}
	}
	return nil, store.ErrGradeNotFound
}

// FinalGradeForCourse implements store.GradeStore.FinalGradeForCourse
// An ungraded assignment counts as zero earned points. The assignment list is
// taken as given; it is not filtered by courseID.
func (g *GradeBook) FinalGradeForCourse(studentID, courseID string, assignments []*domain.Assignment) float64 {
	if len(assignments) == 0 {
		return 0
	}

	var earned, possible float64
	for _, a := range assignments {
		if a == nil {
			continue
		}
		possible += a.MaxPoints
		if grade, err := g.GradeFor(studentID, a.ID); err == nil {
			earned += grade.Points
		}
	}

	if possible == 0 {
		return 0
	}

	percent := earned / possible * 100
	g.logger.Debug("final grade computed",
		slog.String("student_id", studentID),
		slog.String("course_id", courseID),
		slog.Float64("percent", percent))

	return percent
}
