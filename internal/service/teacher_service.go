package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
)

// CreateAssignmentRequest holds the fields of a new assignment.
type CreateAssignmentRequest struct {
	ID          string `validate:"required"`
	CourseID    string `validate:"required"`
	Title       string `validate:"required"`
	Description string
	DueDate     string  `validate:"required"`
	MaxPoints   float64 `validate:"gte=0"`
}

// TeacherService covers what a signed-in teacher can do. Every
// course-scoped operation fails with ErrNotAssigned unless the course's
// teacher is the signed-in teacher.
type TeacherService interface {
	// Teacher returns the signed-in teacher.
	Teacher() *domain.User

	Courses() []*domain.Course
	StudentsInCourse(courseID string) (*domain.Course, []*domain.User, error)
	CreateAssignment(req CreateAssignmentRequest) (*domain.Assignment, error)

	// RecordGrade creates the student's grade for the assignment or updates
	// the existing one. created reports which happened.
	RecordGrade(assignmentID, studentID string, points float64) (grade *domain.Grade, created bool, err error)

	AssignmentsForCourse(courseID string) (*domain.Course, []*domain.Assignment, error)
}

// TeacherServiceImpl implements the TeacherService interface
type TeacherServiceImpl struct {
	teacher         *domain.User
	userStore       store.UserStore
	courseStore     store.CourseStore
	assignmentStore store.AssignmentStore
	gradeStore      store.GradeStore
	newGradeID      func() string
	logger          *slog.Logger
}

// NewTeacherService creates a TeacherService bound to teacher.
// Returns ErrWrongRole if teacher is not a teacher.
func NewTeacherService(
	teacher *domain.User,
	userStore store.UserStore,
	courseStore store.CourseStore,
	assignmentStore store.AssignmentStore,
	gradeStore store.GradeStore,
	logger *slog.Logger,
) (TeacherService, error) {
	if !teacher.IsTeacher() {
		return nil, fmt.Errorf("cannot create teacher service: %w", ErrWrongRole)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TeacherServiceImpl{
		teacher:         teacher,
		userStore:       userStore,
		courseStore:     courseStore,
		assignmentStore: assignmentStore,
		gradeStore:      gradeStore,
		newGradeID:      func() string { return "G-" + uuid.NewString() },
		logger: logger.With(
			"component", "teacher_service",
			"teacher_id", teacher.ID,
		),
	}, nil
}

// Teacher implements TeacherService.Teacher
func (s *TeacherServiceImpl) Teacher() *domain.User {
	return s.teacher
}

// ownedCourse returns the course if the signed-in teacher teaches it.
func (s *TeacherServiceImpl) ownedCourse(courseID string) (*domain.Course, error) {
	course, err := s.courseStore.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if !course.HasTeacher(s.teacher.ID) {
		s.logger.Warn("access to course not assigned to teacher", "course_id", courseID)
		return nil, ErrNotAssigned
	}
	return course, nil
}

// Courses implements TeacherService.Courses
func (s *TeacherServiceImpl) Courses() []*domain.Course {
	return s.courseStore.CoursesForTeacher(s.teacher.ID)
}

// StudentsInCourse implements TeacherService.StudentsInCourse
func (s *TeacherServiceImpl) StudentsInCourse(courseID string) (*domain.Course, []*domain.User, error) {
	course, err := s.ownedCourse(courseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list students: %w", err)
	}

	students := s.courseStore.StudentsInCourse(course.ID, s.userStore.ListByRole(domain.RoleStudent))
	return course, students, nil
}

// CreateAssignment implements TeacherService.CreateAssignment
func (s *TeacherServiceImpl) CreateAssignment(req CreateAssignmentRequest) (*domain.Assignment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(req.ID)
	if _, err := s.assignmentStore.FindByID(id); err == nil {
		return nil, fmt.Errorf("failed to create assignment: %w", store.ErrAssignmentExists)
	}

	course, err := s.ownedCourse(strings.TrimSpace(req.CourseID))
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	assignment, err := s.assignmentStore.Create(id, course.ID, req.Title, req.Description, req.DueDate, req.MaxPoints)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.logger.Info("assignment created",
		"assignment_id", assignment.ID,
		"course_id", course.ID,
		"max_points", assignment.MaxPoints)

	return assignment, nil
}

// RecordGrade implements TeacherService.RecordGrade
func (s *TeacherServiceImpl) RecordGrade(
	assignmentID, studentID string,
	points float64,
) (*domain.Grade, bool, error) {
	assignment, err := s.assignmentStore.FindByID(assignmentID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to record grade: %w", err)
	}

	if _, err := s.ownedCourse(assignment.CourseID); err != nil {
		// A grade for an assignment of a deleted course is refused too.
		if errors.Is(err, store.ErrCourseNotFound) {
			err = ErrNotAssigned
		}
		return nil, false, fmt.Errorf("failed to record grade: %w", err)
	}

	if _, err := findUserWithRole(s.userStore, studentID, domain.RoleStudent); err != nil {
		return nil, false, fmt.Errorf("failed to record grade: %w", err)
	}

	if math.IsNaN(points) || points < 0 || points > assignment.MaxPoints {
		return nil, false, fmt.Errorf("failed to record grade: %w: %g not in 0..%g",
			ErrPointsOutOfRange, points, assignment.MaxPoints)
	}

	existing, err := s.gradeStore.GradeFor(studentID, assignmentID)
	switch {
	case err == nil:
		update := *existing
		update.Points = points
		if err := s.gradeStore.Update(&update); err != nil {
			return nil, false, fmt.Errorf("failed to update grade: %w", err)
		}
		s.logger.Info("grade updated",
			"grade_id", existing.ID,
			"assignment_id", assignmentID,
			"student_id", studentID)
		return existing, false, nil

	case errors.Is(err, store.ErrGradeNotFound):
		grade, err := s.gradeStore.Create(s.newGradeID(), studentID, assignmentID, points)
		if err != nil {
			return nil, false, fmt.Errorf("failed to create grade: %w", err)
		}
		s.logger.Info("grade created",
			"grade_id", grade.ID,
			"assignment_id", assignmentID,
			"student_id", studentID)
		return grade, true, nil

	default:
		return nil, false, fmt.Errorf("failed to look up grade: %w", err)
	}
}

// AssignmentsForCourse implements TeacherService.AssignmentsForCourse
func (s *TeacherServiceImpl) AssignmentsForCourse(courseID string) (*domain.Course, []*domain.Assignment, error) {
	course, err := s.ownedCourse(courseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	return course, s.assignmentStore.ForCourse(course.ID), nil
}
