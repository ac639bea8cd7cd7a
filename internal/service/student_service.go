package service

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
)

// GradedAssignment pairs an assignment with the student's grade on it.
// Grade is nil while the assignment is ungraded.
type GradedAssignment struct {
	Assignment *domain.Assignment
	Grade      *domain.Grade
}

// CourseGrade is a student's final grade in a course.
type CourseGrade struct {
	Course *domain.Course
	// Percent is earned over possible points times 100. It is 0 when the
	// course has no assignments.
	Percent     float64
	Assignments int
}

// StudentService covers what a signed-in student can see. Course-scoped
// operations fail with ErrNotEnrolled unless the student is enrolled.
type StudentService interface {
	// Student returns the signed-in student.
	Student() *domain.User

	Courses() []*domain.Course
	AssignmentsForCourse(courseID string) (*domain.Course, []GradedAssignment, error)

	// Grades returns every grade with its assignment. Grades whose
	// assignment no longer exists are left out.
	Grades() []GradedAssignment

	FinalGrade(courseID string) (CourseGrade, error)
}

// StudentServiceImpl implements the StudentService interface
type StudentServiceImpl struct {
	student         *domain.User
	courseStore     store.CourseStore
	assignmentStore store.AssignmentStore
	gradeStore      store.GradeStore
	logger          *slog.Logger
}

// NewStudentService creates a StudentService bound to student.
// Returns ErrWrongRole if student is not a student.
func NewStudentService(
	student *domain.User,
	courseStore store.CourseStore,
	assignmentStore store.AssignmentStore,
	gradeStore store.GradeStore,
	logger *slog.Logger,
) (StudentService, error) {
	if !student.IsStudent() {
		return nil, fmt.Errorf("cannot create student service: %w", ErrWrongRole)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &StudentServiceImpl{
		student:         student,
		courseStore:     courseStore,
		assignmentStore: assignmentStore,
		gradeStore:      gradeStore,
		logger: logger.With(
			"component", "student_service",
			"student_id", student.ID,
		),
	}, nil
}

// Student implements StudentService.Student
func (s *StudentServiceImpl) Student() *domain.User {
	return s.student
}

func (s *StudentServiceImpl) enrolledCourse(courseID string) (*domain.Course, error) {
	course, err := s.courseStore.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if !s.student.EnrolledIn(course.ID) {
		s.logger.Debug("access to course without enrollment", "course_id", courseID)
		return nil, ErrNotEnrolled
	}
	return course, nil
}

// Courses implements StudentService.Courses
func (s *StudentServiceImpl) Courses() []*domain.Course {
	return s.courseStore.CoursesForStudent(s.student)
}

// AssignmentsForCourse implements StudentService.AssignmentsForCourse
func (s *StudentServiceImpl) AssignmentsForCourse(courseID string) (*domain.Course, []GradedAssignment, error) {
	course, err := s.enrolledCourse(courseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	assignments := s.assignmentStore.ForCourse(course.ID)
	out := make([]GradedAssignment, 0, len(assignments))
	for _, a := range assignments {
		graded := GradedAssignment{Assignment: a}
		if grade, err := s.gradeStore.GradeFor(s.student.ID, a.ID); err == nil {
			graded.Grade = grade
		}
		out = append(out, graded)
	}

	return course, out, nil
}

// Grades implements StudentService.Grades
func (s *StudentServiceImpl) Grades() []GradedAssignment {
	grades := s.gradeStore.ForStudent(s.student.ID)
	out := make([]GradedAssignment, 0, len(grades))
	for _, g := range grades {
		assignment, err := s.assignmentStore.FindByID(g.AssignmentID)
		if err != nil {
			s.logger.Debug("grade refers to missing assignment",
				"grade_id", g.ID,
				"assignment_id", g.AssignmentID)
			continue
		}
		out = append(out, GradedAssignment{Assignment: assignment, Grade: g})
	}
	return out
}

// FinalGrade implements StudentService.FinalGrade
func (s *StudentServiceImpl) FinalGrade(courseID string) (CourseGrade, error) {
	course, err := s.enrolledCourse(courseID)
	if err != nil {
		return CourseGrade{}, fmt.Errorf("failed to compute final grade: %w", err)
	}

	assignments := s.assignmentStore.ForCourse(course.ID)
	return CourseGrade{
		Course:      course,
		Percent:     s.gradeStore.FinalGradeForCourse(s.student.ID, course.ID, assignments),
		Assignments: len(assignments),
	}, nil
}
