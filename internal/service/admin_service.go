package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
)

// studentIDPrefix starts every generated student id, e.g. STUDENT007.
const studentIDPrefix = "STUDENT"

// CreateStudentRequest holds the fields of a new student account.
// An empty ID is replaced by the next generated student id.
type CreateStudentRequest struct {
	ID       string
	Password string `validate:"required,min=3"`
	Name     string `validate:"required"`
	Major    string `validate:"required"`
}

// CreateTeacherRequest holds the fields of a new teacher account.
type CreateTeacherRequest struct {
	ID         string `validate:"required"`
	Password   string `validate:"required,min=3"`
	Name       string `validate:"required"`
	Department string `validate:"required"`
}

// UpdateUserRequest changes an existing student or teacher. Empty fields
// keep their current value. Detail is the major for a student and the
// department for a teacher.
type UpdateUserRequest struct {
	ID       string `validate:"required"`
	Password string `validate:"omitempty,min=3"`
	Name     string
	Detail   string
}

// CreateCourseRequest holds the fields of a new course. An empty TeacherID
// leaves the course unassigned; otherwise the teacher must already exist.
type CreateCourseRequest struct {
	ID          string `validate:"required"`
	Name        string `validate:"required"`
	Description string
	TeacherID   string
	Capacity    int `validate:"gt=0"`
}

// AdminService covers the administrator's account and course management.
type AdminService interface {
	// NextStudentID returns the id CreateStudent would generate.
	NextStudentID() string

	CreateStudent(req CreateStudentRequest) (*domain.User, error)
	CreateTeacher(req CreateTeacherRequest) (*domain.User, error)
	UpdateStudent(req UpdateUserRequest) (*domain.User, error)
	UpdateTeacher(req UpdateUserRequest) (*domain.User, error)
	DeleteStudent(id string) error
	DeleteTeacher(id string) error

	// CreateCourse creates a course and assigns its teacher, if one is given.
	CreateCourse(req CreateCourseRequest) (*domain.Course, error)
	DeleteCourse(id string) error
	AssignTeacher(courseID, teacherID string) error
	EnrollStudent(courseID, studentID string) error

	ListStudents() []*domain.User
	ListTeachers() []*domain.User
	ListCourses() []*domain.Course
}

// AdminServiceImpl implements the AdminService interface
type AdminServiceImpl struct {
	userStore   store.UserStore
	courseStore store.CourseStore
	logger      *slog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(userStore store.UserStore, courseStore store.CourseStore, logger *slog.Logger) AdminService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AdminServiceImpl{
		userStore:   userStore,
		courseStore: courseStore,
		logger:      logger.With("component", "admin_service"),
	}
}

// findUserWithRole resolves id and checks that the user has role.
func findUserWithRole(users store.UserStore, id string, role domain.Role) (*domain.User, error) {
	user, err := users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, fmt.Errorf("%w: %s is %s, not %s", ErrWrongRole, id, user.Role, role)
	}
	return user, nil
}

// NextStudentID implements AdminService.NextStudentID
// The number is one past the larger of the student count and the highest
// numbered STUDENTnnn id, so deleting students never causes a reuse.
func (s *AdminServiceImpl) NextStudentID() string {
	students := s.userStore.ListByRole(domain.RoleStudent)

	highest := 0
	for _, student := range students {
		suffix, ok := strings.CutPrefix(student.ID, studentIDPrefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}

	return fmt.Sprintf("%s%03d", studentIDPrefix, max(len(students), highest)+1)
}

// CreateStudent implements AdminService.CreateStudent
func (s *AdminServiceImpl) CreateStudent(req CreateStudentRequest) (*domain.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = s.NextStudentID()
	}

	student, err := domain.NewStudent(id, req.Password, req.Name, req.Major)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	if err := s.userStore.Create(student); err != nil {
		s.logCreateFailure("student", id, err)
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info("student created", "user_id", student.ID)
	return student, nil
}

// CreateTeacher implements AdminService.CreateTeacher
func (s *AdminServiceImpl) CreateTeacher(req CreateTeacherRequest) (*domain.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	teacher, err := domain.NewTeacher(strings.TrimSpace(req.ID), req.Password, req.Name, req.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}

	if err := s.userStore.Create(teacher); err != nil {
		s.logCreateFailure("teacher", teacher.ID, err)
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}

	s.logger.Info("teacher created", "user_id", teacher.ID)
	return teacher, nil
}

func (s *AdminServiceImpl) logCreateFailure(kind, id string, err error) {
	if errors.Is(err, store.ErrUserExists) {
		s.logger.Debug("attempted to create user with existing id", "kind", kind, "user_id", id)
		return
	}
	s.logger.Error("failed to create user", "kind", kind, "user_id", id, "error", err)
}

// UpdateStudent implements AdminService.UpdateStudent
func (s *AdminServiceImpl) UpdateStudent(req UpdateUserRequest) (*domain.User, error) {
	return s.updateUser(req, domain.RoleStudent)
}

// UpdateTeacher implements AdminService.UpdateTeacher
func (s *AdminServiceImpl) UpdateTeacher(req UpdateUserRequest) (*domain.User, error) {
	return s.updateUser(req, domain.RoleTeacher)
}

// updateUser follows the pattern of getting the full user first, then
// building the complete replacement record for the store.
func (s *AdminServiceImpl) updateUser(req UpdateUserRequest, role domain.Role) (*domain.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	existing, err := findUserWithRole(s.userStore, req.ID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", strings.ToLower(string(role)), err)
	}

	update := &domain.User{
		ID:       existing.ID,
		Name:     coalesce(req.Name, existing.Name),
		Password: strings.TrimSpace(req.Password),
		Role:     existing.Role,
	}
	detail := coalesce(req.Detail, existing.Detail())
	switch role {
	case domain.RoleStudent:
		update.Student = &domain.StudentProfile{Major: detail}
	case domain.RoleTeacher:
		update.Teacher = &domain.TeacherProfile{Department: detail}
	}

	if err := s.userStore.Update(update); err != nil {
		s.logger.Error("failed to update user", "user_id", existing.ID, "error", err)
		return nil, fmt.Errorf("failed to update %s: %w", strings.ToLower(string(role)), err)
	}

	s.logger.Info("user updated",
		"user_id", existing.ID,
		"password_changed", update.Password != "")

	return existing, nil
}

func coalesce(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

// DeleteStudent implements AdminService.DeleteStudent
func (s *AdminServiceImpl) DeleteStudent(id string) error {
	return s.deleteUser(id, domain.RoleStudent)
}

// DeleteTeacher implements AdminService.DeleteTeacher
// Courses taught by the teacher keep the teacher id.
func (s *AdminServiceImpl) DeleteTeacher(id string) error {
	return s.deleteUser(id, domain.RoleTeacher)
}

func (s *AdminServiceImpl) deleteUser(id string, role domain.Role) error {
	if _, err := findUserWithRole(s.userStore, id, role); err != nil {
		return fmt.Errorf("failed to delete %s: %w", strings.ToLower(string(role)), err)
	}

	if err := s.userStore.Delete(id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", strings.ToLower(string(role)), err)
	}

	s.logger.Info("user deleted", "user_id", id, "role", role)
	return nil
}

// CreateCourse implements AdminService.CreateCourse
func (s *AdminServiceImpl) CreateCourse(req CreateCourseRequest) (*domain.Course, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var teacher *domain.User
	if teacherID := strings.TrimSpace(req.TeacherID); teacherID != "" {
		t, err := findUserWithRole(s.userStore, teacherID, domain.RoleTeacher)
		if err != nil {
			return nil, fmt.Errorf("failed to create course: %w", err)
		}
		teacher = t
	}

	course, err := s.courseStore.Create(strings.TrimSpace(req.ID), req.Name, req.Description, "", req.Capacity)
	if err != nil {
		if errors.Is(err, store.ErrCourseExists) {
			s.logger.Debug("attempted to create course with existing id", "course_id", req.ID)
		}
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	if teacher != nil {
		if err := s.courseStore.AssignTeacher(course.ID, teacher); err != nil {
			return nil, fmt.Errorf("failed to assign teacher to new course: %w", err)
		}
	}

	s.logger.Info("course created",
		"course_id", course.ID,
		"teacher_id", course.TeacherID,
		"capacity", course.Capacity)

	return course, nil
}

// DeleteCourse implements AdminService.DeleteCourse
// Enrollments and assignments referring to the course are left in place.
func (s *AdminServiceImpl) DeleteCourse(id string) error {
	if err := s.courseStore.Delete(id); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}

	s.logger.Info("course deleted", "course_id", id)
	return nil
}

// AssignTeacher implements AdminService.AssignTeacher
func (s *AdminServiceImpl) AssignTeacher(courseID, teacherID string) error {
	if _, err := s.courseStore.FindByID(courseID); err != nil {
		return fmt.Errorf("failed to assign teacher: %w", err)
	}

	teacher, err := findUserWithRole(s.userStore, teacherID, domain.RoleTeacher)
	if err != nil {
		return fmt.Errorf("failed to assign teacher: %w", err)
	}

	if err := s.courseStore.AssignTeacher(courseID, teacher); err != nil {
		return fmt.Errorf("failed to assign teacher: %w", err)
	}

	s.logger.Info("teacher assigned", "course_id", courseID, "teacher_id", teacherID)
	return nil
}

// EnrollStudent implements AdminService.EnrollStudent
func (s *AdminServiceImpl) EnrollStudent(courseID, studentID string) error {
	if _, err := s.courseStore.FindByID(courseID); err != nil {
		return fmt.Errorf("failed to enroll student: %w", err)
	}

	student, err := findUserWithRole(s.userStore, studentID, domain.RoleStudent)
	if err != nil {
		return fmt.Errorf("failed to enroll student: %w", err)
	}

	students := s.userStore.ListByRole(domain.RoleStudent)
	if err := s.courseStore.Enroll(courseID, student, students); err != nil {
		if store.IsConflictError(err) {
			s.logger.Debug("enrollment rejected", "course_id", courseID, "student_id", studentID, "error", err)
		} else {
			s.logger.Error("failed to enroll student", "course_id", courseID, "student_id", studentID, "error", err)
		}
		return fmt.Errorf("failed to enroll student: %w", err)
	}

	s.logger.Info("student enrolled", "course_id", courseID, "student_id", studentID)
	return nil
}

// ListStudents implements AdminService.ListStudents
func (s *AdminServiceImpl) ListStudents() []*domain.User {
	return s.userStore.ListByRole(domain.RoleStudent)
}

// ListTeachers implements AdminService.ListTeachers
func (s *AdminServiceImpl) ListTeachers() []*domain.User {
	return s.userStore.ListByRole(domain.RoleTeacher)
}

// ListCourses implements AdminService.ListCourses
func (s *AdminServiceImpl) ListCourses() []*domain.Course {
	return s.courseStore.ListAll()
}
