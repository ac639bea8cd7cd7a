package testutils

import (
	"testing"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/platform/memory"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the password given to users built by the helpers below.
const DefaultPassword = "secret"

// MustCreateStudentForTest creates a valid student majoring in "Undeclared".
func MustCreateStudentForTest(t *testing.T, id string) *domain.User {
	t.Helper()

	student, err := domain.NewStudent(id, DefaultPassword, "Student "+id, "Undeclared")
	require.NoError(t, err, "Failed to create test student")
	return student
}

// MustCreateTeacherForTest creates a valid teacher in the "General" department.
func MustCreateTeacherForTest(t *testing.T, id string) *domain.User {
	t.Helper()

	teacher, err := domain.NewTeacher(id, DefaultPassword, "Teacher "+id, "General")
	require.NoError(t, err, "Failed to create test teacher")
	return teacher
}

// MustCreateAdminForTest creates a valid admin.
func MustCreateAdminForTest(t *testing.T, id string) *domain.User {
	t.Helper()

	admin, err := domain.NewAdmin(id, DefaultPassword, "Admin "+id)
	require.NoError(t, err, "Failed to create test admin")
	return admin
}

// CourseOption customizes a course built by MustCreateCourseForTest.
type CourseOption func(*domain.Course)

// WithCapacity sets the course capacity.
func WithCapacity(capacity int) CourseOption {
	return func(c *domain.Course) { c.Capacity = capacity }
}

// WithTeacherID sets the course teacher id.
func WithTeacherID(teacherID string) CourseOption {
	return func(c *domain.Course) { c.TeacherID = teacherID }
}

// MustCreateCourseForTest creates a valid course with room for 30 students.
func MustCreateCourseForTest(t *testing.T, id string, opts ...CourseOption) *domain.Course {
	t.Helper()

	course, err := domain.NewCourse(id, "Course "+id, "Test course "+id, "", 30)
	require.NoError(t, err, "Failed to create test course")

	for _, opt := range opts {
		opt(course)
	}
	require.NoError(t, course.Validate(), "Course options produced an invalid course")

	return course
}

// MemoryStores bundles one of each in-memory store.
type MemoryStores struct {
	Users       *memory.UserDirectory
	Courses     *memory.CourseCatalog
	Assignments *memory.AssignmentBoard
	Grades      *memory.GradeBook
}

// NewMemoryStores creates empty stores. Passwords are hashed at the lowest
// bcrypt cost to keep tests fast.
func NewMemoryStores() *MemoryStores {
	return &MemoryStores{
		Users:       memory.NewUserDirectory(bcrypt.MinCost, nil),
		Courses:     memory.NewCourseCatalog(nil),
		Assignments: memory.NewAssignmentBoard(nil),
		Grades:      memory.NewGradeBook(nil),
	}
}

// MustAddUsers creates each user in s.Users.
func (s *MemoryStores) MustAddUsers(t *testing.T, users ...*domain.User) {
	t.Helper()
	for _, u := range users {
		require.NoError(t, s.Users.Create(u), "Failed to add user %s", u.ID)
	}
}
