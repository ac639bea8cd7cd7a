package mocks

import (
	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
	"github.com/stretchr/testify/mock"
)

// CourseStore is a mock of store.CourseStore interface for use with testify/mock
type CourseStore struct {
	mock.Mock
}

var _ store.CourseStore = (*CourseStore)(nil)

func courses(v interface{}) []*domain.Course {
	if c, ok := v.([]*domain.Course); ok {
		return c
	}
	return nil
}

// Create is a mock implementation of store.CourseStore.Create
func (m *CourseStore) Create(id, name, description, teacherID string, capacity int) (*domain.Course, error) {
	args := m.Called(id, name, description, teacherID, capacity)
	if course, ok := args.Get(0).(*domain.Course); ok {
		return course, args.Error(1)
	}
	return nil, args.Error(1)
}

// Add is a mock implementation of store.CourseStore.Add
func (m *CourseStore) Add(course *domain.Course) {
	m.Called(course)
}

// FindByID is a mock implementation of store.CourseStore.FindByID
func (m *CourseStore) FindByID(id string) (*domain.Course, error) {
	args := m.Called(id)
	if course, ok := args.Get(0).(*domain.Course); ok {
		return course, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.CourseStore.Update
func (m *CourseStore) Update(course *domain.Course) error {
	args := m.Called(course)
	return args.Error(0)
}

// Delete is a mock implementation of store.CourseStore.Delete
func (m *CourseStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// ListAll is a mock implementation of store.CourseStore.ListAll
func (m *CourseStore) ListAll() []*domain.Course {
	return courses(m.Called().Get(0))
}

// AssignTeacher is a mock implementation of store.CourseStore.AssignTeacher
func (m *CourseStore) AssignTeacher(courseID string, teacher *domain.User) error {
	args := m.Called(courseID, teacher)
	return args.Error(0)
}

// Enroll is a mock implementation of store.CourseStore.Enroll
func (m *CourseStore) Enroll(courseID string, student *domain.User, students []*domain.User) error {
	args := m.Called(courseID, student, students)
	return args.Error(0)
}

// EnrolledCount is a mock implementation of store.CourseStore.EnrolledCount
func (m *CourseStore) EnrolledCount(courseID string, students []*domain.User) int {
	args := m.Called(courseID, students)
	return args.Int(0)
}

// StudentsInCourse is a mock implementation of store.CourseStore.StudentsInCourse
func (m *CourseStore) StudentsInCourse(courseID string, students []*domain.User) []*domain.User {
	args := m.Called(courseID, students)
	if users, ok := args.Get(0).([]*domain.User); ok {
		return users
	}
	return nil
}

// CoursesForTeacher is a mock implementation of store.CourseStore.CoursesForTeacher
func (m *CourseStore) CoursesForTeacher(teacherID string) []*domain.Course {
	return courses(m.Called(teacherID).Get(0))
}

// CoursesForStudent is a mock implementation of store.CourseStore.CoursesForStudent
func (m *CourseStore) CoursesForStudent(student *domain.User) []*domain.Course {
	return courses(m.Called(student).Get(0))
}
