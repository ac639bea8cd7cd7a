package mocks

import (
	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
	"github.com/stretchr/testify/mock"
)

// GradeStore is a mock of store.GradeStore interface for use with testify/mock
type GradeStore struct {
	mock.Mock
}

var _ store.GradeStore = (*GradeStore)(nil)

func grades(v interface{}) []*domain.Grade {
	if g, ok := v.([]*domain.Grade); ok {
		return g
	}
	return nil
}

// Create is a mock implementation of store.GradeStore.Create
func (m *GradeStore) Create(id, studentID, assignmentID string, points float64) (*domain.Grade, error) {
	args := m.Called(id, studentID, assignmentID, points)
	if g, ok := args.Get(0).(*domain.Grade); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

// Add is a mock implementation of store.GradeStore.Add
func (m *GradeStore) Add(grade *domain.Grade) {
	m.Called(grade)
}

// FindByID is a mock implementation of store.GradeStore.FindByID
func (m *GradeStore) FindByID(id string) (*domain.Grade, error) {
	args := m.Called(id)
	if g, ok := args.Get(0).(*domain.Grade); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.GradeStore.Update
func (m *GradeStore) Update(grade *domain.Grade) error {
	return m.Called(grade).Error(0)
}

// Delete is a mock implementation of store.GradeStore.Delete
func (m *GradeStore) Delete(id string) error {
	return m.Called(id).Error(0)
}

// ListAll is a mock implementation of store.GradeStore.ListAll
func (m *GradeStore) ListAll() []*domain.Grade {
	return grades(m.Called().Get(0))
}

// ForStudent is a mock implementation of store.GradeStore.ForStudent
func (m *GradeStore) ForStudent(studentID string) []*domain.Grade {
	return grades(m.Called(studentID).Get(0))
}

// ForAssignment is a mock implementation of store.GradeStore.ForAssignment
func (m *GradeStore) ForAssignment(assignmentID string) []*domain.Grade {
	return grades(m.Called(assignmentID).Get(0))
}

// GradeFor is a mock implementation of store.GradeStore.GradeFor
func (m *GradeStore) GradeFor(studentID, assignmentID string) (*domain.Grade, error) {
	args := m.Called(studentID, assignmentID)
	if g, ok := args.Get(0).(*domain.Grade); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

// FinalGradeForCourse is a mock implementation of store.GradeStore.FinalGradeForCourse
func (m *GradeStore) FinalGradeForCourse(studentID, courseID string, assignments []*domain.Assignment) float64 {
	args := m.Called(studentID, courseID, assignments)
	return args.Get(0).(float64)
}
