package mocks

import (
	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
	"github.com/stretchr/testify/mock"
)

// AssignmentStore is a mock of store.AssignmentStore interface for use with testify/mock
type AssignmentStore struct {
	mock.Mock
}

var _ store.AssignmentStore = (*AssignmentStore)(nil)

func assignments(v interface{}) []*domain.Assignment {
	if a, ok := v.([]*domain.Assignment); ok {
		return a
	}
	return nil
}

// Create is a mock implementation of store.AssignmentStore.Create
func (m *AssignmentStore) Create(
	id, courseID, title, description, dueDate string,
	maxPoints float64,
) (*domain.Assignment, error) {
	args := m.Called(id, courseID, title, description, dueDate, maxPoints)
	if a, ok := args.Get(0).(*domain.Assignment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

// Add is a mock implementation of store.AssignmentStore.Add
func (m *AssignmentStore) Add(assignment *domain.Assignment) {
	m.Called(assignment)
}

// FindByID is a mock implementation of store.AssignmentStore.FindByID
func (m *AssignmentStore) FindByID(id string) (*domain.Assignment, error) {
	args := m.Called(id)
	if a, ok := args.Get(0).(*domain.Assignment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.AssignmentStore.Update
func (m *AssignmentStore) Update(assignment *domain.Assignment) error {
	return m.Called(assignment).Error(0)
}

// Delete is a mock implementation of store.AssignmentStore.Delete
func (m *AssignmentStore) Delete(id string) error {
	return m.Called(id).Error(0)
}

// ListAll is a mock implementation of store.AssignmentStore.ListAll
func (m *AssignmentStore) ListAll() []*domain.Assignment {
	return assignments(m.Called().Get(0))
}

// ForCourse is a mock implementation of store.AssignmentStore.ForCourse
func (m *AssignmentStore) ForCourse(courseID string) []*domain.Assignment {
	return assignments(m.Called(courseID).Get(0))
}

// ForStudent is a mock implementation of store.AssignmentStore.ForStudent
func (m *AssignmentStore) ForStudent(student *domain.User) []*domain.Assignment {
	return assignments(m.Called(student).Get(0))
}
