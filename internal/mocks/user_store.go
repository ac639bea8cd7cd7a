package mocks

import (
	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
	"github.com/stretchr/testify/mock"
)

// UserStore is a mock of store.UserStore interface for use with testify/mock
type UserStore struct {
	mock.Mock
}

var _ store.UserStore = (*UserStore)(nil)

// Login is a mock implementation of store.UserStore.Login
func (m *UserStore) Login(id, password string) (*domain.User, error) {
	args := m.Called(id, password)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// FindByID is a mock implementation of store.UserStore.FindByID
func (m *UserStore) FindByID(id string) (*domain.User, error) {
	args := m.Called(id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// Add is a mock implementation of store.UserStore.Add
func (m *UserStore) Add(user *domain.User) {
	m.Called(user)
}

// Create is a mock implementation of store.UserStore.Create
func (m *UserStore) Create(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// Update is a mock implementation of store.UserStore.Update
func (m *UserStore) Update(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// Delete is a mock implementation of store.UserStore.Delete
func (m *UserStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// ListAll is a mock implementation of store.UserStore.ListAll
func (m *UserStore) ListAll() []*domain.User {
	args := m.Called()
	if users, ok := args.Get(0).([]*domain.User); ok {
		return users
	}
	return nil
}

// ListByRole is a mock implementation of store.UserStore.ListByRole
func (m *UserStore) ListByRole(role domain.Role) []*domain.User {
	args := m.Called(role)
	if users, ok := args.Get(0).([]*domain.User); ok {
		return users
	}
	return nil
}
