// Package mocks provides testify mock implementations of the store
// interfaces, for service tests that need to force store failures or
// assert on the calls a service makes.
//
// Usage:
//
//	users := new(mocks.UserStore)
//	users.On("FindByID", "S1").Return(student, nil)
//	...
//	users.AssertExpectations(t)
package mocks
