package store

import "github.com/phrazzld/classroom/internal/domain"

// UserStore defines the interface for the user directory. It is the only
// place credentials are checked.
type UserStore interface {
	// Login returns the user whose id and password both match.
	// Returns ErrInvalidCredentials otherwise.
	Login(id, password string) (*domain.User, error)

	// FindByID retrieves a user by id.
	// Returns ErrUserNotFound if the user does not exist.
	FindByID(id string) (*domain.User, error)

	// Add inserts a user unless one with the same id exists, in which case
	// it does nothing. Used by bulk loading; callers that need to know about
	// duplicates use Create.
	Add(user *domain.User)

	// Create inserts a new user.
	// Returns ErrUserExists if the id is taken and ErrInvalidEntity if the
	// record fails validation.
	Create(user *domain.User) error

	// Update overwrites the password, name and role-specific field of the
	// user with the same id. The role itself never changes.
	// Returns ErrUserNotFound if the user does not exist.
	Update(user *domain.User) error

	// Delete removes a user. Courses and enrollments that reference the user
	// are left as they are.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(id string) error

	// ListAll returns every user in insertion order.
	ListAll() []*domain.User

	// ListByRole returns the users with the given role in insertion order.
	ListByRole(role domain.Role) []*domain.User
}
