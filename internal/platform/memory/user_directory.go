package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// UserDirectory implements store.UserStore over an in-memory collection.
// Plaintext passwords handed to it are replaced by bcrypt hashes before the
// record is stored.
type UserDirectory struct {
	users      *collection[*domain.User]
	bcryptCost int
	logger     *slog.Logger
}

// Ensure UserDirectory implements store.UserStore interface
var _ store.UserStore = (*UserDirectory)(nil)

// NewUserDirectory creates an empty user directory.
// A bcryptCost outside bcrypt's accepted range falls back to bcrypt.DefaultCost.
// If logger is nil, a default logger will be used.
func NewUserDirectory(bcryptCost int, logger *slog.Logger) *UserDirectory {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &UserDirectory{
		users:      newCollection[*domain.User](),
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "user_directory")),
	}
}

// Login implements store.UserStore.Login
func (d *UserDirectory) Login(id, password string) (*domain.User, error) {
	user, ok := d.users.get(id)
	if !ok {
		d.logger.Debug("login for unknown user", slog.String("user_id", id))
		return nil, store.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		d.logger.Debug("login password mismatch", slog.String("user_id", id))
		return nil, store.ErrInvalidCredentials
	}

	return user, nil
}

// FindByID implements store.UserStore.FindByID
func (d *UserDirectory) FindByID(id string) (*domain.User, error) {
	user, ok := d.users.get(id)
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// Add implements store.UserStore.Add
func (d *UserDirectory) Add(user *domain.User) {
	if user == nil {
		return
	}

	if err := d.Create(user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			d.logger.Debug("skipping duplicate user", slog.String("user_id", user.ID))
			return
		}
		d.logger.Warn("skipping invalid user",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()))
	}
}

// Create implements store.UserStore.Create
func (d *UserDirectory) Create(user *domain.User) error {
	if user == nil {
		return fmt.Errorf("%w: nil user", store.ErrInvalidEntity)
	}

	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if d.users.has(user.ID) {
		return store.ErrUserExists
	}

	if user.Password != "" {
		hash, err := d.hash(user.Password)
		if err != nil {
			return store.NewStoreError("user", "create", "failed to hash password", err)
		}
		user.HashedPassword = hash
		user.Password = ""
	}

	d.users.insert(user.ID, user)
	d.logger.Debug("user added",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)))

	return nil
}

// Update implements store.UserStore.Update
// The password is replaced when the supplied record carries a new plaintext
// password (hashed here) or a different non-empty hash.
func (d *UserDirectory) Update(user *domain.User) error {
	if user == nil {
		return fmt.Errorf("%w: nil user", store.ErrInvalidEntity)
	}

	existing, ok := d.users.get(user.ID)
	if !ok {
		return store.ErrUserNotFound
	}

	if strings.TrimSpace(user.Name) == "" {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrEmptyUserName)
	}

	// Everything that can fail happens before the first write.
	hashed := existing.HashedPassword
	switch {
	case user.Password != "":
		h, err := d.hash(user.Password)
		if err != nil {
			return store.NewStoreError("user", "update", "failed to hash password", err)
		}
		hashed = h
	case user.HashedPassword != "":
		hashed = user.HashedPassword
	}

	existing.HashedPassword = hashed
	existing.Password = ""
	existing.Name = user.Name

	switch existing.Role {
	case domain.RoleStudent:
		if user.IsStudent() {
			existing.Student.Major = user.Student.Major
		}
	case domain.RoleTeacher:
		if user.IsTeacher() {
			existing.Teacher.Department = user.Teacher.Department
		}
	}

	d.logger.Debug("user updated", slog.String("user_id", existing.ID))
	return nil
}

// Delete implements store.UserStore.Delete
func (d *UserDirectory) Delete(id string) error {
	if !d.users.remove(id) {
		return store.ErrUserNotFound
	}
	d.logger.Debug("user deleted", slog.String("user_id", id))
	return nil
}

// ListAll implements store.UserStore.ListAll
func (d *UserDirectory) ListAll() []*domain.User {
	return d.users.values()
}

// ListByRole implements store.UserStore.ListByRole
func (d *UserDirectory) ListByRole(role domain.Role) []*domain.User {
	return d.users.filter(func(u *domain.User) bool { return u.Role == role })
}

// Len returns the number of users held.
func (d *UserDirectory) Len() int {
	return d.users.len()
}

func (d *UserDirectory) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), d.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IsPasswordHash reports whether s is a bcrypt hash rather than a plaintext
// password. Used when loading records written before passwords were hashed.
func IsPasswordHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
