package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
)

// AuthService signs users in.
type AuthService interface {
	// Login returns the user whose id and password match.
	// Returns store.ErrInvalidCredentials for an unknown id or a wrong password.
	Login(id, password string) (*domain.User, error)
}

// AuthServiceImpl implements the AuthService interface
type AuthServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore store.UserStore, logger *slog.Logger) AuthService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthServiceImpl{
		userStore: userStore,
		logger:    logger.With("component", "auth_service"),
	}
}

// Login implements AuthService.Login
func (s *AuthServiceImpl) Login(id, password string) (*domain.User, error) {
	user, err := s.userStore.Login(id, password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			s.logger.Warn("login failed", "user_id", id)
		} else {
			s.logger.Error("login error", "error", err, "user_id", id)
		}
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.Info("user logged in",
		"user_id", user.ID,
		"role", user.Role)

	return user, nil
}
