package service_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/phrazzld/classroom/internal/mocks"
	"github.com/phrazzld/classroom/internal/service"
	"github.com/phrazzld/classroom/internal/store"
	"github.com/phrazzld/classroom/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	stores := testutils.NewMemoryStores()
	stores.MustAddUsers(t, testutils.MustCreateStudentForTest(t, "S1"))

	auth := service.NewAuthService(stores.Users, quietLogger())

	t.Run("valid credentials", func(t *testing.T) {
		user, err := auth.Login("S1", testutils.DefaultPassword)
		require.NoError(t, err)
		assert.Equal(t, "S1", user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		user, err := auth.Login("S1", "nope")
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := auth.Login("S9", testutils.DefaultPassword)
		assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	})
}

func TestAuthService_LoginLogsFailures(t *testing.T) {
	t.Parallel()
	handler := testutils.NewTestSlogHandler()
	users := new(mocks.UserStore)
	users.On("Login", "S1", "pw").Return(nil, store.ErrInvalidCredentials).Once()
	users.On("Login", "S2", "pw").Return(nil, errors.New("disk on fire")).Once()

	auth := service.NewAuthService(users, slog.New(handler))

	_, err := auth.Login("S1", "pw")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
	_, err = auth.Login("S2", "pw")
	assert.EqualError(t, err, "failed to log in: disk on fire")

	assert.Equal(t, []string{"login failed"}, handler.Messages(slog.LevelWarn))
	assert.Equal(t, []string{"login error"}, handler.Messages(slog.LevelError))
	for _, e := range handler.Entries() {
		assert.Equal(t, "auth_service", e["component"])
		assert.NotContains(t, e, "password")
	}
	users.AssertExpectations(t)
}
