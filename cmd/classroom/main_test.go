package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/classroom/internal/cli"
	"github.com/phrazzld/classroom/internal/config"
	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/platform/flatfile"
	"github.com/phrazzld/classroom/internal/platform/logger"
	"github.com/phrazzld/classroom/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSession runs the command against dir with the given input lines.
func runSession(t *testing.T, dir string, lines ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, logs bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	args := []string{"--data-dir", dir, "--log-level", "info"}

	err = run(context.Background(), args, in, &out, &logs)
	return out.String(), logs.String(), err
}

func TestRun_FirstStartCreatesAdmin(t *testing.T) {
	t.Setenv("CLASSROOM_AUTH_BCRYPT_COST", "4")
	dir := t.TempDir()

	out, logs, err := runSession(t, dir,
		"1", "ADMIN001", "admin123", "14", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Default admin created: ID=ADMIN001, Password=admin123")
	assert.Contains(t, out, "Login successful! Welcome, System Administrator!")
	assert.Contains(t, out, "Data saved. Goodbye!")
	assert.Equal(t, 1, strings.Count(logs, `"msg":"data loaded"`), "startup logs the load once")

	data, err := os.ReadFile(filepath.Join(dir, flatfile.UsersFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ADMIN001")
	assert.NotContains(t, string(data), "admin123", "passwords are stored hashed")
}

func TestRun_DataSurvivesRestart(t *testing.T) {
	t.Setenv("CLASSROOM_AUTH_BCRYPT_COST", "4")
	dir := t.TempDir()

	_, _, err := runSession(t, dir,
		"1", "ADMIN001", "admin123",
		"4", "T1", "tpass", "Grace Hopper", "Computing",
		"1", "spass", "Ada Lovelace", "Mathematics",
		"7", "CS101", "Intro", "Basics", "T1", "10",
		"10", "CS101", "STUDENT001",
		"14", "2")
	require.NoError(t, err)

	out, _, err := runSession(t, dir,
		"1", "T1", "tpass",
		"3", "CS101", "A1", "Essay", "", "2024-12-15", "50",
		"4", "A1", "STUDENT001", "25",
		"6", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "Default admin created")
	assert.Contains(t, out, "Grade entered successfully!")

	out, _, err = runSession(t, dir,
		"1", "STUDENT001", "spass",
		"4", "CS101",
		"5", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Final Grade for Intro: 50.00%")
}

func TestServe_CancelledContextSaves(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Storage: config.StorageConfig{DataDir: dir},
		Log:     config.LogConfig{Level: "info"},
		Auth:    config.AuthConfig{BcryptCost: 4},
	}

	var logs bytes.Buffer
	app, err := newApplication(context.Background(), cfg, logger.New(cfg.Log, &logs))
	require.NoError(t, err)

	student, err := domain.NewStudent("S1", "secret", "Student", "Math")
	require.NoError(t, err)
	require.NoError(t, app.users.Create(student))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	require.NoError(t, app.serve(ctx, cli.NewConsole(strings.NewReader(""), &out)))

	assert.Contains(t, logs.String(), "shutdown signal received")
	data, err := os.ReadFile(filepath.Join(dir, flatfile.UsersFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "S1")
}

func TestServe_ShutdownDuringAdminSession(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Storage: config.StorageConfig{DataDir: dir},
		Log:     config.LogConfig{Level: "error"},
		Auth: config.AuthConfig{
			BcryptCost:           4,
			DefaultAdminID:       "ADMIN001",
			DefaultAdminPassword: "admin123",
			DefaultAdminName:     "Admin",
		},
	}

	app, err := newApplication(context.Background(), cfg, logger.New(cfg.Log, io.Discard))
	require.NoError(t, err)
	require.NoError(t, app.ensureAdmin(context.Background(), io.Discard))

	// The admin keeps creating students until the pipe is closed.
	pr, pw := io.Pipe()
	defer pr.Close()
	go func() {
		if _, err := io.WriteString(pw, "1\nADMIN001\nadmin123\n"); err != nil {
			return
		}
		for i := 0; ; i++ {
			if _, err := fmt.Fprintf(pw, "1\npw-%d\nStudent %d\nMath\n", i, i); err != nil {
				return
			}
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(100*time.Millisecond, cancel)

	require.NoError(t, app.serve(ctx, cli.NewConsole(pr, io.Discard)))

	// The menus are stopped for good, so the stores match what was saved.
	reloaded := testutils.NewMemoryStores()
	gateway := flatfile.NewGateway(dir, reloaded.Users, reloaded.Courses, reloaded.Assignments, reloaded.Grades,
		logger.New(cfg.Log, io.Discard))
	require.NoError(t, gateway.Load(context.Background()))

	assert.Len(t, reloaded.Users.ListAll(), len(app.users.ListAll()))
	_, err = reloaded.Users.Login("ADMIN001", "admin123")
	assert.NoError(t, err)
}

func TestRun_InvalidFlag(t *testing.T) {
	var out, logs bytes.Buffer
	err := run(context.Background(), []string{"--no-such-flag"}, strings.NewReader(""), &out, &logs)
	assert.Error(t, err)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("CLASSROOM_AUTH_BCRYPT_COST", "99")

	_, _, err := runSession(t, t.TempDir(), "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
