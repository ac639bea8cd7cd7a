package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/phrazzld/classroom/internal/cli"
	"github.com/phrazzld/classroom/internal/config"
	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/platform/flatfile"
	"github.com/phrazzld/classroom/internal/platform/memory"
)

// application holds the stores and the gateway that persists them.
type application struct {
	config *config.Config
	logger *slog.Logger

	users       *memory.UserDirectory
	courses     *memory.CourseCatalog
	assignments *memory.AssignmentBoard
	grades      *memory.GradeBook

	gateway *flatfile.Gateway

	// mu is held by the menus except while they wait for input.
	mu sync.Mutex
}

// newApplication creates the stores and fills them from the data directory.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:      cfg,
		logger:      logger,
		users:       memory.NewUserDirectory(cfg.Auth.BcryptCost, logger),
		courses:     memory.NewCourseCatalog(logger),
		assignments: memory.NewAssignmentBoard(logger),
		grades:      memory.NewGradeBook(logger),
	}
	app.gateway = flatfile.NewGateway(cfg.Storage.DataDir,
		app.users, app.courses, app.assignments, app.grades, logger)

	if err := app.gateway.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return app, nil
}

// ensureAdmin creates the configured administrator when no user exists yet
// and saves it right away.
func (app *application) ensureAdmin(ctx context.Context, out io.Writer) error {
	if app.users.Len() > 0 {
		return nil
	}

	auth := app.config.Auth
	admin, err := domain.NewAdmin(auth.DefaultAdminID, auth.DefaultAdminPassword, auth.DefaultAdminName)
	if err != nil {
		return fmt.Errorf("invalid default admin: %w", err)
	}
	if err := app.users.Create(admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	if err := app.gateway.Save(ctx); err != nil {
		return fmt.Errorf("failed to save default admin: %w", err)
	}

	app.logger.Info("default admin created", "user_id", admin.ID)
	fmt.Fprintf(out, "Default admin created: ID=%s, Password=%s\n", auth.DefaultAdminID, auth.DefaultAdminPassword)
	return nil
}

// serve runs the menus until they finish. When ctx is cancelled first, the
// data is saved once the current menu action is complete, and serve returns
// without waiting for the blocked read.
func (app *application) serve(ctx context.Context, console *cli.Console) error {
	menus := cli.NewApp(console, cli.Deps{
		Users:       app.users,
		Courses:     app.courses,
		Assignments: app.assignments,
		Grades:      app.grades,
		Saver:       app.gateway,
		Logger:      app.logger,
		Lock:        &app.mu,
	})

	done := make(chan error, 1)
	go func() {
		done <- menus.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil && ctx.Err() != nil {
			return app.shutdown()
		}
		return err
	case <-ctx.Done():
		return app.shutdown()
	}
}

// shutdown saves with a fresh context since the caller's is already done.
// The lock is never released, so the menus cannot change the stores after
// the final save.
func (app *application) shutdown() error {
	app.mu.Lock()

	app.logger.Info("shutdown signal received, saving data")
	if err := app.gateway.Save(context.Background()); err != nil {
		return fmt.Errorf("failed to save data on shutdown: %w", err)
	}
	return nil
}
