package cli

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/service"
	"github.com/phrazzld/classroom/internal/store"
)

// Saver persists the stores, e.g. a flatfile.Gateway.
type Saver interface {
	Save(ctx context.Context) error
}

// Deps holds what the menus need.
type Deps struct {
	Users       store.UserStore
	Courses     store.CourseStore
	Assignments store.AssignmentStore
	Grades      store.GradeStore
	Saver       Saver
	Logger      *slog.Logger

	// Lock guards the stores. Run holds it except while waiting for
	// input, so whoever else takes it sees the stores between actions.
	// A private mutex is used when nil.
	Lock sync.Locker
}

// App runs the main menu and dispatches signed-in users to their role menu.
type App struct {
	console *Console
	deps    Deps
	auth    service.AuthService
	admin   service.AdminService
	logger  *slog.Logger
}

// NewApp creates the application around console.
func NewApp(console *Console, deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	deps.Logger = logger

	if deps.Lock == nil {
		deps.Lock = &sync.Mutex{}
	}
	console.lock = deps.Lock

	return &App{
		console: console,
		deps:    deps,
		auth:    service.NewAuthService(deps.Users, logger),
		admin:   service.NewAdminService(deps.Users, deps.Courses, logger),
		logger:  logger.With("component", "cli"),
	}
}

// Run shows the main menu until the user exits, the input ends or ctx is
// cancelled. State is saved after every session and on exit.
func (a *App) Run(ctx context.Context) error {
	a.deps.Lock.Lock()
	defer a.deps.Lock.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.console.Println()
		a.console.Println("=== MINI BLACKBOARD SYSTEM ===")
		a.console.Println("1. Login")
		a.console.Println("2. Exit")
		choice, err := a.console.Prompt("Enter your choice: ")
		if err != nil {
			return a.quit(ctx, err)
		}

		switch choice {
		case "1":
			if err := a.login(ctx); err != nil {
				return a.quit(ctx, err)
			}
		case "2":
			a.console.Println("Saving data...")
			a.save(ctx)
			a.console.Println("Data saved. Goodbye!")
			return nil
		default:
			a.console.Println("Invalid choice. Please try again.")
		}
	}
}

// quit saves before leaving on closed input; other errors are returned as is.
func (a *App) quit(ctx context.Context, err error) error {
	if errors.Is(err, errQuit) {
		a.save(ctx)
		return nil
	}
	return err
}

func (a *App) save(ctx context.Context) {
	if a.deps.Saver == nil {
		return
	}
	if err := a.deps.Saver.Save(ctx); err != nil {
		a.logger.Error("failed to save data", "error", err)
		a.console.Println("Warning: data could not be saved.")
	}
}

func (a *App) login(ctx context.Context) error {
	a.console.Println()
	a.console.Println("=== LOGIN ===")
	id, err := a.console.Prompt("Enter User ID: ")
	if err != nil {
		return err
	}
	password, err := a.console.Password("Enter Password: ")
	if err != nil {
		return err
	}

	user, err := a.auth.Login(id, password)
	if err != nil {
		a.fail(err)
		return nil
	}

	a.console.Printf("\nLogin successful! Welcome, %s!\n", user.Name)

	switch user.Role {
	case domain.RoleAdmin:
		err = newAdminMenu(a.console, a.admin, a.logger).run()
	case domain.RoleTeacher:
		err = a.runTeacher(user)
	case domain.RoleStudent:
		err = a.runStudent(user)
	}

	a.save(ctx)
	return err
}

func (a *App) runTeacher(user *domain.User) error {
	svc, err := service.NewTeacherService(user, a.deps.Users, a.deps.Courses, a.deps.Assignments, a.deps.Grades, a.deps.Logger)
	if err != nil {
		a.fail(err)
		return nil
	}
	return newTeacherMenu(a.console, svc, a.logger).run()
}

func (a *App) runStudent(user *domain.User) error {
	svc, err := service.NewStudentService(user, a.deps.Courses, a.deps.Assignments, a.deps.Grades, a.deps.Logger)
	if err != nil {
		a.fail(err)
		return nil
	}
	return newStudentMenu(a.console, svc, a.logger).run()
}

// fail prints the message for err; unexpected errors are logged too.
func (a *App) fail(err error) {
	reportError(a.console, a.logger, err)
}

func reportError(console *Console, logger *slog.Logger, err error) {
	msg, expected := describe(err)
	if !expected {
		logger.Error("operation failed", "error", err)
	}
	console.Println("Error: " + msg)
}
