// Package main implements the classroom command, an interactive console
// for managing students, teachers, courses, assignments and grades.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/phrazzld/classroom/internal/cli"
	"github.com/phrazzld/classroom/internal/config"
	"github.com/phrazzld/classroom/internal/platform/logger"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "classroom: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration and data, then hands the console to the menus.
// Logs go to stderr. Data is saved when the menus finish or ctx is
// cancelled.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("classroom", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	config.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Variables already set in the environment win over the .env file.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.Log, stderr)
	slog.SetDefault(log)

	log.Info("configuration loaded",
		"data_dir", cfg.Storage.DataDir,
		"log_level", cfg.Log.Level)

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.ensureAdmin(ctx, stdout); err != nil {
		return err
	}

	return app.serve(ctx, cli.NewConsole(stdin, stdout))
}
