package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/igorvolkov/taskmaster/internal/cli"
	"github.com/igorvolkov/taskmaster/internal/db"
	"github.com/igorvolkov/taskmaster/internal/notify"
	"github.com/igorvolkov/taskmaster/internal/repository"
	"github.com/igorvolkov/taskmaster/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.taskmaster/taskmaster.db
	dbPath := os.Getenv("TASKMASTER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".taskmaster", "taskmaster.db")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and the unit of work.
	taskRepo := repository.NewSQLiteTaskRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	reminderRepo := repository.NewSQLiteReminderRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Seed sample data on first run so the dashboard is not empty.
	if err := repository.SeedSampleData(context.Background(), uow, time.Now().UTC()); err != nil {
		return fmt.Errorf("seeding sample data: %w", err)
	}

	// Optional operation log, enabled by pointing TASKMASTER_LOG at a file.
	var observer service.OperationObserver = service.NoopObserver{}
	if logPath := os.Getenv("TASKMASTER_LOG"); logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		observer = service.NewLogObserver(f)
	}

	scheduler := notify.NewStoreScheduler(reminderRepo)

	app := &cli.App{
		Tasks:     service.NewTaskService(taskRepo, scheduler, nil),
		Projects:  service.NewProjectService(projectRepo, uow, scheduler, nil),
		Users:     service.NewUserService(userRepo, nil),
		Insights:  service.NewInsightService(taskRepo, projectRepo, nil, observer),
		Reminders: scheduler,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
