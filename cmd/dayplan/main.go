package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/dayplan/adapter/cli"
	"github.com/felixgeelhaar/dayplan/adapter/cli/block"
	"github.com/felixgeelhaar/dayplan/adapter/cli/task"
	"github.com/felixgeelhaar/dayplan/internal/app"
	"github.com/felixgeelhaar/dayplan/pkg/config"
)

func main() {
	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Update logger level based on config
	if cfg.LogLevel == "debug" || cfg.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(&cli.App{
		CreateTaskHandler:   container.CreateTaskHandler,
		CompleteTaskHandler: container.CompleteTaskHandler,
		DeleteTaskHandler:   container.DeleteTaskHandler,
		PlanDayHandler:      container.PlanDayHandler,
		MoveBlockHandler:    container.MoveBlockHandler,
		AddBlockHandler:     container.AddBlockHandler,
		RemoveBlockHandler:  container.RemoveBlockHandler,
		AddExceptionHandler: container.AddExceptionHandler,
		ListTasksHandler:    container.ListTasksHandler,
		GetTimetableHandler: container.GetTimetableHandler,
		FreeSlotsHandler:    container.FreeSlotsHandler,
	})

	// Register commands
	cli.AddCommand(task.Cmd)
	cli.AddCommand(block.Cmd)

	// Execute CLI
	cli.Execute()
}
