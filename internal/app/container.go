package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/dayplan/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/dayplan/internal/timetable/application/commands"
	"github.com/felixgeelhaar/dayplan/internal/timetable/application/queries"
	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/felixgeelhaar/dayplan/internal/timetable/engine"
	"github.com/felixgeelhaar/dayplan/internal/timetable/infrastructure/persistence"
	"github.com/felixgeelhaar/dayplan/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database
	Conn   *database.Connection
	Driver database.Driver

	// Repositories
	TaskRepo      domain.TaskRepository
	BlockRepo     domain.BlockRepository
	TimetableRepo domain.TimetableRepository

	// Engine
	Engine *engine.Engine

	// Command handlers
	CreateTaskHandler   *commands.CreateTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler
	DeleteTaskHandler   *commands.DeleteTaskHandler
	PlanDayHandler      *commands.PlanDayHandler
	MoveBlockHandler    *commands.MoveBlockHandler
	AddBlockHandler     *commands.AddBlockHandler
	RemoveBlockHandler  *commands.RemoveBlockHandler
	AddExceptionHandler *commands.AddExceptionHandler

	// Query handlers
	ListTasksHandler    *queries.ListTasksHandler
	GetTimetableHandler *queries.GetTimetableHandler
	FreeSlotsHandler    *queries.FreeSlotsHandler
}

// NewContainer wires configuration, storage, the planning engine, and all
// handlers together.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	conn, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := ensureSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	factory := NewRepositoryFactory(conn)
	taskRepo, err := factory.TaskRepository()
	if err != nil {
		conn.Close()
		return nil, err
	}
	blockRepo, err := factory.BlockRepository()
	if err != nil {
		conn.Close()
		return nil, err
	}
	timetableRepo, err := factory.TimetableRepository()
	if err != nil {
		conn.Close()
		return nil, err
	}

	engineCfg := engine.DefaultConfig()
	engineCfg.DayStart = cfg.DayStart
	engineCfg.DayEnd = cfg.DayEnd
	engineCfg.Granule = cfg.SlotSize
	eng := engine.New(engineCfg, logger)

	c := &Container{
		Config: cfg,
		Logger: logger,
		Conn:   conn,
		Driver: conn.Driver(),

		TaskRepo:      taskRepo,
		BlockRepo:     blockRepo,
		TimetableRepo: timetableRepo,

		Engine: eng,

		CreateTaskHandler:   commands.NewCreateTaskHandler(taskRepo),
		CompleteTaskHandler: commands.NewCompleteTaskHandler(taskRepo),
		DeleteTaskHandler:   commands.NewDeleteTaskHandler(taskRepo),
		PlanDayHandler:      commands.NewPlanDayHandler(taskRepo, blockRepo, timetableRepo, eng),
		MoveBlockHandler:    commands.NewMoveBlockHandler(taskRepo, timetableRepo, eng),
		AddBlockHandler:     commands.NewAddBlockHandler(taskRepo, blockRepo, timetableRepo, eng),
		RemoveBlockHandler:  commands.NewRemoveBlockHandler(taskRepo, blockRepo, timetableRepo, eng),
		AddExceptionHandler: commands.NewAddExceptionHandler(taskRepo, blockRepo, timetableRepo, eng),

		ListTasksHandler:    queries.NewListTasksHandler(taskRepo),
		GetTimetableHandler: queries.NewGetTimetableHandler(timetableRepo, eng),
		FreeSlotsHandler:    queries.NewFreeSlotsHandler(timetableRepo, eng),
	}

	logger.Debug("container initialized", "driver", string(c.Driver))
	return c, nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	if c.Conn != nil {
		return c.Conn.Close()
	}
	return nil
}

func ensureSchema(ctx context.Context, conn *database.Connection) error {
	switch conn.Driver() {
	case database.DriverPostgres:
		return persistence.EnsurePostgresSchema(ctx, conn.Pool())
	case database.DriverSQLite:
		return persistence.EnsureSQLiteSchema(ctx, conn.SQLite())
	default:
		return fmt.Errorf("unsupported driver: %s", conn.Driver())
	}
}
