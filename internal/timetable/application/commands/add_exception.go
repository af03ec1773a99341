package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/felixgeelhaar/dayplan/internal/timetable/engine"
	"github.com/google/uuid"
)

// AddExceptionCommand contains the data needed to skip one occurrence of a
// recurring unavailable block.
type AddExceptionCommand struct {
	BlockID uuid.UUID
	Day     domain.Day
}

// AddExceptionResult contains the result of adding an exception.
type AddExceptionResult struct {
	Timetable domain.Timetable
}

// AddExceptionHandler handles the AddExceptionCommand.
type AddExceptionHandler struct {
	taskRepo      domain.TaskRepository
	blockRepo     domain.BlockRepository
	timetableRepo domain.TimetableRepository
	engine        *engine.Engine
	now           func() time.Time
}

// NewAddExceptionHandler creates a new AddExceptionHandler.
func NewAddExceptionHandler(
	taskRepo domain.TaskRepository,
	blockRepo domain.BlockRepository,
	timetableRepo domain.TimetableRepository,
	eng *engine.Engine,
) *AddExceptionHandler {
	return &AddExceptionHandler{
		taskRepo:      taskRepo,
		blockRepo:     blockRepo,
		timetableRepo: timetableRepo,
		engine:        eng,
		now:           time.Now,
	}
}

// Handle executes the AddExceptionCommand: the occurrence date is recorded
// on the block and the affected day's timetable is regenerated, so the freed
// window becomes available to tasks. Adding an exception to a non-recurring
// block is a no-op.
func (h *AddExceptionHandler) Handle(ctx context.Context, cmd AddExceptionCommand) (*AddExceptionResult, error) {
	block, err := h.blockRepo.FindByID(ctx, cmd.BlockID)
	if err != nil {
		return nil, err
	}

	block = block.AddException(cmd.Day)
	if err := h.blockRepo.Save(ctx, block); err != nil {
		return nil, err
	}

	now := h.now()
	if cmd.Day.Before(domain.DayOf(now)) {
		// past occurrence, nothing to replan
		return &AddExceptionResult{}, nil
	}

	tasks, err := h.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	blocks, err := h.blockRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	tt := h.engine.GenerateTimetable(cmd.Day, tasks, blocks, now)

	if placed := placedTasks(tt); len(placed) > 0 {
		if err := h.taskRepo.SaveAll(ctx, placed); err != nil {
			return nil, err
		}
	}
	if err := h.timetableRepo.Save(ctx, cmd.Day, tt); err != nil {
		return nil, err
	}

	return &AddExceptionResult{Timetable: tt}, nil
}
