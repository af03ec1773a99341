package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/felixgeelhaar/dayplan/internal/timetable/engine"
	"github.com/google/uuid"
)

// RemoveBlockCommand contains the data needed to remove an unavailable block.
type RemoveBlockCommand struct {
	BlockID uuid.UUID
}

// RemoveBlockResult contains the result of removing a block.
type RemoveBlockResult struct {
	Timetable domain.Timetable
}

// RemoveBlockHandler handles the RemoveBlockCommand.
type RemoveBlockHandler struct {
	taskRepo      domain.TaskRepository
	blockRepo     domain.BlockRepository
	timetableRepo domain.TimetableRepository
	engine        *engine.Engine
	now           func() time.Time
}

// NewRemoveBlockHandler creates a new RemoveBlockHandler.
func NewRemoveBlockHandler(
	taskRepo domain.TaskRepository,
	blockRepo domain.BlockRepository,
	timetableRepo domain.TimetableRepository,
	eng *engine.Engine,
) *RemoveBlockHandler {
	return &RemoveBlockHandler{
		taskRepo:      taskRepo,
		blockRepo:     blockRepo,
		timetableRepo: timetableRepo,
		engine:        eng,
		now:           time.Now,
	}
}

// Handle executes the RemoveBlockCommand: the block is deleted and today's
// timetable is regenerated without it, which frees its time for tasks.
func (h *RemoveBlockHandler) Handle(ctx context.Context, cmd RemoveBlockCommand) (*RemoveBlockResult, error) {
	if _, err := h.blockRepo.FindByID(ctx, cmd.BlockID); err != nil {
		return nil, err
	}
	if err := h.blockRepo.Delete(ctx, cmd.BlockID); err != nil {
		return nil, err
	}

	tasks, err := h.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	blocks, err := h.blockRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := h.now()
	today := domain.DayOf(now)
	tt := h.engine.GenerateTimetable(today, tasks, blocks, now)

	if placed := placedTasks(tt); len(placed) > 0 {
		if err := h.taskRepo.SaveAll(ctx, placed); err != nil {
			return nil, err
		}
	}
	if err := h.timetableRepo.Save(ctx, today, tt); err != nil {
		return nil, err
	}

	return &RemoveBlockResult{Timetable: tt}, nil
}
