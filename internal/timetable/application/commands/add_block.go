package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/felixgeelhaar/dayplan/internal/timetable/engine"
	"github.com/google/uuid"
)

// AddBlockCommand contains the data needed to add an unavailable block.
type AddBlockCommand struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Recurrence  *domain.Recurrence
}

// AddBlockResult contains the result of adding a block.
type AddBlockResult struct {
	BlockID   uuid.UUID
	Cleared   int
	Timetable domain.Timetable
}

// AddBlockHandler handles the AddBlockCommand.
type AddBlockHandler struct {
	taskRepo      domain.TaskRepository
	blockRepo     domain.BlockRepository
	timetableRepo domain.TimetableRepository
	engine        *engine.Engine
	now           func() time.Time
}

// NewAddBlockHandler creates a new AddBlockHandler.
func NewAddBlockHandler(
	taskRepo domain.TaskRepository,
	blockRepo domain.BlockRepository,
	timetableRepo domain.TimetableRepository,
	eng *engine.Engine,
) *AddBlockHandler {
	return &AddBlockHandler{
		taskRepo:      taskRepo,
		blockRepo:     blockRepo,
		timetableRepo: timetableRepo,
		engine:        eng,
		now:           time.Now,
	}
}

// Handle executes the AddBlockCommand: it persists the block, clears the
// placement of every task colliding with an occurrence inside the lookahead
// horizon, and regenerates today's timetable with the block in force.
func (h *AddBlockHandler) Handle(ctx context.Context, cmd AddBlockCommand) (*AddBlockResult, error) {
	block, err := domain.NewUnavailableBlock(cmd.Title, cmd.Description, cmd.StartTime, cmd.EndTime, cmd.Recurrence)
	if err != nil {
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
	tt, updated, cleared := h.engine.AddBlockAndReschedule(block, tasks, blocks, today, now)

	if err := h.blockRepo.Save(ctx, block); err != nil {
		return nil, err
	}
	if len(updated) > 0 {
		if err := h.taskRepo.SaveAll(ctx, updated); err != nil {
			return nil, err
		}
	}
	if placed := placedTasks(tt); len(placed) > 0 {
		if err := h.taskRepo.SaveAll(ctx, placed); err != nil {
			return nil, err
		}
	}
	if err := h.timetableRepo.Save(ctx, today, tt); err != nil {
		return nil, err
	}

	return &AddBlockResult{
		BlockID:   block.ID,
		Cleared:   cleared,
		Timetable: tt,
	}, nil
}
