package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/felixgeelhaar/dayplan/internal/timetable/engine"
	"github.com/google/uuid"
)

// MoveBlockCommand contains the data needed to move a task's placement.
type MoveBlockCommand struct {
	Day      domain.Day
	TaskID   uuid.UUID
	NewStart time.Time
}

// MoveBlockResult contains the result of a move attempt.
type MoveBlockResult struct {
	Moved     bool
	Timetable domain.Timetable
}

// MoveBlockHandler handles the MoveBlockCommand.
type MoveBlockHandler struct {
	taskRepo      domain.TaskRepository
	timetableRepo domain.TimetableRepository
	engine        *engine.Engine
}

// NewMoveBlockHandler creates a new MoveBlockHandler.
func NewMoveBlockHandler(
	taskRepo domain.TaskRepository,
	timetableRepo domain.TimetableRepository,
	eng *engine.Engine,
) *MoveBlockHandler {
	return &MoveBlockHandler{
		taskRepo:      taskRepo,
		timetableRepo: timetableRepo,
		engine:        eng,
	}
}

// Handle executes the MoveBlockCommand. A move that would collide with any
// other block is rejected and the stored timetable stays as it was; the
// result reports Moved=false rather than an error.
func (h *MoveBlockHandler) Handle(ctx context.Context, cmd MoveBlockCommand) (*MoveBlockResult, error) {
	tt, err := h.timetableRepo.FindByDay(ctx, cmd.Day)
	if err != nil {
		return nil, err
	}
	if _, ok := tt.FindByTask(cmd.TaskID); !ok {
		return nil, domain.ErrTaskNotFound
	}

	moved := h.engine.RescheduleTask(cmd.TaskID, cmd.NewStart, tt)
	block, _ := moved.FindByTask(cmd.TaskID)
	if block.Start.Equal(mustFindStart(tt, cmd.TaskID)) {
		return &MoveBlockResult{Moved: false, Timetable: tt}, nil
	}

	if err := h.timetableRepo.Save(ctx, cmd.Day, moved); err != nil {
		return nil, err
	}

	task, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}
	task = task.WithScheduledAt(block.Start)
	if err := h.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}

	return &MoveBlockResult{Moved: true, Timetable: moved}, nil
}

func mustFindStart(tt domain.Timetable, taskID uuid.UUID) time.Time {
	b, _ := tt.FindByTask(taskID)
	return b.Start
}
