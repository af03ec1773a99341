package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/felixgeelhaar/dayplan/internal/timetable/engine"
)

// PlanDayCommand contains the data needed to generate a day's timetable.
type PlanDayCommand struct {
	Day domain.Day
}

// PlanDayResult contains the result of planning a day.
type PlanDayResult struct {
	Day       domain.Day
	Timetable domain.Timetable
	Placed    int
}

// PlanDayHandler handles the PlanDayCommand.
type PlanDayHandler struct {
	taskRepo      domain.TaskRepository
	blockRepo     domain.BlockRepository
	timetableRepo domain.TimetableRepository
	engine        *engine.Engine
	now           func() time.Time
}

// NewPlanDayHandler creates a new PlanDayHandler.
func NewPlanDayHandler(
	taskRepo domain.TaskRepository,
	blockRepo domain.BlockRepository,
	timetableRepo domain.TimetableRepository,
	eng *engine.Engine,
) *PlanDayHandler {
	return &PlanDayHandler{
		taskRepo:      taskRepo,
		blockRepo:     blockRepo,
		timetableRepo: timetableRepo,
		engine:        eng,
		now:           time.Now,
	}
}

// Handle executes the PlanDayCommand: it regenerates the day's timetable
// from current tasks and unavailable blocks, persists it, and records the
// new placements on the scheduled tasks.
func (h *PlanDayHandler) Handle(ctx context.Context, cmd PlanDayCommand) (*PlanDayResult, error) {
	tasks, err := h.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	blocks, err := h.blockRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	tt := h.engine.GenerateTimetable(cmd.Day, tasks, blocks, h.now())

	placed := placedTasks(tt)
	if len(placed) > 0 {
		if err := h.taskRepo.SaveAll(ctx, placed); err != nil {
			return nil, err
		}
	}
	if err := h.timetableRepo.Save(ctx, cmd.Day, tt); err != nil {
		return nil, err
	}

	return &PlanDayResult{
		Day:       cmd.Day,
		Timetable: tt,
		Placed:    len(placed),
	}, nil
}

// placedTasks extracts the task snapshots carried by a timetable's task
// blocks. Each snapshot already records its placement.
func placedTasks(tt domain.Timetable) []domain.Task {
	var out []domain.Task
	for _, b := range tt.TaskBlocks() {
		if b.Task != nil {
			out = append(out, *b.Task)
		}
	}
	return out
}
