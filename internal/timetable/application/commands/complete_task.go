package commands

import (
	"context"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
)

// CompleteTaskCommand contains the data needed to mark a task as done.
type CompleteTaskCommand struct {
	TaskID uuid.UUID
}

// CompleteTaskHandler handles the CompleteTaskCommand.
type CompleteTaskHandler struct {
	taskRepo domain.TaskRepository
}

// NewCompleteTaskHandler creates a new CompleteTaskHandler.
func NewCompleteTaskHandler(taskRepo domain.TaskRepository) *CompleteTaskHandler {
	return &CompleteTaskHandler{taskRepo: taskRepo}
}

// Handle executes the CompleteTaskCommand. Completed tasks keep their
// placement for the day's record but are skipped by future planning.
func (h *CompleteTaskHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) error {
	task, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	task.Completed = true
	return h.taskRepo.Save(ctx, task)
}
