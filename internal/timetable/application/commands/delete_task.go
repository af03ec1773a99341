package commands

import (
	"context"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
)

// DeleteTaskCommand contains the data needed to remove a task.
type DeleteTaskCommand struct {
	TaskID uuid.UUID
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	taskRepo domain.TaskRepository
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(taskRepo domain.TaskRepository) *DeleteTaskHandler {
	return &DeleteTaskHandler{taskRepo: taskRepo}
}

// Handle executes the DeleteTaskCommand.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
	// FindByID first so a missing task surfaces as ErrTaskNotFound
	if _, err := h.taskRepo.FindByID(ctx, cmd.TaskID); err != nil {
		return err
	}
	return h.taskRepo.Delete(ctx, cmd.TaskID)
}
