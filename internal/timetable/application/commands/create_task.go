package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
)

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	Name            string
	DurationMinutes int
	Deadline        time.Time
	Priority        string
	Category        string
}

// CreateTaskResult contains the result of creating a task.
type CreateTaskResult struct {
	TaskID uuid.UUID
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo domain.TaskRepository
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo domain.TaskRepository) *CreateTaskHandler {
	return &CreateTaskHandler{taskRepo: taskRepo}
}

// Handle executes the CreateTaskCommand.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	priority, err := domain.ParsePriority(cmd.Priority)
	if err != nil {
		return nil, err
	}
	category, err := domain.ParseCategory(cmd.Category)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(
		cmd.Name,
		time.Duration(cmd.DurationMinutes)*time.Minute,
		cmd.Deadline,
		priority,
		category,
	)
	if err != nil {
		return nil, err
	}

	if err := h.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}

	return &CreateTaskResult{TaskID: task.ID}, nil
}
