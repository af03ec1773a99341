package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
)

// TaskDTO is a data transfer object for tasks.
type TaskDTO struct {
	ID          uuid.UUID
	Name        string
	DurationMin int
	Deadline    time.Time
	Priority    string
	Category    string
	Completed   bool
	ScheduledAt *time.Time
}

// ListTasksQuery contains the parameters for listing tasks.
type ListTasksQuery struct {
	// IncludeCompleted keeps done tasks in the result.
	IncludeCompleted bool
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo domain.TaskRepository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo domain.TaskRepository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskDTO, error) {
	tasks, err := h.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed && !query.IncludeCompleted {
			continue
		}
		out = append(out, toTaskDTO(t))
	}
	return out, nil
}

func toTaskDTO(t domain.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Name:        t.Name,
		DurationMin: int(t.Duration.Minutes()),
		Deadline:    t.Deadline,
		Priority:    t.Priority.String(),
		Category:    t.Category.String(),
		Completed:   t.Completed,
		ScheduledAt: t.ScheduledAt,
	}
}
