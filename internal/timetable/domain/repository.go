package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrBlockNotFound = errors.New("unavailable block not found")
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Save(ctx context.Context, t Task) error
	SaveAll(ctx context.Context, tasks []Task) error
	FindByID(ctx context.Context, id uuid.UUID) (Task, error)
	List(ctx context.Context) ([]Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BlockRepository defines persistence operations for unavailable blocks.
type BlockRepository interface {
	Save(ctx context.Context, b UnavailableBlock) error
	FindByID(ctx context.Context, id uuid.UUID) (UnavailableBlock, error)
	List(ctx context.Context) ([]UnavailableBlock, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TimetableRepository stores one generated timetable per calendar day.
// Save replaces the day's blocks wholesale.
type TimetableRepository interface {
	Save(ctx context.Context, day Day, tt Timetable) error
	FindByDay(ctx context.Context, day Day) (Timetable, error)
	Delete(ctx context.Context, day Day) error
}
