package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("task name cannot be empty")
	ErrInvalidDuration = errors.New("task duration must be positive")
)

// IntensiveDuration is the duration at or above which a task counts as
// intensive regardless of priority.
const IntensiveDuration = 90 * time.Minute

// Task is a unit of work to be placed into the timetable. Tasks are value
// snapshots: the engine reads them and returns updated copies, it never
// mutates the caller's data.
type Task struct {
	ID          uuid.UUID
	Name        string
	Duration    time.Duration
	Deadline    time.Time
	Priority    Priority
	Category    Category
	Completed   bool
	ScheduledAt *time.Time
	CreatedAt   time.Time
}

// NewTask creates a task with a fresh identity.
func NewTask(name string, duration time.Duration, deadline time.Time, priority Priority, category Category) (Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, ErrEmptyName
	}
	if duration <= 0 {
		return Task{}, ErrInvalidDuration
	}
	if !priority.IsValid() {
		return Task{}, ErrInvalidPriority
	}
	if !category.IsValid() {
		return Task{}, ErrInvalidCategory
	}

	return Task{
		ID:        uuid.New(),
		Name:      name,
		Duration:  duration,
		Deadline:  deadline,
		Priority:  priority,
		Category:  category,
		CreatedAt: time.Now(),
	}, nil
}

// IsScheduled reports whether the task has a placement.
func (t Task) IsScheduled() bool {
	return t.ScheduledAt != nil
}

// ScheduledDay returns the calendar day of the placement, if any.
func (t Task) ScheduledDay() (Day, bool) {
	if t.ScheduledAt == nil {
		return Day{}, false
	}
	return DayOf(*t.ScheduledAt), true
}

// IsIntensive reports whether the task warrants recovery time around it.
func (t Task) IsIntensive() bool {
	return t.Priority == PriorityHigh || t.Duration >= IntensiveDuration
}

// WithScheduledAt returns a copy placed at start. The copy owns its own
// timestamp so snapshots never alias the original.
func (t Task) WithScheduledAt(start time.Time) Task {
	c := t
	s := start
	c.ScheduledAt = &s
	return c
}

// WithoutSchedule returns a copy with the placement cleared.
func (t Task) WithoutSchedule() Task {
	c := t
	c.ScheduledAt = nil
	return c
}
