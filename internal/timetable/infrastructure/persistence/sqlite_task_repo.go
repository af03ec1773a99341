package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
)

// SQLiteTaskRepository implements domain.TaskRepository using SQLite.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLite task repository.
func NewSQLiteTaskRepository(db *sql.DB) *SQLiteTaskRepository {
	return &SQLiteTaskRepository{db: db}
}

// Save inserts or replaces a task.
func (r *SQLiteTaskRepository) Save(ctx context.Context, t domain.Task) error {
	var scheduledAt sql.NullString
	if t.ScheduledAt != nil {
		scheduledAt = sql.NullString{String: t.ScheduledAt.Format(time.RFC3339), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO tasks (id, name, duration_minutes, deadline, priority, category, completed, scheduled_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name = excluded.name,
  duration_minutes = excluded.duration_minutes,
  deadline = excluded.deadline,
  priority = excluded.priority,
  category = excluded.category,
  completed = excluded.completed,
  scheduled_at = excluded.scheduled_at
`,
		t.ID.String(),
		t.Name,
		int(t.Duration.Minutes()),
		t.Deadline.Format(time.RFC3339),
		t.Priority.String(),
		t.Category.String(),
		boolToInt64(t.Completed),
		scheduledAt,
		t.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// SaveAll persists a batch of tasks in one transaction.
func (r *SQLiteTaskRepository) SaveAll(ctx context.Context, tasks []domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, t := range tasks {
		var scheduledAt sql.NullString
		if t.ScheduledAt != nil {
			scheduledAt = sql.NullString{String: t.ScheduledAt.Format(time.RFC3339), Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
UPDATE tasks SET
  name = ?, duration_minutes = ?, deadline = ?, priority = ?, category = ?,
  completed = ?, scheduled_at = ?
WHERE id = ?
`,
			t.Name,
			int(t.Duration.Minutes()),
			t.Deadline.Format(time.RFC3339),
			t.Priority.String(),
			t.Category.String(),
			boolToInt64(t.Completed),
			scheduledAt,
			t.ID.String(),
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// FindByID retrieves a task by its ID.
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, duration_minutes, deadline, priority, category, completed, scheduled_at, created_at
FROM tasks WHERE id = ?`, id.String())

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return t, err
}

// List returns every task, oldest first.
func (r *SQLiteTaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, duration_minutes, deadline, priority, category, completed, scheduled_at, created_at
FROM tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Delete removes a task.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		idStr, name, deadlineStr, priorityStr, categoryStr, createdStr string
		minutes, completed                                             int64
		scheduledAt                                                    sql.NullString
	)
	if err := row.Scan(&idStr, &name, &minutes, &deadlineStr, &priorityStr, &categoryStr, &completed, &scheduledAt, &createdStr); err != nil {
		return domain.Task{}, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return domain.Task{}, err
	}
	deadline, err := time.ParseInLocation(time.RFC3339, deadlineStr, time.Local)
	if err != nil {
		return domain.Task{}, err
	}
	priority, err := domain.ParsePriority(priorityStr)
	if err != nil {
		return domain.Task{}, err
	}
	category, err := domain.ParseCategory(categoryStr)
	if err != nil {
		return domain.Task{}, err
	}
	createdAt, err := time.ParseInLocation(time.RFC3339, createdStr, time.Local)
	if err != nil {
		return domain.Task{}, err
	}

	t := domain.Task{
		ID:        id,
		Name:      name,
		Duration:  time.Duration(minutes) * time.Minute,
		Deadline:  deadline,
		Priority:  priority,
		Category:  category,
		Completed: completed != 0,
		CreatedAt: createdAt,
	}
	if scheduledAt.Valid {
		at, err := time.ParseInLocation(time.RFC3339, scheduledAt.String, time.Local)
		if err != nil {
			return domain.Task{}, err
		}
		t.ScheduledAt = &at
	}
	return t, nil
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
