package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTaskRepository implements domain.TaskRepository using PostgreSQL.
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepository creates a new PostgreSQL task repository.
func NewPostgresTaskRepository(pool *pgxpool.Pool) *PostgresTaskRepository {
	return &PostgresTaskRepository{pool: pool}
}

// Save inserts or replaces a task.
func (r *PostgresTaskRepository) Save(ctx context.Context, t domain.Task) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO tasks (id, name, duration_minutes, deadline, priority, category, completed, scheduled_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  duration_minutes = EXCLUDED.duration_minutes,
  deadline = EXCLUDED.deadline,
  priority = EXCLUDED.priority,
  category = EXCLUDED.category,
  completed = EXCLUDED.completed,
  scheduled_at = EXCLUDED.scheduled_at
`,
		t.ID,
		t.Name,
		int(t.Duration.Minutes()),
		t.Deadline,
		t.Priority.String(),
		t.Category.String(),
		t.Completed,
		t.ScheduledAt,
		t.CreatedAt,
	)
	return err
}

// SaveAll persists a batch of tasks in one transaction.
func (r *PostgresTaskRepository) SaveAll(ctx context.Context, tasks []domain.Task) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, t := range tasks {
		_, err := tx.Exec(ctx, `
UPDATE tasks SET
  name = $1, duration_minutes = $2, deadline = $3, priority = $4, category = $5,
  completed = $6, scheduled_at = $7
WHERE id = $8
`,
			t.Name,
			int(t.Duration.Minutes()),
			t.Deadline,
			t.Priority.String(),
			t.Category.String(),
			t.Completed,
			t.ScheduledAt,
			t.ID,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// FindByID retrieves a task by its ID.
func (r *PostgresTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name, duration_minutes, deadline, priority, category, completed, scheduled_at, created_at
FROM tasks WHERE id = $1`, id)

	t, err := scanPostgresTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return t, err
}

// List returns every task, oldest first.
func (r *PostgresTaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, duration_minutes, deadline, priority, category, completed, scheduled_at, created_at
FROM tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanPostgresTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Delete removes a task.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func scanPostgresTask(row pgx.Row) (domain.Task, error) {
	var (
		id                        uuid.UUID
		name, priorityStr, catStr string
		minutes                   int
		deadline, createdAt       time.Time
		completed                 bool
		scheduledAt               *time.Time
	)
	if err := row.Scan(&id, &name, &minutes, &deadline, &priorityStr, &catStr, &completed, &scheduledAt, &createdAt); err != nil {
		return domain.Task{}, err
	}

	priority, err := domain.ParsePriority(priorityStr)
	if err != nil {
		return domain.Task{}, err
	}
	category, err := domain.ParseCategory(catStr)
	if err != nil {
		return domain.Task{}, err
	}

	return domain.Task{
		ID:          id,
		Name:        name,
		Duration:    time.Duration(minutes) * time.Minute,
		Deadline:    deadline,
		Priority:    priority,
		Category:    category,
		Completed:   completed,
		ScheduledAt: scheduledAt,
		CreatedAt:   createdAt,
	}, nil
}
