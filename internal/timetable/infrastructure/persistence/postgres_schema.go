package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsurePostgresSchema creates the planner tables if they don't exist.
func EnsurePostgresSchema(ctx context.Context, pool *pgxpool.Pool) error {
	schema := `
CREATE TABLE IF NOT EXISTS tasks (
  id UUID PRIMARY KEY,
  name TEXT NOT NULL,
  duration_minutes INTEGER NOT NULL,
  deadline TIMESTAMPTZ NOT NULL,
  priority TEXT NOT NULL CHECK(priority IN ('low','medium','high')),
  category TEXT NOT NULL CHECK(category IN ('work','study','leisure')),
  completed BOOLEAN NOT NULL DEFAULT FALSE,
  scheduled_at TIMESTAMPTZ,
  created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_scheduled ON tasks(scheduled_at) WHERE scheduled_at IS NOT NULL;

CREATE TABLE IF NOT EXISTS unavailable_blocks (
  id UUID PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  start_time TIMESTAMPTZ NOT NULL,
  end_time TIMESTAMPTZ NOT NULL,
  recurrence_type TEXT,
  recurrence_days TEXT,
  exceptions TEXT
);

CREATE TABLE IF NOT EXISTS timetable_blocks (
  day DATE NOT NULL,
  id UUID NOT NULL,
  block_type TEXT NOT NULL CHECK(block_type IN ('task','break','unavailable')),
  task_id UUID,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  start_time TIMESTAMPTZ NOT NULL,
  end_time TIMESTAMPTZ NOT NULL,
  fixed BOOLEAN NOT NULL DEFAULT FALSE,
  PRIMARY KEY (day, id)
);
CREATE INDEX IF NOT EXISTS idx_timetable_day ON timetable_blocks(day);
`
	_, err := pool.Exec(ctx, schema)
	return err
}
