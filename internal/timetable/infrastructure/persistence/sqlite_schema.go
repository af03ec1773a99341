package persistence

import (
	"context"
	"database/sql"
)

// EnsureSQLiteSchema creates the planner tables if they don't exist.
func EnsureSQLiteSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS tasks (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  duration_minutes INTEGER NOT NULL,
  deadline TEXT NOT NULL,
  priority TEXT NOT NULL CHECK(priority IN ('low','medium','high')),
  category TEXT NOT NULL CHECK(category IN ('work','study','leisure')),
  completed INTEGER NOT NULL DEFAULT 0,
  scheduled_at TEXT,
  created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_scheduled ON tasks(scheduled_at) WHERE scheduled_at IS NOT NULL;

CREATE TABLE IF NOT EXISTS unavailable_blocks (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  recurrence_type TEXT,
  recurrence_days TEXT,
  exceptions TEXT
);

CREATE TABLE IF NOT EXISTS timetable_blocks (
  day TEXT NOT NULL,
  id TEXT NOT NULL,
  block_type TEXT NOT NULL CHECK(block_type IN ('task','break','unavailable')),
  task_id TEXT,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  start_time TEXT NOT NULL,
  end_time TEXT NOT NULL,
  fixed INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (day, id)
);
CREATE INDEX IF NOT EXISTS idx_timetable_day ON timetable_blocks(day);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}
