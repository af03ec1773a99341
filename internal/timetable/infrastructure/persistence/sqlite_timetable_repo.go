package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
)

// SQLiteTimetableRepository implements domain.TimetableRepository using
// SQLite. Save replaces the day's blocks wholesale, like the generated
// timetable itself.
type SQLiteTimetableRepository struct {
	db *sql.DB
}

// NewSQLiteTimetableRepository creates a new SQLite timetable repository.
func NewSQLiteTimetableRepository(db *sql.DB) *SQLiteTimetableRepository {
	return &SQLiteTimetableRepository{db: db}
}

// Save stores a day's timetable, replacing any previous one.
func (r *SQLiteTimetableRepository) Save(ctx context.Context, day domain.Day, tt domain.Timetable) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM timetable_blocks WHERE day = ?`, day.String()); err != nil {
		return err
	}

	for _, b := range tt {
		var taskID sql.NullString
		if b.TaskID != uuid.Nil {
			taskID = sql.NullString{String: b.TaskID.String(), Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
INSERT INTO timetable_blocks (day, id, block_type, task_id, title, description, start_time, end_time, fixed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			day.String(),
			b.ID.String(),
			string(b.Type),
			taskID,
			b.Title,
			b.Description,
			b.Start.Format(time.RFC3339),
			b.End.Format(time.RFC3339),
			boolToInt64(b.Fixed),
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// FindByDay loads a day's stored timetable, sorted by start time. Task
// blocks are rehydrated with a snapshot of the task placed at the block
// start. An unknown day yields an empty timetable.
func (r *SQLiteTimetableRepository) FindByDay(ctx context.Context, day domain.Day) (domain.Timetable, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, block_type, task_id, title, description, start_time, end_time, fixed
FROM timetable_blocks WHERE day = ? ORDER BY start_time, id`, day.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tt domain.Timetable
	for rows.Next() {
		var (
			idStr, blockType, title, description, startStr, endStr string
			taskID                                                 sql.NullString
			fixed                                                  int64
		)
		if err := rows.Scan(&idStr, &blockType, &taskID, &title, &description, &startStr, &endStr, &fixed); err != nil {
			return nil, err
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, err
		}
		start, err := time.ParseInLocation(time.RFC3339, startStr, time.Local)
		if err != nil {
			return nil, err
		}
		end, err := time.ParseInLocation(time.RFC3339, endStr, time.Local)
		if err != nil {
			return nil, err
		}

		b := domain.TimeBlock{
			ID:          id,
			Type:        domain.BlockType(blockType),
			Title:       title,
			Description: description,
			Start:       start,
			End:         end,
			Fixed:       fixed != 0,
		}
		if taskID.Valid {
			tid, err := uuid.Parse(taskID.String)
			if err != nil {
				return nil, err
			}
			b.TaskID = tid
		}
		tt = append(tt, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.attachTaskSnapshots(ctx, tt)
}

// Delete removes a day's stored timetable.
func (r *SQLiteTimetableRepository) Delete(ctx context.Context, day domain.Day) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM timetable_blocks WHERE day = ?`, day.String())
	return err
}

func (r *SQLiteTimetableRepository) attachTaskSnapshots(ctx context.Context, tt domain.Timetable) (domain.Timetable, error) {
	taskRepo := NewSQLiteTaskRepository(r.db)
	for i, b := range tt {
		if b.Type != domain.BlockTypeTask || b.TaskID == uuid.Nil {
			continue
		}
		t, err := taskRepo.FindByID(ctx, b.TaskID)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				// task deleted since the timetable was stored; keep the
				// block without a snapshot
				continue
			}
			return nil, err
		}
		snap := t.WithScheduledAt(b.Start)
		tt[i].Task = &snap
	}
	return tt, nil
}
