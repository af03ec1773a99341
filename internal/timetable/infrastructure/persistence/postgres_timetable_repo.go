package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTimetableRepository implements domain.TimetableRepository using
// PostgreSQL. Save replaces the day's blocks wholesale, like the generated
// timetable itself.
type PostgresTimetableRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTimetableRepository creates a new PostgreSQL timetable repository.
func NewPostgresTimetableRepository(pool *pgxpool.Pool) *PostgresTimetableRepository {
	return &PostgresTimetableRepository{pool: pool}
}

// Save stores a day's timetable, replacing any previous one.
func (r *PostgresTimetableRepository) Save(ctx context.Context, day domain.Day, tt domain.Timetable) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM timetable_blocks WHERE day = $1`, day.String()); err != nil {
		return err
	}

	for _, b := range tt {
		var taskID *uuid.UUID
		if b.TaskID != uuid.Nil {
			tid := b.TaskID
			taskID = &tid
		}
		_, err := tx.Exec(ctx, `
INSERT INTO timetable_blocks (day, id, block_type, task_id, title, description, start_time, end_time, fixed)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			day.String(),
			b.ID,
			string(b.Type),
			taskID,
			b.Title,
			b.Description,
			b.Start,
			b.End,
			b.Fixed,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// FindByDay loads a day's stored timetable, sorted by start time. Task
// blocks are rehydrated with a snapshot of the task placed at the block
// start. An unknown day yields an empty timetable.
func (r *PostgresTimetableRepository) FindByDay(ctx context.Context, day domain.Day) (domain.Timetable, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, block_type, task_id, title, description, start_time, end_time, fixed
FROM timetable_blocks WHERE day = $1 ORDER BY start_time, id`, day.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tt domain.Timetable
	for rows.Next() {
		var (
			id                  uuid.UUID
			blockType           string
			taskID              *uuid.UUID
			title, description  string
			start, end          time.Time
			fixed               bool
		)
		if err := rows.Scan(&id, &blockType, &taskID, &title, &description, &start, &end, &fixed); err != nil {
			return nil, err
		}

		b := domain.TimeBlock{
			ID:          id,
			Type:        domain.BlockType(blockType),
			Title:       title,
			Description: description,
			Start:       start.In(time.Local),
			End:         end.In(time.Local),
			Fixed:       fixed,
		}
		if taskID != nil {
			b.TaskID = *taskID
		}
		tt = append(tt, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.attachTaskSnapshots(ctx, tt)
}

// Delete removes a day's stored timetable.
func (r *PostgresTimetableRepository) Delete(ctx context.Context, day domain.Day) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM timetable_blocks WHERE day = $1`, day.String())
	return err
}

func (r *PostgresTimetableRepository) attachTaskSnapshots(ctx context.Context, tt domain.Timetable) (domain.Timetable, error) {
	taskRepo := NewPostgresTaskRepository(r.pool)
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
