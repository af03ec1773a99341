package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
)

// SQLiteBlockRepository implements domain.BlockRepository using SQLite.
type SQLiteBlockRepository struct {
	db *sql.DB
}

// NewSQLiteBlockRepository creates a new SQLite unavailable-block repository.
func NewSQLiteBlockRepository(db *sql.DB) *SQLiteBlockRepository {
	return &SQLiteBlockRepository{db: db}
}

// Save inserts or replaces a block, recurrence included.
func (r *SQLiteBlockRepository) Save(ctx context.Context, b domain.UnavailableBlock) error {
	var recType, recDays, exceptions sql.NullString
	if b.Recurrence != nil {
		recType = sql.NullString{String: string(b.Recurrence.Type), Valid: true}
		recDays = sql.NullString{String: encodeWeekdays(b.Recurrence.Days), Valid: true}
		exceptions = sql.NullString{String: encodeDays(b.Recurrence.Exceptions), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO unavailable_blocks (id, title, description, start_time, end_time, recurrence_type, recurrence_days, exceptions)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title = excluded.title,
  description = excluded.description,
  start_time = excluded.start_time,
  end_time = excluded.end_time,
  recurrence_type = excluded.recurrence_type,
  recurrence_days = excluded.recurrence_days,
  exceptions = excluded.exceptions
`,
		b.ID.String(),
		b.Title,
		b.Description,
		b.StartTime.Format(time.RFC3339),
		b.EndTime.Format(time.RFC3339),
		recType,
		recDays,
		exceptions,
	)
	return err
}

// FindByID retrieves a block by its ID.
func (r *SQLiteBlockRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.UnavailableBlock, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, description, start_time, end_time, recurrence_type, recurrence_days, exceptions
FROM unavailable_blocks WHERE id = ?`, id.String())

	b, err := scanBlock(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UnavailableBlock{}, domain.ErrBlockNotFound
	}
	return b, err
}

// List returns every unavailable block.
func (r *SQLiteBlockRepository) List(ctx context.Context) ([]domain.UnavailableBlock, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, description, start_time, end_time, recurrence_type, recurrence_days, exceptions
FROM unavailable_blocks ORDER BY start_time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []domain.UnavailableBlock
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

// Delete removes a block.
func (r *SQLiteBlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM unavailable_blocks WHERE id = ?`, id.String())
	return err
}

func scanBlock(row rowScanner) (domain.UnavailableBlock, error) {
	var (
		idStr, title, description, startStr, endStr string
		recType, recDays, exceptions                sql.NullString
	)
	if err := row.Scan(&idStr, &title, &description, &startStr, &endStr, &recType, &recDays, &exceptions); err != nil {
		return domain.UnavailableBlock{}, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return domain.UnavailableBlock{}, err
	}
	start, err := time.ParseInLocation(time.RFC3339, startStr, time.Local)
	if err != nil {
		return domain.UnavailableBlock{}, err
	}
	end, err := time.ParseInLocation(time.RFC3339, endStr, time.Local)
	if err != nil {
		return domain.UnavailableBlock{}, err
	}

	b := domain.UnavailableBlock{
		ID:          id,
		Title:       title,
		Description: description,
		StartTime:   start,
		EndTime:     end,
	}
	if recType.Valid && recType.String != "" {
		days, err := decodeWeekdays(recDays.String)
		if err != nil {
			return domain.UnavailableBlock{}, err
		}
		exc, err := decodeDays(exceptions.String)
		if err != nil {
			return domain.UnavailableBlock{}, err
		}
		b.Recurrence = &domain.Recurrence{
			Type:       domain.RecurrenceType(recType.String),
			Days:       days,
			Exceptions: exc,
		}
	}
	return b, nil
}
