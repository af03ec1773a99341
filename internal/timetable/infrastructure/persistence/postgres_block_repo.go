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

// PostgresBlockRepository implements domain.BlockRepository using PostgreSQL.
type PostgresBlockRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBlockRepository creates a new PostgreSQL unavailable-block repository.
func NewPostgresBlockRepository(pool *pgxpool.Pool) *PostgresBlockRepository {
	return &PostgresBlockRepository{pool: pool}
}

// Save inserts or replaces a block, recurrence included.
func (r *PostgresBlockRepository) Save(ctx context.Context, b domain.UnavailableBlock) error {
	var recType, recDays, exceptions *string
	if b.Recurrence != nil {
		rt := string(b.Recurrence.Type)
		rd := encodeWeekdays(b.Recurrence.Days)
		ex := encodeDays(b.Recurrence.Exceptions)
		recType, recDays, exceptions = &rt, &rd, &ex
	}

	_, err := r.pool.Exec(ctx, `
INSERT INTO unavailable_blocks (id, title, description, start_time, end_time, recurrence_type, recurrence_days, exceptions)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
  title = EXCLUDED.title,
  description = EXCLUDED.description,
  start_time = EXCLUDED.start_time,
  end_time = EXCLUDED.end_time,
  recurrence_type = EXCLUDED.recurrence_type,
  recurrence_days = EXCLUDED.recurrence_days,
  exceptions = EXCLUDED.exceptions
`,
		b.ID,
		b.Title,
		b.Description,
		b.StartTime,
		b.EndTime,
		recType,
		recDays,
		exceptions,
	)
	return err
}

// FindByID retrieves a block by its ID.
func (r *PostgresBlockRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.UnavailableBlock, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, title, description, start_time, end_time, recurrence_type, recurrence_days, exceptions
FROM unavailable_blocks WHERE id = $1`, id)

	b, err := scanPostgresBlock(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UnavailableBlock{}, domain.ErrBlockNotFound
	}
	return b, err
}

// List returns every unavailable block.
func (r *PostgresBlockRepository) List(ctx context.Context) ([]domain.UnavailableBlock, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, description, start_time, end_time, recurrence_type, recurrence_days, exceptions
FROM unavailable_blocks ORDER BY start_time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []domain.UnavailableBlock
	for rows.Next() {
		b, err := scanPostgresBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

// Delete removes a block.
func (r *PostgresBlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM unavailable_blocks WHERE id = $1`, id)
	return err
}

func scanPostgresBlock(row pgx.Row) (domain.UnavailableBlock, error) {
	var (
		id                           uuid.UUID
		title, description           string
		start, end                   time.Time
		recType, recDays, exceptions *string
	)
	if err := row.Scan(&id, &title, &description, &start, &end, &recType, &recDays, &exceptions); err != nil {
		return domain.UnavailableBlock{}, err
	}

	b := domain.UnavailableBlock{
		ID:          id,
		Title:       title,
		Description: description,
		StartTime:   start.In(time.Local),
		EndTime:     end.In(time.Local),
	}
	if recType != nil && *recType != "" {
		var rd, ex string
		if recDays != nil {
			rd = *recDays
		}
		if exceptions != nil {
			ex = *exceptions
		}
		days, err := decodeWeekdays(rd)
		if err != nil {
			return domain.UnavailableBlock{}, err
		}
		exc, err := decodeDays(ex)
		if err != nil {
			return domain.UnavailableBlock{}, err
		}
		b.Recurrence = &domain.Recurrence{
			Type:       domain.RecurrenceType(*recType),
			Days:       days,
			Exceptions: exc,
		}
	}
	return b, nil
}
