package queries

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/felixgeelhaar/dayplan/internal/timetable/engine"
)

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Save(ctx context.Context, t domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepo) SaveAll(ctx context.Context, tasks []domain.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *mockTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockTimetableRepo struct {
	mock.Mock
}

func (m *mockTimetableRepo) Save(ctx context.Context, day domain.Day, tt domain.Timetable) error {
	args := m.Called(ctx, day, tt)
	return args.Error(0)
}

func (m *mockTimetableRepo) FindByDay(ctx context.Context, day domain.Day) (domain.Timetable, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Timetable), args.Error(1)
}

func (m *mockTimetableRepo) Delete(ctx context.Context, day domain.Day) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

func testEngine() *engine.Engine {
	return engine.New(engine.DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Monday 2026-03-02 at 07:00.
func fixedNow() time.Time {
	return time.Date(2026, time.March, 2, 7, 0, 0, 0, time.Local)
}
