package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
)

func TestAddBlockHandler_Handle(t *testing.T) {
	ctx := context.Background()
	today := domain.DayOf(fixedNow())

	t.Run("clears colliding placements and replans today", func(t *testing.T) {
		task, err := domain.NewTask("Deep work", time.Hour, today.At(23, 59), domain.PriorityHigh, domain.CategoryWork)
		require.NoError(t, err)
		task = task.WithScheduledAt(today.At(10, 30))

		taskRepo := new(mockTaskRepo)
		blockRepo := new(mockBlockRepo)
		timetableRepo := new(mockTimetableRepo)

		taskRepo.On("List", ctx).Return([]domain.Task{task}, nil)
		blockRepo.On("List", ctx).Return(nil, nil)
		blockRepo.On("Save", ctx, mock.MatchedBy(func(b domain.UnavailableBlock) bool {
			return b.Title == "Doctor"
		})).Return(nil)
		// cleared placements first, new placements second
		taskRepo.On("SaveAll", ctx, mock.MatchedBy(func(tasks []domain.Task) bool {
			return len(tasks) == 1 && tasks[0].ScheduledAt == nil
		})).Return(nil)
		taskRepo.On("SaveAll", ctx, mock.MatchedBy(func(tasks []domain.Task) bool {
			return len(tasks) == 1 && tasks[0].ScheduledAt != nil
		})).Return(nil)
		timetableRepo.On("Save", ctx, today, mock.Anything).Return(nil)

		handler := NewAddBlockHandler(taskRepo, blockRepo, timetableRepo, testEngine())
		handler.now = fixedNow

		result, err := handler.Handle(ctx, AddBlockCommand{
			Title:     "Doctor",
			StartTime: today.At(10, 0),
			EndTime:   today.At(11, 0),
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.BlockID)
		assert.Equal(t, 1, result.Cleared)

		// the new block is part of the regenerated timetable
		conflict := domain.TimeRange{Start: today.At(10, 0), End: today.At(11, 0)}
		assert.True(t, result.Timetable.ConflictsWith(conflict, uuid.Nil))
		for _, b := range result.Timetable.TaskBlocks() {
			r := domain.TimeRange{Start: b.Start, End: b.End}
			assert.False(t, r.Overlaps(conflict), "replanned task avoids the block")
		}

		taskRepo.AssertExpectations(t)
		blockRepo.AssertExpectations(t)
		timetableRepo.AssertExpectations(t)
	})

	t.Run("untouched placements are left alone", func(t *testing.T) {
		task, err := domain.NewTask("Evening reading", 30*time.Minute, today.At(23, 59), domain.PriorityLow, domain.CategoryLeisure)
		require.NoError(t, err)
		task = task.WithScheduledAt(today.At(20, 0))

		taskRepo := new(mockTaskRepo)
		blockRepo := new(mockBlockRepo)
		timetableRepo := new(mockTimetableRepo)

		taskRepo.On("List", ctx).Return([]domain.Task{task}, nil)
		blockRepo.On("List", ctx).Return(nil, nil)
		blockRepo.On("Save", ctx, mock.Anything).Return(nil)
		// the kept placement is re-emitted as a block snapshot
		taskRepo.On("SaveAll", ctx, mock.Anything).Return(nil)
		timetableRepo.On("Save", ctx, today, mock.Anything).Return(nil)

		handler := NewAddBlockHandler(taskRepo, blockRepo, timetableRepo, testEngine())
		handler.now = fixedNow

		result, err := handler.Handle(ctx, AddBlockCommand{
			Title:     "Doctor",
			StartTime: today.At(10, 0),
			EndTime:   today.At(11, 0),
		})

		require.NoError(t, err)
		assert.Zero(t, result.Cleared)
	})

	t.Run("rejects an inverted time range", func(t *testing.T) {
		taskRepo := new(mockTaskRepo)
		blockRepo := new(mockBlockRepo)
		timetableRepo := new(mockTimetableRepo)

		handler := NewAddBlockHandler(taskRepo, blockRepo, timetableRepo, testEngine())
		handler.now = fixedNow

		_, err := handler.Handle(ctx, AddBlockCommand{
			Title:     "Backwards",
			StartTime: today.At(11, 0),
			EndTime:   today.At(10, 0),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
		blockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
