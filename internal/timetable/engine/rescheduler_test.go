package engine

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedTaskBlock(t *testing.T, name string, start, end time.Time, p domain.Priority) domain.TimeBlock {
	t.Helper()
	task := mkTask(t, name, end.Sub(start), end.Add(24*time.Hour), p, domain.CategoryWork)
	snap := task.WithScheduledAt(start)
	return domain.TimeBlock{
		ID:     uuid.New(),
		Type:   domain.BlockTypeTask,
		TaskID: task.ID,
		Task:   &snap,
		Title:  name,
		Start:  start,
		End:    end,
	}
}

func TestRescheduleTask_MovesToFreeSlot(t *testing.T) {
	e := testEngine()
	day := domain.DayOf(fixedNow()).AddDays(1)

	work := placedTaskBlock(t, "Work", day.At(6, 0), day.At(7, 0), domain.PriorityMedium)
	tt := domain.Timetable{work}

	moved := e.RescheduleTask(work.TaskID, day.At(12, 0), tt)

	block, ok := moved.FindByTask(work.TaskID)
	require.True(t, ok)
	assert.Equal(t, day.At(12, 0), block.Start)
	assert.Equal(t, day.At(13, 0), block.End)
	require.NotNil(t, block.Task)
	assert.Equal(t, day.At(12, 0), *block.Task.ScheduledAt)

	// input untouched
	orig, _ := tt.FindByTask(work.TaskID)
	assert.Equal(t, day.At(6, 0), orig.Start)
}

func TestRescheduleTask_RejectsConflictingMove(t *testing.T) {
	e := testEngine()
	day := domain.DayOf(fixedNow()).AddDays(1)

	work := placedTaskBlock(t, "Work", day.At(6, 0), day.At(7, 0), domain.PriorityMedium)
	meeting := domain.TimeBlock{
		ID:    uuid.New(),
		Type:  domain.BlockTypeUnavailable,
		Title: "Meeting",
		Start: day.At(10, 0),
		End:   day.At(11, 0),
		Fixed: true,
	}
	tt := domain.Timetable{work, meeting}

	moved := e.RescheduleTask(work.TaskID, day.At(10, 30), tt)
	assert.Equal(t, tt, moved, "conflicting move must leave the timetable unchanged")
}

func TestRescheduleTask_UnknownTaskIsNoOp(t *testing.T) {
	e := testEngine()
	day := domain.DayOf(fixedNow()).AddDays(1)

	work := placedTaskBlock(t, "Work", day.At(6, 0), day.At(7, 0), domain.PriorityMedium)
	tt := domain.Timetable{work}

	moved := e.RescheduleTask(uuid.New(), day.At(12, 0), tt)
	assert.Equal(t, tt, moved)
}

func TestRescheduleTask_MoveWithinOwnSlotAllowed(t *testing.T) {
	e := testEngine()
	day := domain.DayOf(fixedNow()).AddDays(1)

	work := placedTaskBlock(t, "Work", day.At(6, 0), day.At(7, 0), domain.PriorityMedium)
	tt := domain.Timetable{work}

	// overlaps only its own previous interval
	moved := e.RescheduleTask(work.TaskID, day.At(6, 30), tt)
	block, ok := moved.FindByTask(work.TaskID)
	require.True(t, ok)
	assert.Equal(t, day.At(6, 30), block.Start)
}
