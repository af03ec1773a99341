package engine

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *Engine {
	return New(DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fixedNow is a Monday at 07:00 local time.
func fixedNow() time.Time {
	return time.Date(2026, time.March, 2, 7, 0, 0, 0, time.Local)
}

func mkTask(t *testing.T, name string, dur time.Duration, deadline time.Time, p domain.Priority, c domain.Category) domain.Task {
	t.Helper()
	task, err := domain.NewTask(name, dur, deadline, p, c)
	require.NoError(t, err)
	return task
}

func mkOneOffBlock(t *testing.T, title string, start, end time.Time) domain.UnavailableBlock {
	t.Helper()
	b, err := domain.NewUnavailableBlock(title, "", start, end, nil)
	require.NoError(t, err)
	return b
}

func TestGenerateTimetable_EmptyForPastDay(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	yesterday := domain.DayOf(now).AddDays(-1)

	task := mkTask(t, "Anything", 30*time.Minute, now.Add(48*time.Hour), domain.PriorityHigh, domain.CategoryWork)

	tt := e.GenerateTimetable(yesterday, []domain.Task{task}, nil, now)
	assert.Empty(t, tt)
}

func TestGenerateTimetable_PlacesByScoreFromDayStart(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)
	deadline := tomorrow.At(23, 59)

	deep := mkTask(t, "Deep work", time.Hour, deadline, domain.PriorityHigh, domain.CategoryWork)
	email := mkTask(t, "Email", 30*time.Minute, deadline, domain.PriorityLow, domain.CategoryLeisure)

	tt := e.GenerateTimetable(tomorrow, []domain.Task{email, deep}, nil, now)
	require.NoError(t, tt.Validate())

	taskBlocks := tt.TaskBlocks()
	require.Len(t, taskBlocks, 2)
	assert.Equal(t, deep.ID, taskBlocks[0].TaskID)
	assert.Equal(t, tomorrow.At(6, 0), taskBlocks[0].Start)
	assert.Equal(t, email.ID, taskBlocks[1].TaskID)
	assert.Equal(t, tomorrow.At(7, 0), taskBlocks[1].Start)
}

func TestGenerateTimetable_RespectsUnavailableBlocks(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)

	shift := mkOneOffBlock(t, "Morning shift", tomorrow.At(6, 0), tomorrow.At(10, 0))
	task := mkTask(t, "Write report", time.Hour, tomorrow.At(23, 59), domain.PriorityMedium, domain.CategoryWork)

	tt := e.GenerateTimetable(tomorrow, []domain.Task{task}, []domain.UnavailableBlock{shift}, now)
	require.NoError(t, tt.Validate())

	block, ok := tt.FindByTask(task.ID)
	require.True(t, ok)
	assert.Equal(t, tomorrow.At(10, 0), block.Start)
}

func TestGenerateTimetable_Deterministic(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)
	deadline := tomorrow.At(23, 59)

	tasks := []domain.Task{
		mkTask(t, "Alpha", 90*time.Minute, deadline, domain.PriorityHigh, domain.CategoryWork),
		mkTask(t, "Beta", 45*time.Minute, deadline, domain.PriorityMedium, domain.CategoryStudy),
		mkTask(t, "Gamma", 30*time.Minute, deadline, domain.PriorityLow, domain.CategoryLeisure),
	}
	blocks := []domain.UnavailableBlock{
		mkOneOffBlock(t, "Lunch", tomorrow.At(12, 0), tomorrow.At(13, 0)),
	}

	first := e.GenerateTimetable(tomorrow, tasks, blocks, now)
	second := e.GenerateTimetable(tomorrow, tasks, blocks, now)
	assert.Equal(t, first, second)
}

func TestGenerateTimetable_LeadTimeOnCurrentDay(t *testing.T) {
	e := testEngine()
	now := fixedNow() // 07:00
	today := domain.DayOf(now)

	task := mkTask(t, "Morning task", 30*time.Minute, today.At(23, 59), domain.PriorityMedium, domain.CategoryWork)

	tt := e.GenerateTimetable(today, []domain.Task{task}, nil, now)

	block, ok := tt.FindByTask(task.ID)
	require.True(t, ok)
	// 07:00 now plus 15m lead, rounded up to the granule
	assert.Equal(t, today.At(7, 15), block.Start)
}

func TestGenerateTimetable_PriorityWinsUnderScarcity(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)
	deadline := tomorrow.At(23, 59)

	// Only 22:00-23:00 remains free.
	busyDay := mkOneOffBlock(t, "Conference", tomorrow.At(6, 0), tomorrow.At(22, 0))
	urgent := mkTask(t, "Urgent", time.Hour, deadline, domain.PriorityHigh, domain.CategoryWork)
	casual := mkTask(t, "Casual", time.Hour, deadline, domain.PriorityLow, domain.CategoryLeisure)

	tt := e.GenerateTimetable(tomorrow, []domain.Task{casual, urgent}, []domain.UnavailableBlock{busyDay}, now)

	taskBlocks := tt.TaskBlocks()
	require.Len(t, taskBlocks, 1)
	assert.Equal(t, urgent.ID, taskBlocks[0].TaskID)
	assert.Equal(t, tomorrow.At(22, 0), taskBlocks[0].Start)
}

func TestGenerateTimetable_CarriesForwardMissedPlacements(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	today := domain.DayOf(now)

	missed := mkTask(t, "Missed yesterday", 30*time.Minute, today.At(23, 59), domain.PriorityMedium, domain.CategoryWork)
	missed = missed.WithScheduledAt(today.AddDays(-1).At(10, 0))

	tt := e.GenerateTimetable(today, []domain.Task{missed}, nil, now)

	block, ok := tt.FindByTask(missed.ID)
	require.True(t, ok)
	assert.Equal(t, today.At(7, 15), block.Start)
}

func TestGenerateTimetable_ReplansStalePlacements(t *testing.T) {
	e := testEngine()
	now := fixedNow() // 07:00
	today := domain.DayOf(now)

	stale := mkTask(t, "Slept through it", 30*time.Minute, today.At(23, 59), domain.PriorityMedium, domain.CategoryWork)
	stale = stale.WithScheduledAt(today.At(6, 0))

	tt := e.GenerateTimetable(today, []domain.Task{stale}, nil, now)

	taskBlocks := tt.TaskBlocks()
	require.Len(t, taskBlocks, 1)
	assert.Equal(t, today.At(7, 15), taskBlocks[0].Start)
}

func TestGenerateTimetable_KeepsValidFuturePlacements(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	today := domain.DayOf(now)

	kept := mkTask(t, "Afternoon call prep", time.Hour, today.At(23, 59), domain.PriorityMedium, domain.CategoryWork)
	kept = kept.WithScheduledAt(today.At(15, 0))
	fresh := mkTask(t, "New task", 30*time.Minute, today.At(23, 59), domain.PriorityLow, domain.CategoryWork)

	tt := e.GenerateTimetable(today, []domain.Task{kept, fresh}, nil, now)
	require.NoError(t, tt.Validate())

	block, ok := tt.FindByTask(kept.ID)
	require.True(t, ok)
	assert.Equal(t, today.At(15, 0), block.Start)

	_, ok = tt.FindByTask(fresh.ID)
	assert.True(t, ok)
}

func TestGenerateTimetable_GapAfterFocusLimit(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)
	deadline := tomorrow.At(23, 59)

	long := mkTask(t, "Long stretch", 90*time.Minute, deadline, domain.PriorityMedium, domain.CategoryWork)
	short := mkTask(t, "Follow-up", 30*time.Minute, deadline, domain.PriorityLow, domain.CategoryWork)

	tt := e.GenerateTimetable(tomorrow, []domain.Task{long, short}, nil, now)
	require.NoError(t, tt.Validate())

	longBlock, ok := tt.FindByTask(long.ID)
	require.True(t, ok)
	shortBlock, ok := tt.FindByTask(short.ID)
	require.True(t, ok)

	assert.Equal(t, tomorrow.At(6, 0), longBlock.Start)
	// 90 minutes of continuous work demand at least a 15 minute gap
	assert.True(t, shortBlock.Start.Sub(longBlock.End) >= 15*time.Minute,
		"expected a recovery gap, got %s", shortBlock.Start.Sub(longBlock.End))
}

func TestGenerateTimetable_SkipsCompletedTasks(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)

	done := mkTask(t, "Already done", time.Hour, tomorrow.At(23, 59), domain.PriorityHigh, domain.CategoryWork)
	done.Completed = true

	tt := e.GenerateTimetable(tomorrow, []domain.Task{done}, nil, now)
	assert.Empty(t, tt.TaskBlocks())
}

func TestGenerateTimetable_ExceptionFreesTheWindow(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)
	dayAfter := tomorrow.AddDays(1)

	standup, err := domain.NewUnavailableBlock("Standup", "", now.Add(-24*time.Hour).Add(5*time.Hour), now.Add(-24*time.Hour).Add(6*time.Hour),
		&domain.Recurrence{Type: domain.RecurrenceDaily})
	require.NoError(t, err)
	standup = standup.AddException(tomorrow)

	task := mkTask(t, "Work", time.Hour, dayAfter.At(23, 59), domain.PriorityMedium, domain.CategoryWork)

	skipped := e.GenerateTimetable(tomorrow, []domain.Task{task}, []domain.UnavailableBlock{standup}, now)
	for _, b := range skipped {
		assert.NotEqual(t, domain.BlockTypeUnavailable, b.Type)
	}

	applied := e.GenerateTimetable(dayAfter, []domain.Task{task}, []domain.UnavailableBlock{standup}, now)
	found := false
	for _, b := range applied {
		if b.Type == domain.BlockTypeUnavailable {
			found = true
		}
	}
	assert.True(t, found, "recurrence should still apply on other days")
}

func TestAddBlockAndReschedule_ClearsConflictingPlacements(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)

	task := mkTask(t, "Focus hour", time.Hour, tomorrow.At(23, 59), domain.PriorityMedium, domain.CategoryWork)
	task = task.WithScheduledAt(tomorrow.At(10, 0))

	dentist := mkOneOffBlock(t, "Dentist", tomorrow.At(10, 30), tomorrow.At(11, 30))

	tt, updated, cleared := e.AddBlockAndReschedule(dentist, []domain.Task{task}, nil, tomorrow, now)

	assert.Equal(t, 1, cleared)
	require.Len(t, updated, 1)
	assert.False(t, updated[0].IsScheduled())

	require.NoError(t, tt.Validate())
	block, ok := tt.FindByTask(task.ID)
	require.True(t, ok)
	assert.False(t, block.Range().Overlaps(domain.TimeRange{Start: tomorrow.At(10, 30), End: tomorrow.At(11, 30)}))
}

func TestAddBlockAndReschedule_UntouchedPlacementsSurvive(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)

	task := mkTask(t, "Early work", time.Hour, tomorrow.At(23, 59), domain.PriorityMedium, domain.CategoryWork)
	task = task.WithScheduledAt(tomorrow.At(6, 0))

	dentist := mkOneOffBlock(t, "Dentist", tomorrow.At(10, 30), tomorrow.At(11, 30))

	_, updated, cleared := e.AddBlockAndReschedule(dentist, []domain.Task{task}, nil, tomorrow, now)

	assert.Equal(t, 0, cleared)
	require.Len(t, updated, 1)
	assert.True(t, updated[0].IsScheduled())
}

func TestAddBlockAndReschedule_DailyLookaheadBound(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	today := domain.DayOf(now)

	lunch, err := domain.NewUnavailableBlock("Lunch", "", today.At(12, 0), today.At(13, 0),
		&domain.Recurrence{Type: domain.RecurrenceDaily})
	require.NoError(t, err)

	within := mkTask(t, "Within horizon", time.Hour, today.AddDays(10).At(23, 59), domain.PriorityMedium, domain.CategoryWork)
	within = within.WithScheduledAt(today.AddDays(3).At(12, 15))

	beyond := mkTask(t, "Beyond horizon", time.Hour, today.AddDays(20).At(23, 59), domain.PriorityMedium, domain.CategoryWork)
	beyond = beyond.WithScheduledAt(today.AddDays(10).At(12, 15))

	_, updated, cleared := e.AddBlockAndReschedule(lunch, []domain.Task{within, beyond}, nil, today, now)

	assert.Equal(t, 1, cleared)
	assert.False(t, updated[0].IsScheduled(), "placement inside the 7-day horizon is cleared")
	assert.True(t, updated[1].IsScheduled(), "placement beyond the horizon is untouched")
}

func TestAddBlockAndReschedule_WeeklyLookaheadBound(t *testing.T) {
	e := testEngine()
	now := fixedNow() // Monday
	today := domain.DayOf(now)

	gym, err := domain.NewUnavailableBlock("Gym", "", today.At(18, 0), today.At(19, 30),
		&domain.Recurrence{Type: domain.RecurrenceWeekly, Days: []time.Weekday{time.Monday}})
	require.NoError(t, err)

	threeWeeks := mkTask(t, "Three weeks out", time.Hour, today.AddDays(30).At(23, 59), domain.PriorityMedium, domain.CategoryWork)
	threeWeeks = threeWeeks.WithScheduledAt(today.AddDays(21).At(18, 15))

	fiveWeeks := mkTask(t, "Five weeks out", time.Hour, today.AddDays(40).At(23, 59), domain.PriorityMedium, domain.CategoryWork)
	fiveWeeks = fiveWeeks.WithScheduledAt(today.AddDays(35).At(18, 15))

	_, updated, cleared := e.AddBlockAndReschedule(gym, []domain.Task{threeWeeks, fiveWeeks}, nil, today, now)

	assert.Equal(t, 1, cleared)
	assert.False(t, updated[0].IsScheduled())
	assert.True(t, updated[1].IsScheduled())
}

func TestUtilization(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)

	assert.Zero(t, e.Utilization(domain.Timetable{}))

	// 17h window; 8.5 hours of task work is exactly half
	tt := domain.Timetable{
		{ID: uuid.New(), Type: domain.BlockTypeTask, Start: tomorrow.At(6, 0), End: tomorrow.At(14, 30)},
	}
	assert.InDelta(t, 50.0, e.Utilization(tt), 0.001)
}

func TestFreeSlots(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)

	tt := domain.Timetable{
		{ID: uuid.New(), Type: domain.BlockTypeUnavailable, Start: tomorrow.At(10, 0), End: tomorrow.At(11, 0)},
	}

	slots := e.FreeSlots(tt, tomorrow, time.Hour, now)
	require.Len(t, slots, 2)
	assert.Equal(t, tomorrow.At(6, 0), slots[0].Start)
	assert.Equal(t, tomorrow.At(10, 0), slots[0].End)
	assert.Equal(t, tomorrow.At(11, 0), slots[1].Start)
	assert.Equal(t, tomorrow.At(23, 0), slots[1].End)
}

func TestFreeSlots_MinDurationFilters(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	tomorrow := domain.DayOf(now).AddDays(1)

	tt := domain.Timetable{
		{ID: uuid.New(), Type: domain.BlockTypeUnavailable, Start: tomorrow.At(6, 30), End: tomorrow.At(22, 30)},
	}

	slots := e.FreeSlots(tt, tomorrow, time.Hour, now)
	assert.Empty(t, slots, "30 minute fragments fall below the one hour minimum")
}
