// Package engine computes conflict-free daily timetables. Every operation
// is a pure function over its explicit inputs: the caller passes value
// snapshots plus a reference "now" and gets new values back. The engine
// retains no state between calls and provides no locking; callers that
// invoke it from concurrent control flows must serialize access.
package engine

import (
	"log/slog"
	"slices"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
)

// Engine places tasks, inserts breaks, and applies single-task moves.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an engine with the given policy.
func New(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Config returns the engine's policy.
func (e *Engine) Config() Config {
	return e.cfg
}

// GenerateTimetable produces the full timetable for one calendar day:
// fixed busy intervals, eligible tasks placed by score, then recovery
// breaks. Days before now's day yield an empty timetable. The result is
// deterministic for fixed inputs; even block IDs are derived from content.
func (e *Engine) GenerateTimetable(day domain.Day, tasks []domain.Task, blocks []domain.UnavailableBlock, now time.Time) domain.Timetable {
	if day.Before(domain.DayOf(now)) {
		e.logger.Debug("refusing to generate for past day", "day", day.String())
		return domain.Timetable{}
	}

	tt := e.BusyBlocks(day, tasks, blocks, now)
	eligible := e.EligibleTasks(day, tasks, now)
	ordered := e.OrderByScore(eligible, now)
	tt = e.placeTasks(tt, ordered, day, now)
	tt = e.InsertBreaks(tt)

	out := tt.SortedByStart()
	e.logger.Debug("timetable generated",
		"day", day.String(),
		"blocks", len(out),
		"eligible", len(eligible),
	)
	return out
}

// AddBlockAndReschedule simulates adding an unavailable block: tasks whose
// placement collides with any occurrence of the block over a bounded
// lookahead lose their placement, then the day's timetable is regenerated
// with the block in force. It returns the regenerated timetable, the
// updated task snapshots, and how many tasks lost their placement.
func (e *Engine) AddBlockAndReschedule(
	block domain.UnavailableBlock,
	tasks []domain.Task,
	blocks []domain.UnavailableBlock,
	day domain.Day,
	now time.Time,
) (domain.Timetable, []domain.Task, int) {
	days := e.occurrenceDays(block, domain.DayOf(now))

	updated := slices.Clone(tasks)
	cleared := 0
	for i, t := range updated {
		if t.Completed || t.ScheduledAt == nil {
			continue
		}
		placed := domain.TimeRange{Start: *t.ScheduledAt, End: t.ScheduledAt.Add(t.Duration)}
		for _, d := range days {
			if !block.AppliesOn(d) {
				continue
			}
			if block.OccurrenceOn(d).Overlaps(placed) {
				updated[i] = t.WithoutSchedule()
				cleared++
				break
			}
		}
	}

	all := append(slices.Clone(blocks), block)
	tt := e.GenerateTimetable(day, updated, all, now)

	e.logger.Debug("block added and rescheduled",
		"block", block.ID.String(),
		"cleared", cleared,
		"day", day.String(),
	)
	return tt, updated, cleared
}

// occurrenceDays bounds the conflict-clearing horizon: a one-off block has
// exactly its own date, daily recurrence looks 7 days ahead, weekly 4 weeks.
func (e *Engine) occurrenceDays(block domain.UnavailableBlock, from domain.Day) []domain.Day {
	if !block.IsRecurring() {
		return []domain.Day{domain.DayOf(block.StartTime)}
	}

	horizon := e.cfg.DailyLookaheadDays
	if block.Recurrence.Type == domain.RecurrenceWeekly {
		horizon = e.cfg.WeeklyLookaheadDays
	}

	days := make([]domain.Day, 0, horizon)
	for i := 0; i < horizon; i++ {
		days = append(days, from.AddDays(i))
	}
	return days
}

// blockID derives a stable identity from block content so repeated
// generation with identical inputs yields identical output.
func blockID(parts ...string) uuid.UUID {
	name := ""
	for _, p := range parts {
		name += p + "/"
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("dayplan/"+name))
}

// taskBlockID identifies a task placement.
func taskBlockID(taskID uuid.UUID, start time.Time) uuid.UUID {
	return blockID("task", taskID.String(), start.Format(time.RFC3339))
}

// occurrenceBlockID identifies one occurrence of an unavailable block.
func occurrenceBlockID(id uuid.UUID, day domain.Day) uuid.UUID {
	return blockID("unavailable", id.String(), day.String())
}

// breakBlockID identifies an inserted break.
func breakBlockID(kind string, start time.Time) uuid.UUID {
	return blockID("break", kind, start.Format(time.RFC3339))
}

// ceilGranules returns how many whole granules cover d.
func ceilGranules(d, granule time.Duration) int {
	n := int(d / granule)
	if d%granule != 0 {
		n++
	}
	return n
}

// roundUpToGranule rounds t up to the next granule boundary of the day.
func roundUpToGranule(t time.Time, granule time.Duration) time.Time {
	day := domain.DayOf(t)
	offset := t.Sub(day.Time())
	rounded := (offset / granule) * granule
	if rounded < offset {
		rounded += granule
	}
	return day.Time().Add(rounded)
}

// Utilization returns the share of the working window occupied by task
// blocks, as a percentage.
func (e *Engine) Utilization(tt domain.Timetable) float64 {
	window := e.cfg.DayEnd - e.cfg.DayStart
	if window <= 0 {
		return 0
	}
	var scheduled time.Duration
	for _, b := range tt {
		if b.Type == domain.BlockTypeTask {
			scheduled += b.Duration()
		}
	}
	return float64(scheduled) / float64(window) * 100
}

// FreeSlots returns the gaps of at least minDuration between blocks inside
// the day's working window. When day is today the window starts no earlier
// than now.
func (e *Engine) FreeSlots(tt domain.Timetable, day domain.Day, minDuration time.Duration, now time.Time) []domain.TimeRange {
	windowStart := day.Time().Add(e.cfg.DayStart)
	windowEnd := day.Time().Add(e.cfg.DayEnd)
	if day == domain.DayOf(now) && now.After(windowStart) {
		windowStart = roundUpToGranule(now, e.cfg.Granule)
	}
	if !windowStart.Before(windowEnd) {
		return nil
	}

	slots := make([]domain.TimeRange, 0)
	cursor := windowStart
	for _, b := range tt.SortedByStart() {
		if !b.End.After(cursor) {
			continue
		}
		if b.Start.After(cursor) {
			end := b.Start
			if end.After(windowEnd) {
				end = windowEnd
			}
			if end.Sub(cursor) >= minDuration {
				slots = append(slots, domain.TimeRange{Start: cursor, End: end})
			}
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
		if !cursor.Before(windowEnd) {
			return slots
		}
	}
	if windowEnd.Sub(cursor) >= minDuration {
		slots = append(slots, domain.TimeRange{Start: cursor, End: windowEnd})
	}
	return slots
}
