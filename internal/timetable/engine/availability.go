package engine

import (
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
)

// BusyBlocks expands the fixed busy intervals for day: every applicable
// unavailable-block occurrence, plus every still-valid task placement on
// that day. A placement on today whose start is at or before now is stale
// and is left out; the eligibility filter will re-place it instead.
// Overlaps among the caller's own unavailable blocks are not deduplicated;
// the data is taken as given.
func (e *Engine) BusyBlocks(day domain.Day, tasks []domain.Task, blocks []domain.UnavailableBlock, now time.Time) domain.Timetable {
	tt := make(domain.Timetable, 0, len(blocks)+len(tasks))

	for _, b := range blocks {
		if !b.AppliesOn(day) {
			continue
		}
		occ := b.OccurrenceOn(day)
		tt = append(tt, domain.TimeBlock{
			ID:          occurrenceBlockID(b.ID, day),
			Type:        domain.BlockTypeUnavailable,
			Title:       b.Title,
			Description: b.Description,
			Start:       occ.Start,
			End:         occ.End,
			Fixed:       true,
		})
	}

	today := domain.DayOf(now)
	for _, t := range tasks {
		if t.Completed || t.ScheduledAt == nil {
			continue
		}
		if domain.DayOf(*t.ScheduledAt) != day {
			continue
		}
		if day == today && !t.ScheduledAt.After(now) {
			// stale placement, must be re-placed rather than kept fixed
			continue
		}
		tt = append(tt, newTaskBlock(t, *t.ScheduledAt))
	}

	return tt
}

// newTaskBlock builds a task block carrying a snapshot placed at start.
func newTaskBlock(t domain.Task, start time.Time) domain.TimeBlock {
	snap := t.WithScheduledAt(start)
	return domain.TimeBlock{
		ID:     taskBlockID(t.ID, start),
		Type:   domain.BlockTypeTask,
		TaskID: t.ID,
		Task:   &snap,
		Title:  t.Name,
		Start:  start,
		End:    start.Add(t.Duration),
	}
}
