package engine

import (
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
)

// placeTasks appends task blocks to tt, one task at a time in the given
// order. Placement is greedy and single-pass: a later task never displaces
// an earlier placement, and a task with no feasible run is simply absent
// from the result.
func (e *Engine) placeTasks(tt domain.Timetable, tasks []domain.Task, day domain.Day, now time.Time) domain.Timetable {
	windowStart := day.Time().Add(e.cfg.DayStart)
	windowEnd := day.Time().Add(e.cfg.DayEnd)

	if day == domain.DayOf(now) && now.After(windowStart) {
		windowStart = roundUpToGranule(now.Add(e.cfg.LeadTime), e.cfg.Granule)
	}
	if !windowStart.Before(windowEnd) {
		return tt
	}

	granules := int(windowEnd.Sub(windowStart) / e.cfg.Granule)
	busy := make([]bool, granules)
	markBusy := func(r domain.TimeRange) {
		for i := 0; i < granules; i++ {
			gStart := windowStart.Add(time.Duration(i) * e.cfg.Granule)
			g := domain.TimeRange{Start: gStart, End: gStart.Add(e.cfg.Granule)}
			if g.Overlaps(r) {
				busy[i] = true
			}
		}
	}
	for _, b := range tt {
		markBusy(b.Range())
	}

	// Continuous work accumulated across placements since the last
	// qualifying gap, and where the previous task ended.
	var focus time.Duration
	var lastEnd time.Time

	for _, t := range tasks {
		needed := ceilGranules(t.Duration, e.cfg.Granule)
		if needed == 0 || needed > granules {
			continue
		}

		placedAt, ok := e.findRun(tt, busy, windowStart, windowEnd, needed, t.Duration, focus, lastEnd)
		if !ok {
			e.logger.Debug("no feasible slot", "task", t.ID.String(), "day", day.String())
			continue
		}

		block := newTaskBlock(t, placedAt)
		tt = append(tt, block)
		markBusy(block.Range())

		focus += t.Duration
		if focus > e.cfg.FocusLimit {
			focus = 0
		}
		lastEnd = block.End
	}

	return tt
}

// findRun scans granules left to right for the first run of `needed`
// consecutive free granules whose end stays inside the window, re-verifies
// the run against every existing block, and enforces the recovery-gap rule
// for accumulated continuous work.
func (e *Engine) findRun(
	tt domain.Timetable,
	busy []bool,
	windowStart, windowEnd time.Time,
	needed int,
	duration time.Duration,
	focus time.Duration,
	lastEnd time.Time,
) (time.Time, bool) {
scan:
	for i := 0; i+needed <= len(busy); i++ {
		for j := i; j < i+needed; j++ {
			if busy[j] {
				continue scan
			}
		}

		start := windowStart.Add(time.Duration(i) * e.cfg.Granule)
		end := start.Add(duration)
		if end.After(windowEnd) {
			return time.Time{}, false
		}

		// Granule marking rounds block edges outward; check the exact
		// interval against every block as well.
		if tt.ConflictsWith(domain.TimeRange{Start: start, End: end}, uuid.Nil) {
			continue
		}

		if focus >= e.cfg.FocusLimit && !lastEnd.IsZero() {
			required := e.cfg.MinGap
			if focus >= e.cfg.RecoveryFocus {
				required = e.cfg.RecoveryGap
			}
			if start.Sub(lastEnd) < required {
				continue
			}
		}

		return start, true
	}
	return time.Time{}, false
}
