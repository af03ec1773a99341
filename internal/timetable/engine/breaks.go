package engine

import (
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
)

// break kinds, in the order they are considered for a pair of tasks.
const (
	breakLong  = "Extended Break"
	breakRest  = "Rest Break"
	breakShort = "Short Break"
)

// InsertBreaks post-processes the placed task blocks and inserts recovery
// breaks into the gaps between consecutive tasks. One pass over the task
// blocks in start order:
//
//   - an extended break (30m) when continuous work reached the focus limit
//     and the gap allows it; inserting one resets continuous work;
//   - a rest break (15m) when both neighbors are intensive;
//   - a short break (15m) after any task of 45 minutes or more.
//
// A break is only inserted when it fits entirely before the next task and
// does not collide with anything else in the timetable. A natural gap of an
// hour or more resets continuous work whether or not a break was inserted.
func (e *Engine) InsertBreaks(tt domain.Timetable) domain.Timetable {
	taskBlocks := tt.TaskBlocks()
	if len(taskBlocks) < 2 {
		return tt
	}

	var focus time.Duration
	for i := 0; i < len(taskBlocks)-1; i++ {
		cur, next := taskBlocks[i], taskBlocks[i+1]
		focus += cur.Duration()

		gap := next.Start.Sub(cur.End)
		if gap > 0 {
			kind, length := e.chooseBreak(cur, next, gap, focus)
			if kind != "" {
				breakEnd := cur.End.Add(length)
				r := domain.TimeRange{Start: cur.End, End: breakEnd}
				if !breakEnd.After(next.Start) && !tt.ConflictsWith(r, uuid.Nil) {
					tt = append(tt, domain.TimeBlock{
						ID:    breakBlockID(kind, cur.End),
						Type:  domain.BlockTypeBreak,
						Title: kind,
						Start: cur.End,
						End:   breakEnd,
					})
					if kind == breakLong {
						focus = 0
					}
				}
			}
			if gap >= e.cfg.NaturalResetGap {
				focus = 0
			}
		}
	}

	return tt
}

// chooseBreak picks the break warranted by a pair of adjacent tasks, if
// any. Extended wins over rest, rest over short.
func (e *Engine) chooseBreak(cur, next domain.TimeBlock, gap, focus time.Duration) (string, time.Duration) {
	intensive := cur.Task != nil && next.Task != nil &&
		cur.Task.IsIntensive() && next.Task.IsIntensive()

	switch {
	case focus >= e.cfg.LongBreakFocus && gap >= e.cfg.LongBreak:
		return breakLong, e.cfg.LongBreak
	case intensive && gap >= e.cfg.RestBreak:
		return breakRest, e.cfg.RestBreak
	case cur.Duration() >= e.cfg.ShortBreakMinWork && gap >= e.cfg.ShortBreak:
		return breakShort, e.cfg.ShortBreak
	default:
		return "", 0
	}
}
