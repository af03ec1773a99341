package engine

import (
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/google/uuid"
)

// RescheduleTask applies a single explicit move of one task against an
// existing timetable. The move is minimal and localized: no re-allocation,
// no break insertion. When the task is not in the timetable, or the new
// interval collides with any other block, the input is returned unchanged;
// the caller detects rejection by comparing before and after.
func (e *Engine) RescheduleTask(taskID uuid.UUID, newStart time.Time, tt domain.Timetable) domain.Timetable {
	idx := -1
	for i, b := range tt {
		if b.Type == domain.BlockTypeTask && b.TaskID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.logger.Debug("reschedule: task not in timetable", "task", taskID.String())
		return tt
	}

	current := tt[idx]
	newEnd := newStart.Add(current.Duration())
	if tt.ConflictsWith(domain.TimeRange{Start: newStart, End: newEnd}, current.ID) {
		e.logger.Debug("reschedule: conflict at new time",
			"task", taskID.String(),
			"new_start", newStart.Format(time.RFC3339),
		)
		return tt
	}

	out := make(domain.Timetable, len(tt))
	copy(out, tt)

	moved := current
	moved.ID = taskBlockID(taskID, newStart)
	moved.Start = newStart
	moved.End = newEnd
	if current.Task != nil {
		snap := current.Task.WithScheduledAt(newStart)
		moved.Task = &snap
	}
	out[idx] = moved

	return out
}
