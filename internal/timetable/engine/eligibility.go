package engine

import (
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
)

// EligibleTasks selects the tasks that need placement (or re-placement)
// on day, judged against now. All comparisons are at day granularity
// except staleness, which compares instants.
//
// A scheduled task is eligible when its placement is stale (scheduled on
// day, which is today, at or before now) or when its placement lies on a
// past day and must be carried forward. A valid placement on day is left
// to the availability builder; a placement on another future day belongs
// to that day's run.
//
// An unscheduled task is eligible when it is overdue (deadline day before
// today, always carried so it keeps making forward progress) or when its
// deadline day is on or after day.
func (e *Engine) EligibleTasks(day domain.Day, tasks []domain.Task, now time.Time) []domain.Task {
	today := domain.DayOf(now)
	if day.Before(today) {
		return nil
	}

	eligible := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			continue
		}

		if t.ScheduledAt != nil {
			scheduledDay := domain.DayOf(*t.ScheduledAt)
			switch {
			case scheduledDay == day:
				stale := day == today && !t.ScheduledAt.After(now)
				if stale {
					eligible = append(eligible, t)
				}
			case scheduledDay.Before(today):
				eligible = append(eligible, t)
			}
			continue
		}

		deadlineDay := domain.DayOf(t.Deadline)
		if deadlineDay.Before(today) {
			eligible = append(eligible, t)
			continue
		}
		if !deadlineDay.Before(day) {
			eligible = append(eligible, t)
		}
	}
	return eligible
}
