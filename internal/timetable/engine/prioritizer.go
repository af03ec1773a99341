package engine

import (
	"sort"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
)

// Score rates a task's placement urgency. Higher scores are placed first.
// The weights are policy (see ScoringConfig), not a physical law.
func (e *Engine) Score(t domain.Task, now time.Time) int {
	s := e.cfg.Scoring

	untilDeadline := t.Deadline.Sub(now)
	urgency := s.DistantWeight
	switch {
	case untilDeadline <= s.UrgentWindow:
		urgency = s.UrgentWeight
	case untilDeadline <= s.SoonWindow:
		urgency = s.SoonWeight
	case untilDeadline <= s.WeekWindow:
		urgency = s.WeekWeight
	}

	penalty := 0
	switch {
	case t.Duration > s.VeryLongTask:
		penalty = s.VeryLongPenalty
	case t.Duration > s.LongTask:
		penalty = s.LongPenalty
	}

	return urgency + t.Priority.Weight() + t.Category.Weight() - penalty
}

// OrderByScore returns the tasks in descending score order. The sort is
// stable: equal scores keep their input order.
func (e *Engine) OrderByScore(tasks []domain.Task, now time.Time) []domain.Task {
	ordered := make([]domain.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return e.Score(ordered[i], now) > e.Score(ordered[j], now)
	})
	return ordered
}
