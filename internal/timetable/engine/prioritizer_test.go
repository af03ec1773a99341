package engine

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	e := testEngine()
	now := fixedNow()

	tests := []struct {
		name     string
		deadline time.Time
		duration time.Duration
		priority domain.Priority
		category domain.Category
		want     int
	}{
		{
			name:     "urgent high work",
			deadline: now.Add(2 * time.Hour),
			duration: 30 * time.Minute,
			priority: domain.PriorityHigh,
			category: domain.CategoryWork,
			want:     80 + 40 + 15,
		},
		{
			name:     "soon medium study with long penalty",
			deadline: now.Add(30 * time.Hour),
			duration: 150 * time.Minute,
			priority: domain.PriorityMedium,
			category: domain.CategoryStudy,
			want:     60 + 25 + 12 - 10,
		},
		{
			name:     "this week low leisure with very long penalty",
			deadline: now.Add(100 * time.Hour),
			duration: 200 * time.Minute,
			priority: domain.PriorityLow,
			category: domain.CategoryLeisure,
			want:     40 + 10 + 8 - 15,
		},
		{
			name:     "distant medium work",
			deadline: now.Add(300 * time.Hour),
			duration: time.Hour,
			priority: domain.PriorityMedium,
			category: domain.CategoryWork,
			want:     15 + 25 + 15,
		},
		{
			name:     "exactly two hours is not long",
			deadline: now.Add(300 * time.Hour),
			duration: 120 * time.Minute,
			priority: domain.PriorityMedium,
			category: domain.CategoryWork,
			want:     15 + 25 + 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := mkTask(t, "Scored", tt.duration, tt.deadline, tt.priority, tt.category)
			assert.Equal(t, tt.want, e.Score(task, now))
		})
	}
}

func TestOrderByScore_DescendingAndStable(t *testing.T) {
	e := testEngine()
	now := fixedNow()
	deadline := now.Add(300 * time.Hour)

	low := mkTask(t, "Low", time.Hour, deadline, domain.PriorityLow, domain.CategoryWork)
	highA := mkTask(t, "High A", time.Hour, deadline, domain.PriorityHigh, domain.CategoryWork)
	highB := mkTask(t, "High B", time.Hour, deadline, domain.PriorityHigh, domain.CategoryWork)

	ordered := e.OrderByScore([]domain.Task{low, highA, highB}, now)
	require.Len(t, ordered, 3)
	assert.Equal(t, "High A", ordered[0].Name)
	assert.Equal(t, "High B", ordered[1].Name, "ties keep input order")
	assert.Equal(t, "Low", ordered[2].Name)
}

func TestOrderByScore_DoesNotMutateInput(t *testing.T) {
	e := testEngine()
	now := fixedNow()

	low := mkTask(t, "Low", time.Hour, now.Add(time.Hour), domain.PriorityLow, domain.CategoryWork)
	high := mkTask(t, "High", time.Hour, now.Add(time.Hour), domain.PriorityHigh, domain.CategoryWork)

	input := []domain.Task{low, high}
	_ = e.OrderByScore(input, now)
	assert.Equal(t, "Low", input[0].Name)
}
