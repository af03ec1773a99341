package domain

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var ErrTimetableOverlap = errors.New("timetable contains overlapping blocks")

// TimeRange represents a time period with start and end.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps checks if two time ranges overlap. The test is strict: ranges
// that merely touch do not overlap.
func (t TimeRange) Overlaps(other TimeRange) bool {
	return t.Start.Before(other.End) && other.Start.Before(t.End)
}

// Duration returns the duration of the time range.
func (t TimeRange) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// BlockType represents the type of timetable entry.
type BlockType string

const (
	BlockTypeTask        BlockType = "task"
	BlockTypeBreak       BlockType = "break"
	BlockTypeUnavailable BlockType = "unavailable"
)

// TimeBlock is an entry in a generated timetable. Task blocks carry a
// snapshot of the task at placement time with ScheduledAt set to the block
// start; unavailable blocks are fixed and never auto-moved.
type TimeBlock struct {
	ID          uuid.UUID
	Type        BlockType
	TaskID      uuid.UUID // uuid.Nil unless Type is BlockTypeTask
	Task        *Task
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Fixed       bool
}

// Range returns the block's time range.
func (b TimeBlock) Range() TimeRange {
	return TimeRange{Start: b.Start, End: b.End}
}

// Duration returns the block duration.
func (b TimeBlock) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Overlaps checks if this block overlaps with another.
func (b TimeBlock) Overlaps(other TimeBlock) bool {
	return b.Range().Overlaps(other.Range())
}

// Timetable is the ordered output of one generation or reschedule call.
type Timetable []TimeBlock

// SortedByStart returns a copy sorted by start time. Blocks with equal
// start keep their relative order.
func (tt Timetable) SortedByStart() Timetable {
	out := make(Timetable, len(tt))
	copy(out, tt)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// ConflictsWith reports whether r overlaps any block other than exclude.
func (tt Timetable) ConflictsWith(r TimeRange, exclude uuid.UUID) bool {
	for _, b := range tt {
		if b.ID == exclude {
			continue
		}
		if b.Range().Overlaps(r) {
			return true
		}
	}
	return false
}

// FindByTask returns the task block for taskID, if present.
func (tt Timetable) FindByTask(taskID uuid.UUID) (TimeBlock, bool) {
	for _, b := range tt {
		if b.Type == BlockTypeTask && b.TaskID == taskID {
			return b, true
		}
	}
	return TimeBlock{}, false
}

// TaskBlocks returns the task entries sorted by start time.
func (tt Timetable) TaskBlocks() []TimeBlock {
	out := make([]TimeBlock, 0, len(tt))
	for _, b := range tt.SortedByStart() {
		if b.Type == BlockTypeTask {
			out = append(out, b)
		}
	}
	return out
}

// Validate checks the no-overlap invariant across all block pairs.
func (tt Timetable) Validate() error {
	sorted := tt.SortedByStart()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Overlaps(sorted[i]) {
			return ErrTimetableOverlap
		}
	}
	return nil
}
