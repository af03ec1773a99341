package domain

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTimeRange = errors.New("end time must be after start time")

// RecurrenceType determines how an unavailable block repeats.
type RecurrenceType string

const (
	RecurrenceDaily  RecurrenceType = "daily"
	RecurrenceWeekly RecurrenceType = "weekly"
)

// Recurrence describes a repeating rule with explicit per-date exceptions.
type Recurrence struct {
	Type       RecurrenceType
	Days       []time.Weekday // weekly only
	Exceptions []Day
}

// HasException reports whether the rule is suppressed on day.
func (r Recurrence) HasException(day Day) bool {
	return slices.Contains(r.Exceptions, day)
}

// AppliesOn reports whether the rule produces an occurrence on day.
func (r Recurrence) AppliesOn(day Day) bool {
	if r.HasException(day) {
		return false
	}
	switch r.Type {
	case RecurrenceDaily:
		return true
	case RecurrenceWeekly:
		return slices.Contains(r.Days, day.Weekday())
	default:
		return false
	}
}

// WithException returns a copy with day added to the exception set.
// Adding the same day twice is a no-op.
func (r Recurrence) WithException(day Day) Recurrence {
	c := r
	c.Days = slices.Clone(r.Days)
	c.Exceptions = slices.Clone(r.Exceptions)
	if !c.HasException(day) {
		c.Exceptions = append(c.Exceptions, day)
	}
	return c
}

// UnavailableBlock is a recurring or one-off busy window. StartTime and
// EndTime are a representative pair: their time-of-day is reused on every
// applicable day, and for one-off blocks the date component selects the
// single day the block applies to.
type UnavailableBlock struct {
	ID          uuid.UUID
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Recurrence  *Recurrence
}

// NewUnavailableBlock creates an unavailable block with a fresh identity.
func NewUnavailableBlock(title, description string, start, end time.Time, recurrence *Recurrence) (UnavailableBlock, error) {
	if !clockAfter(end, start) {
		return UnavailableBlock{}, ErrInvalidTimeRange
	}
	return UnavailableBlock{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		StartTime:   start,
		EndTime:     end,
		Recurrence:  recurrence,
	}, nil
}

// clockAfter reports whether a's time-of-day is strictly after b's.
func clockAfter(a, b time.Time) bool {
	am := a.Hour()*60 + a.Minute()
	bm := b.Hour()*60 + b.Minute()
	return am > bm
}

// IsRecurring reports whether the block has a recurrence rule.
func (b UnavailableBlock) IsRecurring() bool {
	return b.Recurrence != nil
}

// AppliesOn decides whether the block occupies time on day: one-off blocks
// apply only on their own calendar date, recurring blocks follow their rule
// minus exceptions.
func (b UnavailableBlock) AppliesOn(day Day) bool {
	if b.Recurrence == nil {
		return DayOf(b.StartTime) == day
	}
	return b.Recurrence.AppliesOn(day)
}

// OccurrenceOn materializes the busy window for day by combining day's date
// with the block's time-of-day. Callers must check AppliesOn first.
func (b UnavailableBlock) OccurrenceOn(day Day) TimeRange {
	return TimeRange{
		Start: day.AtClockOf(b.StartTime),
		End:   day.AtClockOf(b.EndTime),
	}
}

// AddException returns a copy with day suppressed from the recurrence.
// Non-recurring blocks are returned unchanged.
func (b UnavailableBlock) AddException(day Day) UnavailableBlock {
	if b.Recurrence == nil {
		return b
	}
	c := b
	r := b.Recurrence.WithException(day)
	c.Recurrence = &r
	return c
}
