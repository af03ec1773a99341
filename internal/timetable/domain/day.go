package domain

import (
	"errors"
	"time"
)

var ErrInvalidDay = errors.New("invalid day format, expected YYYY-MM-DD")

// dayFormat is the canonical date-only representation.
const dayFormat = "2006-01-02"

// Day is a calendar day in naive local time. Every date-only comparison in
// the planner goes through this type so that time-of-day truncation happens
// in exactly one place.
type Day struct {
	year  int
	month time.Month
	day   int
}

// DayOf returns the calendar day containing t.
func DayOf(t time.Time) Day {
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(dayFormat, s, time.Local)
	if err != nil {
		return Day{}, ErrInvalidDay
	}
	return DayOf(t), nil
}

// Time returns midnight local time at the start of the day.
func (d Day) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.Local)
}

// At returns the instant at hour:min on this day.
func (d Day) At(hour, min int) time.Time {
	return time.Date(d.year, d.month, d.day, hour, min, 0, 0, time.Local)
}

// AtClockOf combines this day's date with t's time-of-day.
func (d Day) AtClockOf(t time.Time) time.Time {
	return time.Date(d.year, d.month, d.day, t.Hour(), t.Minute(), t.Second(), 0, time.Local)
}

// AddDays returns the day n days later (or earlier for negative n).
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d is strictly before other.
func (d Day) Before(other Day) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// After reports whether d is strictly after other.
func (d Day) After(other Day) bool {
	return other.Before(d)
}

// IsZero reports whether d is the zero value.
func (d Day) IsZero() bool {
	return d == Day{}
}

// String returns the YYYY-MM-DD representation.
func (d Day) String() string {
	return d.Time().Format(dayFormat)
}
