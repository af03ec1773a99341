package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", d.String())
	assert.Equal(t, time.Monday, d.Weekday())

	tests := []string{"", "tomorrow", "2026-3-2x", "02.03.2026"}
	for _, s := range tests {
		_, err := ParseDay(s)
		assert.ErrorIs(t, err, ErrInvalidDay, "input %q", s)
	}
}

func TestDayOf_TruncatesTimeOfDay(t *testing.T) {
	morning := time.Date(2026, time.March, 2, 6, 0, 0, 0, time.Local)
	evening := time.Date(2026, time.March, 2, 23, 59, 59, 0, time.Local)
	assert.Equal(t, DayOf(morning), DayOf(evening))
}

func TestDay_AddDaysRollsOver(t *testing.T) {
	d, err := ParseDay("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", d.AddDays(1).String())
	assert.Equal(t, "2026-02-27", d.AddDays(-1).String())

	endOfYear, err := ParseDay("2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2027-01-01", endOfYear.AddDays(1).String())
}

func TestDay_Ordering(t *testing.T) {
	a, _ := ParseDay("2026-03-02")
	b, _ := ParseDay("2026-03-03")
	c, _ := ParseDay("2027-01-01")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, b.Before(c))
	assert.False(t, a.Before(a))
	assert.False(t, a.After(a))
}

func TestDay_At(t *testing.T) {
	d, _ := ParseDay("2026-03-02")
	at := d.At(14, 30)
	assert.Equal(t, 14, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.Equal(t, d, DayOf(at))
}

func TestDay_AtClockOf(t *testing.T) {
	d, _ := ParseDay("2026-03-02")
	src := time.Date(1999, time.July, 4, 9, 45, 12, 0, time.Local)

	at := d.AtClockOf(src)
	assert.Equal(t, d, DayOf(at))
	assert.Equal(t, 9, at.Hour())
	assert.Equal(t, 45, at.Minute())
}

func TestDay_IsZero(t *testing.T) {
	assert.True(t, Day{}.IsZero())
	d, _ := ParseDay("2026-03-02")
	assert.False(t, d.IsZero())
}
