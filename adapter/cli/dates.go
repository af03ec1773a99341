package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
)

// ParseDayArg resolves a user-supplied date argument. It accepts "today",
// "tomorrow", and YYYY-MM-DD.
func ParseDayArg(s string) (domain.Day, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return domain.DayOf(time.Now()), nil
	case "tomorrow":
		return domain.DayOf(time.Now()).AddDays(1), nil
	}
	return domain.ParseDay(s)
}

// ParseClockOn resolves an HH:MM argument to a concrete time on the given day.
func ParseClockOn(day domain.Day, s string) (time.Time, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid time %q (use HH:MM)", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minute in %q", s)
	}
	return day.At(hour, minute), nil
}
