// Package persistence implements the timetable repositories for SQLite
// (local default) and PostgreSQL.
package persistence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
)

// encodeWeekdays renders weekday numbers as a comma list ("1,3,5").
func encodeWeekdays(days []time.Weekday) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(int(d)))
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(s string) ([]time.Weekday, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 6 {
			return nil, fmt.Errorf("invalid weekday %q", p)
		}
		days = append(days, time.Weekday(n))
	}
	return days, nil
}

// encodeDays renders exception dates as a comma list of YYYY-MM-DD strings.
func encodeDays(days []domain.Day) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ",")
}

func decodeDays(s string) ([]domain.Day, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]domain.Day, 0, len(parts))
	for _, p := range parts {
		d, err := domain.ParseDay(p)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}
