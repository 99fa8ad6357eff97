package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeanfide/jadwalin/internal/constants"
)

// ParseClock parses a zero-padded 24-hour "HH:MM" string into minutes from
// midnight.
func ParseClock(timeStr string) (int, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a "YYYY-MM-DD" date string.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDate renders a date as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today returns the current date truncated to midnight.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ISOWeekdayIndex maps Go's Sunday-first weekday onto the ISO ordering used
// by the directory (0=Monday .. 6=Sunday).
func ISOWeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekdayLabel returns the canonical Indonesian weekday label for a date.
func WeekdayLabel(t time.Time) string {
	return constants.Weekdays[ISOWeekdayIndex(t)]
}

// ParseWeekdayLabel resolves an Indonesian weekday label (case-insensitive)
// to its ISO index. The boolean is false for unknown labels.
func ParseWeekdayLabel(label string) (int, bool) {
	for i, name := range constants.Weekdays {
		if strings.EqualFold(name, strings.TrimSpace(label)) {
			return i, true
		}
	}
	return 0, false
}

// NthWeekday converts a (weekday label, week number, month, year) combination
// into the concrete date of the week-number'th occurrence of that weekday in
// the month. The boolean is false when the label is unknown or the month has
// no such occurrence (e.g. the fifth Friday of a four-Friday month).
func NthWeekday(label string, week, month, year int) (time.Time, bool) {
	target, ok := ParseWeekdayLabel(label)
	if !ok {
		return time.Time{}, false
	}
	if week < 1 || month < 1 || month > 12 {
		return time.Time{}, false
	}

	count := 0
	d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	for d.Month() == time.Month(month) {
		if ISOWeekdayIndex(d) == target {
			count++
			if count == week {
				return d, true
			}
		}
		d = d.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}
