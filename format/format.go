// Package format renders durations, showtimes and release dates for display.
package format

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

const clockLayout = "3:04 PM"

// Runtime renders a duration in minutes as "<h>h <m>m". Negative input is
// clamped to zero.
func Runtime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// ClockTime renders an RFC 3339 timestamp as a 12-hour clock time in the
// local zone.
func ClockTime(iso string) (string, error) {
	return ClockTimeIn(iso, time.Local)
}

func ClockTimeIn(iso string, loc *time.Location) (string, error) {
	value := strings.TrimSpace(iso)
	if value == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidTimestamp, iso, err)
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(clockLayout), nil
}

// ReleaseYear returns the year of a YYYY-MM-DD date, or "" when it cannot be
// parsed.
func ReleaseYear(date string) string {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(date))
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d", t.Year())
}
