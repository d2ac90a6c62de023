package model

import (
	"fmt"
	"time"
)

// ClockLayout is the wall-clock format events are stored in.
const ClockLayout = "15:04"

// FormatClock renders a timestamp as a zero-padded HH:MM string.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ValidClock reports whether s is a well-formed zero-padded 24-hour HH:MM
// string. The length check matters: time.Parse accepts "9:00", which would
// break the lexicographic ordering invariant.
func ValidClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// ParseClock returns the hour and minute components of an HH:MM string.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}
