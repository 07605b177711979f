package domain

import (
	"regexp"
	"time"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidClockTime reports whether s is a zero-padded "HH:MM" in 24h time.
func ValidClockTime(s string) bool {
	return clockPattern.MatchString(s)
}

// FormatClock formats t as zero-padded "HH:MM" in its own location.
// This is the format reminder due times are compared against.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
