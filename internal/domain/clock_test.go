package domain

import (
	"testing"
	"time"
)

func TestValidClockTime(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"14:00", true},
		{"23:59", true},
		{"24:00", false},
		{"23:60", false},
		{"9:30", false},
		{"09:3", false},
		{"0930", false},
		{"soon", false},
		{"", false},
		{"09:30:00", false},
	}

	for _, tt := range tests {
		if got := ValidClockTime(tt.value); got != tt.valid {
			t.Errorf("ValidClockTime(%q) = %v, want %v", tt.value, got, tt.valid)
		}
	}
}

func TestFormatClock(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 5, 59, 0, time.UTC)
	if got := FormatClock(at); got != "09:05" {
		t.Errorf("FormatClock() = %q, want 09:05", got)
	}
}
