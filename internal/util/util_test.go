package util

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "shorter than limit", input: "Hello", n: 10, expected: "Hello"},
		{name: "exactly at limit", input: "Hello", n: 5, expected: "Hello"},
		{name: "longer than limit", input: "Hello World", n: 5, expected: "Hello..."},
		{name: "multibyte runes", input: "Свадьба в июне", n: 7, expected: "Свадьба..."},
		{name: "zero limit", input: "abc", n: 0, expected: "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TruncateText(tt.input, tt.n); got != tt.expected {
				t.Fatalf("TruncateText(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.expected)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 22, 15, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{name: "same day", date: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC), expected: 0},
		{name: "tomorrow morning", date: time.Date(2026, 6, 2, 1, 0, 0, 0, time.UTC), expected: 1},
		{name: "next month", date: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), expected: 30},
		{name: "already past", date: time.Date(2026, 5, 30, 12, 0, 0, 0, time.UTC), expected: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DaysUntil(now, tt.date); got != tt.expected {
				t.Fatalf("DaysUntil(%s) = %d, want %d", tt.date, got, tt.expected)
			}
		})
	}
}
