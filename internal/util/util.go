package util

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const ellipsis = "..."

// TruncateText shortens s to n runes followed by "...". Strings of at most n runes are returned unchanged.
func TruncateText(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)

	return string(runes[:n]) + ellipsis
}

// DaysUntil returns the number of whole calendar days from now until date,
// comparing dates in now's location. It is negative once the date has passed.
func DaysUntil(now, date time.Time) int {
	loc := now.Location()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	d := date.In(loc)
	to := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)

	// Round absorbs the 23h/25h days around DST changes.
	return int(to.Sub(from).Round(24*time.Hour) / (24 * time.Hour))
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
