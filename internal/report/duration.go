// Package report turns the punch log into the time card views: the last
// session, and per-day totals for the current week or month.
package report

import (
	"fmt"
	"time"
)

// FormatDuration renders d as "HHhMMm". Hours are not capped at 24 and
// partial minutes are truncated. Negative durations render as "00h00m".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%02dh%02dm", minutes/60, minutes%60)
}

// timestampLayout renders instants on the card. The zone is always UTC.
const timestampLayout = "2006-01-02 15:04:05"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout) + " UTC"
}
