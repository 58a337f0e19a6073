package report

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/roach88/punch/internal/engine"
	"github.com/roach88/punch/internal/event"
)

// Period is the calendar range a summary covers, always ending at now.
type Period string

const (
	// Week starts Monday 00:00 UTC.
	Week Period = "week"

	// Month starts on day 1 at 00:00 UTC.
	Month Period = "month"
)

// Start returns the UTC instant the period containing now begins.
func (p Period) Start(now time.Time) time.Time {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch p {
	case Month:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		sinceMonday := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -sinceMonday)
	}
}

// DailyTotal is the time worked on one UTC calendar day.
type DailyTotal struct {
	Date     string `json:"date" yaml:"date"`
	Duration string `json:"duration" yaml:"duration"`
	Seconds  int64  `json:"seconds" yaml:"seconds"`
}

// Summary is the per-day breakdown of a period.
type Summary struct {
	Period       Period       `json:"period" yaml:"period"`
	From         time.Time    `json:"from" yaml:"from"`
	To           time.Time    `json:"to" yaml:"to"`
	Days         []DailyTotal `json:"days" yaml:"days"`
	Total        string       `json:"total" yaml:"total"`
	TotalSeconds int64        `json:"total_seconds" yaml:"total_seconds"`
}

// Summarize totals every session overlapping [period start, now] by UTC day.
// Sessions are clipped to the window and split at midnight, so a session
// crossing midnight counts toward both days by its actual overlap.
// Open sessions count up to now. Days without time are omitted.
func Summarize(events []event.Event, p Period, now time.Time) Summary {
	now = now.UTC()
	from := p.Start(now)

	perDay := make(map[time.Time]time.Duration)
	var total time.Duration
	for s := range engine.Sessions(events, now) {
		start := maxTime(s.Start, from)
		end := minTime(s.End, now)

		for cursor := start; cursor.Before(end); {
			day := midnight(cursor)
			pieceEnd := minTime(end, day.AddDate(0, 0, 1))
			d := pieceEnd.Sub(cursor)
			perDay[day] += d
			total += d
			cursor = pieceEnd
		}
	}

	days := make([]time.Time, 0, len(perDay))
	for day, d := range perDay {
		if d > 0 {
			days = append(days, day)
		}
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	summary := Summary{
		Period:       p,
		From:         from,
		To:           now,
		Days:         make([]DailyTotal, 0, len(days)),
		Total:        FormatDuration(total),
		TotalSeconds: int64(total / time.Second),
	}
	for _, day := range days {
		d := perDay[day]
		summary.Days = append(summary.Days, DailyTotal{
			Date:     day.Format(time.DateOnly),
			Duration: FormatDuration(d),
			Seconds:  int64(d / time.Second),
		})
	}
	return summary
}

// String renders one "YYYY-MM-DD: HHhMMm" line per day, a blank line, and the total.
func (s Summary) String() string {
	var b strings.Builder
	for _, d := range s.Days {
		fmt.Fprintf(&b, "%s: %s\n", d.Date, d.Duration)
	}
	if len(s.Days) > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total: %s", s.Total)
	return b.String()
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
