package report

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/punch/internal/event"
)

func ts(month time.Month, day, hh, mm int) time.Time {
	return time.Date(2024, month, day, hh, mm, 0, 0, time.UTC)
}

func punch(kind event.Kind, t time.Time) event.Event {
	return event.New(kind, t)
}

// fixtureLog spans a month boundary, a week boundary, two midnights and ends
// punched in. 2024-03-04 is a Monday.
func fixtureLog() []event.Event {
	return []event.Event{
		punch(event.In, ts(time.February, 29, 22, 0)),
		punch(event.Out, ts(time.March, 1, 1, 30)),
		punch(event.In, ts(time.March, 1, 9, 0)),
		punch(event.Out, ts(time.March, 1, 12, 15)),
		punch(event.In, ts(time.March, 3, 23, 0)),
		punch(event.Out, ts(time.March, 4, 2, 0)),
		punch(event.In, ts(time.March, 4, 9, 0)),
		punch(event.Out, ts(time.March, 4, 9, 30)),
		punch(event.In, ts(time.March, 4, 13, 0)),
		punch(event.Out, ts(time.March, 4, 17, 38)),
		punch(event.In, ts(time.March, 6, 22, 30)),
		punch(event.Out, ts(time.March, 7, 1, 15)),
		punch(event.In, ts(time.March, 7, 8, 0)),
	}
}

// fixtureNow is 2h20m30s into the open session of fixtureLog.
var fixtureNow = time.Date(2024, time.March, 7, 10, 20, 30, 0, time.UTC)

// assertGolden compares rendered text, as printed with a trailing newline,
// against testdata/golden/{name}.golden.
func assertGolden(t *testing.T, name, rendered string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(rendered+"\n"))
}
