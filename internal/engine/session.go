package engine

import (
	"iter"
	"time"

	"github.com/roach88/punch/internal/event"
)

// Session is one work interval derived from the log.
// Open sessions have no Out yet; End is the "now" they were evaluated at.
type Session struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
	Open  bool      `json:"open" yaml:"open"`
}

// Duration returns End - Start, or zero if End precedes Start.
func (s Session) Duration() time.Duration {
	if s.End.Before(s.Start) {
		return 0
	}
	return s.End.Sub(s.Start)
}

// Overlap returns the part of s that falls inside [from, to).
func (s Session) Overlap(from, to time.Time) time.Duration {
	start, end := s.Start, s.End
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// CurrentState returns the kind of the last event, or Out for an empty log.
func CurrentState(events []event.Event) event.Kind {
	if len(events) == 0 {
		return event.Out
	}
	return events[len(events)-1].Kind
}

// Sessions pairs each In with the following Out. The sequence is computed
// lazily on each iteration and can be ranged over any number of times.
// A trailing In produces an open session ending at now.
func Sessions(events []event.Event, now time.Time) iter.Seq[Session] {
	return func(yield func(Session) bool) {
		var (
			start  time.Time
			inside bool
		)
		for _, e := range events {
			switch e.Kind {
			case event.In:
				if inside {
					continue
				}
				start, inside = e.Timestamp, true
			case event.Out:
				if !inside {
					continue
				}
				inside = false
				if !yield(Session{Start: start, End: e.Timestamp}) {
					return
				}
			}
		}
		if inside {
			yield(Session{Start: start, End: now, Open: true})
		}
	}
}

// LastSession returns the most recent session, if any.
func LastSession(events []event.Event, now time.Time) (Session, bool) {
	var (
		last  Session
		found bool
	)
	for s := range Sessions(events, now) {
		last, found = s, true
	}
	return last, found
}
