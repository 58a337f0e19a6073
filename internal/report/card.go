package report

import (
	"fmt"
	"time"

	"github.com/roach88/punch/internal/engine"
	"github.com/roach88/punch/internal/event"
)

// Card describes the most recent session.
type Card struct {
	Start    time.Time `json:"start" yaml:"start"`
	End      time.Time `json:"end" yaml:"end"`
	Open     bool      `json:"open" yaml:"open"`
	Duration string    `json:"duration" yaml:"duration"`
	Seconds  int64     `json:"seconds" yaml:"seconds"`
}

// LastSession builds the card for the most recent session. An open session
// is measured up to now. Fails with engine.ErrCodeNoPunches when the log
// holds no session.
func LastSession(events []event.Event, now time.Time) (Card, error) {
	s, ok := engine.LastSession(events, now)
	if !ok {
		return Card{}, engine.NewNoPunchesError()
	}

	d := s.Duration()
	return Card{
		Start:    s.Start,
		End:      s.End,
		Open:     s.Open,
		Duration: FormatDuration(d),
		Seconds:  int64(d / time.Second),
	}, nil
}

// String renders the card as a single line of text.
func (c Card) String() string {
	if c.Open {
		return fmt.Sprintf("Punched in since %s (%s)", formatTimestamp(c.Start), c.Duration)
	}
	return fmt.Sprintf("Previously punched in between %s and %s (%s)",
		formatTimestamp(c.Start), formatTimestamp(c.End), c.Duration)
}
