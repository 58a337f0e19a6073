// Package event defines punch events and the line format they are persisted in.
package event

import (
	"fmt"
	"time"
)

// Kind is the direction of a punch.
type Kind string

const (
	In  Kind = "in"
	Out Kind = "out"
)

// Marker returns the single-letter token written to the log ("I" or "O").
func (k Kind) Marker() string {
	switch k {
	case In:
		return "I"
	case Out:
		return "O"
	default:
		return "?"
	}
}

// Valid reports whether k is In or Out.
func (k Kind) Valid() bool {
	return k == In || k == Out
}

// KindFromMarker parses a log marker back into a Kind.
func KindFromMarker(marker string) (Kind, error) {
	switch marker {
	case "I":
		return In, nil
	case "O":
		return Out, nil
	default:
		return "", fmt.Errorf("unknown punch kind %q", marker)
	}
}

// Event is a single recorded punch.
// Timestamps are UTC with second precision so they survive the log format unchanged.
type Event struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Kind      Kind      `json:"kind" yaml:"kind"`
}

// New builds an event at t, normalized to UTC and truncated to the second.
func New(kind Kind, t time.Time) Event {
	return Event{Timestamp: t.UTC().Truncate(time.Second), Kind: kind}
}
