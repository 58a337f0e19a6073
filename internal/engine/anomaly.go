package engine

import (
	"fmt"

	"github.com/roach88/punch/internal/event"
)

// AnomalyReason categorizes a tolerated log violation.
type AnomalyReason string

const (
	// ReasonRepeatedIn is an In while a session was already open.
	ReasonRepeatedIn AnomalyReason = "repeated punch in"

	// ReasonOrphanOut is an Out with no open session.
	ReasonOrphanOut AnomalyReason = "punch out without punch in"

	// ReasonOutOfOrder is an event older than the one before it.
	ReasonOutOfOrder AnomalyReason = "timestamp earlier than previous event"
)

// Anomaly describes one event that Sessions ignores or that breaks ordering.
type Anomaly struct {
	// Index is the 0-based position of the event in the log.
	Index  int           `json:"index" yaml:"index"`
	Event  event.Event   `json:"event" yaml:"event"`
	Reason AnomalyReason `json:"reason" yaml:"reason"`
}

func (a Anomaly) String() string {
	return fmt.Sprintf("record %d (%s): %s", a.Index+1, event.MarshalLine(a.Event), a.Reason)
}

// Anomalies lists every violation of the log invariants: In and Out must
// alternate starting with In, and timestamps must not decrease.
func Anomalies(events []event.Event) []Anomaly {
	var anomalies []Anomaly
	inside := false
	for i, e := range events {
		if i > 0 && e.Timestamp.Before(events[i-1].Timestamp) {
			anomalies = append(anomalies, Anomaly{Index: i, Event: e, Reason: ReasonOutOfOrder})
		}
		switch e.Kind {
		case event.In:
			if inside {
				anomalies = append(anomalies, Anomaly{Index: i, Event: e, Reason: ReasonRepeatedIn})
			}
			inside = true
		case event.Out:
			if !inside {
				anomalies = append(anomalies, Anomaly{Index: i, Event: e, Reason: ReasonOrphanOut})
			}
			inside = false
		}
	}
	return anomalies
}
