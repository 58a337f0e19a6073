package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/punch/internal/event"
)

func TestAnomalies_CleanLog(t *testing.T) {
	events := []event.Event{
		at(event.In, 9, 0), at(event.Out, 9, 30),
		at(event.In, 13, 0),
	}
	assert.Empty(t, Anomalies(events))
}

func TestAnomalies_Reports(t *testing.T) {
	events := []event.Event{
		at(event.Out, 8, 0),
		at(event.In, 9, 0),
		at(event.In, 9, 45),
		at(event.Out, 9, 40),
	}

	got := Anomalies(events)
	require.Len(t, got, 3)

	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, ReasonOrphanOut, got[0].Reason)

	assert.Equal(t, 2, got[1].Index)
	assert.Equal(t, ReasonRepeatedIn, got[1].Reason)

	assert.Equal(t, 3, got[2].Index)
	assert.Equal(t, ReasonOutOfOrder, got[2].Reason)
}

func TestAnomaly_String(t *testing.T) {
	a := Anomaly{Index: 2, Event: at(event.In, 9, 45), Reason: ReasonRepeatedIn}
	assert.Equal(t, "record 3 (2024-03-04T09:45:00_I): repeated punch in", a.String())
}
