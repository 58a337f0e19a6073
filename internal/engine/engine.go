package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/roach88/punch/internal/event"
)

// Log is the storage the engine reads and appends punches to.
type Log interface {
	Load(ctx context.Context) ([]event.Event, error)
	Append(ctx context.Context, e event.Event) error
}

// Engine records punches against a Log.
type Engine struct {
	log   Log
	clock Clock
}

// New creates an Engine. A nil clock defaults to SystemClock.
func New(log Log, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{log: log, clock: clock}
}

// Now returns the engine clock's current time in UTC.
func (e *Engine) Now() time.Time {
	return e.clock.Now().UTC()
}

// Events loads the full log.
func (e *Engine) Events(ctx context.Context) ([]event.Event, error) {
	return e.log.Load(ctx)
}

// PunchIn records an In at the current time.
// Returns a StateError with ErrCodeAlreadyPunchedIn if a session is open.
func (e *Engine) PunchIn(ctx context.Context) (event.Event, error) {
	return e.punch(ctx, event.In)
}

// PunchOut records an Out at the current time.
// Returns a StateError with ErrCodeAlreadyPunchedOut if no session is open.
func (e *Engine) PunchOut(ctx context.Context) (event.Event, error) {
	return e.punch(ctx, event.Out)
}

func (e *Engine) punch(ctx context.Context, kind event.Kind) (event.Event, error) {
	events, err := e.log.Load(ctx)
	if err != nil {
		return event.Event{}, err
	}

	state := CurrentState(events)
	if state == kind {
		if kind == event.In {
			return event.Event{}, NewAlreadyPunchedInError()
		}
		return event.Event{}, NewAlreadyPunchedOutError()
	}

	ev := event.New(kind, e.clock.Now())
	if n := len(events); n > 0 && ev.Timestamp.Before(events[n-1].Timestamp) {
		slog.Warn("clock is behind the last recorded punch",
			"last", events[n-1].Timestamp, "now", ev.Timestamp)
	}

	if err := e.log.Append(ctx, ev); err != nil {
		return event.Event{}, fmt.Errorf("record punch %s: %w", kind, err)
	}

	slog.Debug("punch recorded", "kind", kind, "timestamp", ev.Timestamp)
	return ev, nil
}
