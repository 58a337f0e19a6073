package testutil

import (
	"context"
	"slices"
	"sync"

	"github.com/roach88/punch/internal/event"
)

// MemoryLog is an in-memory store.Log.
//
// LoadErr and AppendErr, when set, are returned by the corresponding method
// to simulate storage failures.
type MemoryLog struct {
	mu     sync.Mutex
	events []event.Event

	LoadErr   error
	AppendErr error
}

// NewMemoryLog creates a log pre-filled with events.
func NewMemoryLog(events ...event.Event) *MemoryLog {
	return &MemoryLog{events: slices.Clone(events)}
}

// Load returns a copy of the stored events.
func (l *MemoryLog) Load(ctx context.Context) ([]event.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.LoadErr != nil {
		return nil, l.LoadErr
	}
	return slices.Clone(l.events), nil
}

// Append stores e unless AppendErr is set.
func (l *MemoryLog) Append(ctx context.Context, e event.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.AppendErr != nil {
		return l.AppendErr
	}
	l.events = append(l.events, e)
	return nil
}

// Close is a no-op.
func (l *MemoryLog) Close() error {
	return nil
}

// Events returns a copy of the stored events without going through Load.
func (l *MemoryLog) Events() []event.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.events)
}
