package store

import (
	"context"
	"fmt"

	"github.com/roach88/punch/internal/event"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// ValidBackends lists the accepted backend names.
var ValidBackends = []string{BackendFile, BackendSQLite}

// Log is an append-only, ordered sequence of punch events.
type Log interface {
	// Load returns every event in append order. Empty when nothing was recorded yet.
	Load(ctx context.Context) ([]event.Event, error)

	// Append adds e to the end of the log and persists it before returning.
	Append(ctx context.Context, e event.Event) error

	Close() error
}

// Options selects and locates a backend.
type Options struct {
	Backend string
	Path    string
}

// Open returns the Log for opts.Backend rooted at opts.Path.
func Open(ctx context.Context, opts Options) (Log, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("open store: empty path")
	}

	switch opts.Backend {
	case BackendFile, "":
		return OpenFile(opts.Path), nil
	case BackendSQLite:
		l, err := OpenSQLite(ctx, opts.Path)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, fmt.Errorf("open store: unknown backend %q: must be one of %v", opts.Backend, ValidBackends)
	}
}
