package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/punch/internal/event"
)

// backends lists every Log implementation so behavioral tests run against each.
var backends = []struct {
	name string
	open func(t *testing.T, dir string) Log
}{
	{
		name: BackendFile,
		open: func(t *testing.T, dir string) Log {
			return OpenFile(filepath.Join(dir, "punch.log"))
		},
	},
	{
		name: BackendSQLite,
		open: func(t *testing.T, dir string) Log {
			l, err := OpenSQLite(context.Background(), filepath.Join(dir, "punch.db"))
			require.NoError(t, err)
			return l
		},
	},
}

// openTestLog opens a backend in a fresh temp dir and closes it on cleanup.
func openTestLog(t *testing.T, open func(t *testing.T, dir string) Log) Log {
	t.Helper()
	l := open(t, t.TempDir())
	t.Cleanup(func() { l.Close() })
	return l
}

// at returns an event on 2024-03-04 at hh:mm UTC.
func at(kind event.Kind, hh, mm int) event.Event {
	return event.Event{Timestamp: time.Date(2024, 3, 4, hh, mm, 0, 0, time.UTC), Kind: kind}
}
