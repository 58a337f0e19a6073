package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/punch/internal/event"
)

// FileLog stores events one per line, e.g. "2024-03-04T09:00:00_I".
type FileLog struct {
	path string
}

// OpenFile returns a FileLog for path. The file and its directory are created
// on the first Append.
func OpenFile(path string) *FileLog {
	return &FileLog{path: path}
}

// Path returns the log file path.
func (l *FileLog) Path() string {
	return l.path
}

// Load reads and parses the whole log.
func (l *FileLog) Load(ctx context.Context) ([]event.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Path: l.path, Op: "load", Err: err}
	}
	defer f.Close()

	var events []event.Event
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := event.ParseLine(line)
		if err != nil {
			return nil, &StorageError{Path: l.path, Line: lineNo, Op: "load", Err: err}
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, &StorageError{Path: l.path, Op: "load", Err: err}
	}

	return events, nil
}

// Append loads the log, adds e, and replaces the file atomically.
func (l *FileLog) Append(ctx context.Context, e event.Event) error {
	events, err := l.Load(ctx)
	if err != nil {
		return err
	}
	events = append(events, e)

	if err := l.write(events); err != nil {
		return &StorageError{Path: l.path, Op: "append", Err: err}
	}
	return nil
}

// Close is a no-op; the file is only held open during Load and Append.
func (l *FileLog) Close() error {
	return nil
}

// write replaces the log with events via a temp file in the same directory,
// so a crash leaves either the old or the new log, never a partial one.
func (l *FileLog) write(events []event.Event) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(l.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	w := bufio.NewWriter(tmp)
	for _, e := range events {
		if _, err := w.WriteString(event.MarshalLine(e) + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("write temp file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, l.path); err != nil {
		return fmt.Errorf("replace log: %w", err)
	}
	return nil
}
