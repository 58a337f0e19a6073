package store

import (
	"errors"
	"fmt"
)

// StorageError reports a log that exists but cannot be read, parsed or written.
type StorageError struct {
	// Path is the log file or database path.
	Path string

	// Line is the 1-based line (file backend) or seq (sqlite backend) of a
	// corrupt record. Zero when the failure is not tied to a record.
	Line int

	// Op is the operation that failed: "open", "load" or "append".
	Op string

	Err error
}

func (e *StorageError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s: record %d: %v", e.Op, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError returns true if err is or wraps a *StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
