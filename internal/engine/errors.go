package engine

import (
	"errors"
	"fmt"
)

// StateError reports a punch that conflicts with the current punch state,
// or a report requested before anything was recorded.
type StateError struct {
	// Code identifies the error category.
	Code StateErrorCode

	// Message is a human-readable description.
	Message string
}

// StateErrorCode categorizes state errors.
type StateErrorCode string

const (
	// ErrCodeAlreadyPunchedIn indicates punch in while a session is open.
	ErrCodeAlreadyPunchedIn StateErrorCode = "ALREADY_PUNCHED_IN"

	// ErrCodeAlreadyPunchedOut indicates punch out with no open session.
	ErrCodeAlreadyPunchedOut StateErrorCode = "ALREADY_PUNCHED_OUT"

	// ErrCodeNoPunches indicates the log holds no session to report on.
	ErrCodeNoPunches StateErrorCode = "NO_PUNCHES"
)

// Error implements the error interface.
func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsStateError returns true if err is or wraps a *StateError.
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}

// HasCode returns true if err is a *StateError with the given code.
func HasCode(err error, code StateErrorCode) bool {
	var se *StateError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// NewAlreadyPunchedInError creates a StateError for a repeated punch in.
func NewAlreadyPunchedInError() *StateError {
	return &StateError{
		Code:    ErrCodeAlreadyPunchedIn,
		Message: "already punched in, punch out first",
	}
}

// NewAlreadyPunchedOutError creates a StateError for a repeated punch out.
func NewAlreadyPunchedOutError() *StateError {
	return &StateError{
		Code:    ErrCodeAlreadyPunchedOut,
		Message: "already punched out, punch in first",
	}
}

// NewNoPunchesError creates a StateError for reports on an empty log.
func NewNoPunchesError() *StateError {
	return &StateError{
		Code:    ErrCodeNoPunches,
		Message: "no data in log, punch in first",
	}
}
