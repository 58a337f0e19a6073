package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/punch/internal/config"
	"github.com/roach88/punch/internal/engine"
	"github.com/roach88/punch/internal/store"
)

// Exit codes for CLI commands.
const (
	ExitSuccess = 0 // Successful execution
	ExitFailure = 1 // Punch state conflict (already in, already out, nothing recorded)
	ExitUsage   = 2 // Bad arguments or flags
	ExitStorage = 3 // Log unreadable or corrupt, or configuration error
)

// Error codes reported alongside the message. State errors use their own
// engine.StateErrorCode.
const (
	CodeUsage   = "USAGE_ERROR"
	CodeStorage = "STORAGE_ERROR"
	CodeConfig  = "CONFIG_ERROR"
	CodeUnknown = "ERROR"
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message (optional when Err is set)
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Message
	}
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// UsageError reports invalid arguments, flags or subcommands.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError returns a UsageError carrying ExitUsage.
func NewUsageError(format string, args ...any) *ExitError {
	return WrapExitError(ExitUsage, "", &UsageError{Message: fmt.Sprintf(format, args...)})
}

// classify maps domain errors onto exit codes. Errors that already carry an
// exit code pass through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	switch {
	case engine.IsStateError(err):
		return WrapExitError(ExitFailure, "", err)
	case store.IsStorageError(err):
		return WrapExitError(ExitStorage, "", err)
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, config.ErrLoadConfig):
		return WrapExitError(ExitStorage, "", err)
	default:
		return WrapExitError(ExitFailure, "", err)
	}
}

// errorCode returns the short code printed with err.
func errorCode(err error) string {
	var se *engine.StateError
	var ue *UsageError
	switch {
	case errors.As(err, &se):
		return string(se.Code)
	case errors.As(err, &ue):
		return CodeUsage
	case store.IsStorageError(err):
		return CodeStorage
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, config.ErrLoadConfig):
		return CodeConfig
	default:
		return CodeUnknown
	}
}

// errorMessage returns the human-readable part of err without its code prefix.
func errorMessage(err error) string {
	var se *engine.StateError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

// OutputFormatter handles text, JSON and YAML output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Destination for errors (defaults to Writer)
}

// CLIResponse is the standard structured response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status" yaml:"status"`                   // "ok" or "error"
	Data   any       `json:"data,omitempty" yaml:"data,omitempty"`   // success payload
	Error  *CLIError `json:"error,omitempty" yaml:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code" yaml:"code"`                           // "ALREADY_PUNCHED_IN", "STORAGE_ERROR", etc.
	Message string `json:"message" yaml:"message"`                     // human-readable message
	Details any    `json:"details,omitempty" yaml:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	return f.write(f.Writer, CLIResponse{Status: "ok", Data: data}, func() {
		fmt.Fprintln(f.Writer, data)
	})
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	w := f.GetErrWriter()
	resp := CLIResponse{
		Status: "error",
		Error: &CLIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	return f.write(w, resp, func() {
		fmt.Fprintf(w, "Error [%s]: %s\n", code, message)
		if details != nil {
			fmt.Fprintf(w, "%v\n", details)
		}
	})
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

func (f *OutputFormatter) write(w io.Writer, resp CLIResponse, text func()) error {
	switch f.Format {
	case "json":
		return json.NewEncoder(w).Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	default:
		text()
		return nil
	}
}
