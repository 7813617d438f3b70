package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/govalues/positive"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (negative result, division by zero, invalid operand, etc.)
	ExitCommandError = 2 // Command error (unknown operator, missing argument, invalid flag, etc.)
)

// Error codes reported in CLI responses.
const (
	ErrCodeUsage        = "E001" // Invalid command usage
	ErrCodeInvalidValue = "E002" // Operand is not a decimal number
	ErrCodeOutOfBounds  = "E003" // Operand is negative or too large
	ErrCodeArithmetic   = "E004" // Operation has no non-negative result
	ErrCodeConversion   = "E005" // Value does not fit the target type
	ErrCodePrecision    = "E006" // Invalid number of decimal places
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code     int    // Exit code (use ExitFailure or ExitCommandError)
	Message  string // Error message
	Err      error  // Underlying error (optional)
	Reported bool   // The command has already written the error to its output
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
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
// Commands report their own failures as ExitError, so any other error
// comes from cobra's argument validation and yields ExitCommandError (2).
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// errUsage marks errors caused by invalid command usage rather than by the values involved.
var errUsage = errors.New("invalid usage")

func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// errorCode maps an error to the CLI error code of its kind.
func errorCode(err error) string {
	switch {
	case errors.Is(err, positive.ErrInvalidValue):
		return ErrCodeInvalidValue
	case errors.Is(err, positive.ErrOutOfBounds):
		return ErrCodeOutOfBounds
	case errors.Is(err, positive.ErrArithmetic):
		return ErrCodeArithmetic
	case errors.Is(err, positive.ErrConversion):
		return ErrCodeConversion
	case errors.Is(err, positive.ErrInvalidPrecision):
		return ErrCodePrecision
	}
	return ErrCodeUsage
}

// fail reports err through the formatter and returns it with the matching exit code.
// If the report cannot be written, the returned error is left unreported
// so that Execute falls back to stderr.
func fail(f *OutputFormatter, err error) error {
	code := errorCode(err)
	exit := ExitFailure
	if code == ErrCodeUsage {
		exit = ExitCommandError
	}
	if werr := f.Error(code, err.Error(), nil); werr != nil {
		return &ExitError{Code: exit, Message: code, Err: errors.Join(err, werr)}
	}
	return &ExitError{Code: exit, Message: code, Err: err, Reported: true}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for text errors (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
// JSON errors go to Writer so that the response stays machine-readable;
// text errors go to ErrWriter.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	w := f.GetErrWriter()
	if _, err := fmt.Fprintf(w, "Error [%s]: %s\n", code, message); err != nil {
		return err
	}
	if f.Verbose && details != nil {
		_, err := fmt.Fprintf(w, "Details: %v\n", details)
		return err
	}
	return nil
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

func newFormatter(opts *RootOptions, out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   opts.Verbose,
	}
}
