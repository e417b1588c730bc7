package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"xdao.co/rinchi/model"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Encoding or lookup failed (adapter error, bad identifier, missing CID, ...)
	ExitCommandError = 2 // Command error (bad flags, unreadable input, invalid config, ...)
)

// ExitError represents an error with a specific exit code.
// Commands that already reported the failure through an OutputFormatter set
// Reported so main does not print it twice.
type ExitError struct {
	Code     int
	Message  string
	Err      error
	Reported bool
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

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Errors that are not ExitErrors come from cobra itself (unknown flag,
// wrong arity) and map to ExitCommandError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// IsReported reports whether err was already written to the user.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Text-mode errors go here (defaults to Writer)
}

// CLIResponse is the JSON envelope of every command.
type CLIResponse struct {
	Status string            `json:"status"` // "ok" or "error"
	Data   any               `json:"data,omitempty"`
	Error  *model.CodedError `json:"error,omitempty"`
}

// Success writes data as JSON, or text verbatim in text mode.
func (f *OutputFormatter) Success(data any, text string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}
	_, err := io.WriteString(f.Writer, text)
	return err
}

// Fail reports err and returns an ExitError carrying code.
func (f *OutputFormatter) Fail(code int, err error) error {
	ce := model.AsCodedError(err)
	if f.Format == "json" {
		_ = json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "error", Error: ce})
	} else {
		fmt.Fprintf(f.errWriter(), "Error [%s]: %s\n", ce.Code, ce.Message)
	}
	return &ExitError{Code: code, Message: string(ce.Code), Err: err, Reported: true}
}

func (f *OutputFormatter) errWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
