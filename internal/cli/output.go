package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go-workforce/internal/notify"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The action ran and failed or was rejected
	ExitCommandError = 2 // Bad flags or configuration
)

// ExitError carries the process exit code. An empty Message means the
// failure was already shown to the user.
type ExitError struct {
	Code    int
	Message string
	Err     error
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

// errReported ends a command whose failure is already in the output.
var errReported = &ExitError{Code: ExitFailure}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported reports whether err needs no further printing.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Message == "" && exitErr.Err == nil
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the JSON document printed for every command in json format.
type Response struct {
	Status        string                `json:"status"` // "ok", "aborted" or "error"
	Data          any                   `json:"data,omitempty"`
	Notifications []notify.Notification `json:"notifications,omitempty"`
	Error         *ResponseError        `json:"error,omitempty"`
}

type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (f *OutputFormatter) JSON() bool {
	return f.Format == "json"
}

// Success prints data. text renders it in text mode and may be nil.
func (f *OutputFormatter) Success(data any, notes []notify.Notification, text func(w io.Writer) error) error {
	if f.JSON() {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data, Notifications: notes})
	}
	if text == nil {
		return nil
	}
	return text(f.Writer)
}

func (f *OutputFormatter) Aborted(notes []notify.Notification) error {
	if f.JSON() {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "aborted", Notifications: notes})
	}
	_, err := fmt.Fprintln(f.Writer, "Aborted")
	return err
}

// Error prints the failure in json mode; in text mode the notification line
// already carried it.
func (f *OutputFormatter) Error(code, message string, notes []notify.Notification) error {
	if !f.JSON() {
		return nil
	}
	return json.NewEncoder(f.Writer).Encode(Response{
		Status:        "error",
		Notifications: notes,
		Error:         &ResponseError{Code: code, Message: message},
	})
}
