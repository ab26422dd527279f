package apperror

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code       string // Error code (e.g., VALIDATION_CONFLICT)
	Message    string // User-friendly message
	HTTPStatus int    // HTTP status code, 0 when no response was received
	Err        error  // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the code of the outermost AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsNetworkFailure reports whether the remote service could not be used at all:
// transport errors and 5xx responses.
func IsNetworkFailure(err error) bool {
	switch CodeOf(err) {
	case CodeNetworkFailure, CodeServiceUnavailable:
		return true
	}
	return false
}

func IsValidationConflict(err error) bool {
	return CodeOf(err) == CodeValidationConflict
}

func IsLocalValidation(err error) bool {
	return CodeOf(err) == CodeLocalValidation
}

func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}
