package attendanceerrors

import (
	"go-workforce/internal/shared/apperror"
	"net/http"
)

// MsgMarkFailed is shown when the backend refuses without a message of its own.
const MsgMarkFailed = "Failed"

var (
	ErrNoEmployeeSelected = apperror.New(
		apperror.CodeLocalValidation,
		"Select an employee first",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeLocalValidation,
		"Select a valid date (YYYY-MM-DD)",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeLocalValidation,
		"Status must be Present or Absent",
		http.StatusBadRequest,
	)
)
