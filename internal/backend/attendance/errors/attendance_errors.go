package attendanceerrors

import (
	"go-workforce/internal/shared/apperror"
	"net/http"
)

var (
	ErrAttendanceAlreadyMarked = apperror.New(
		apperror.CodeConflict,
		"Attendance already marked for this date",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Employee does not exist",
		http.StatusBadRequest,
	)
)
