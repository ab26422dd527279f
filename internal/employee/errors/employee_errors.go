package employeeerrors

import (
	"go-workforce/internal/shared/apperror"
	"net/http"
)

const (
	// MsgCreateFailed deliberately does not tell the precise backend refusal apart.
	MsgCreateFailed = "Failed. ID or Email must be unique."
	MsgDeleteFailed = "Deletion failed"
	MsgCreated      = "Employee created"
	MsgDeleted      = "Record deleted"
	PromptDelete    = "Delete this employee record?"
)

var (
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeLocalValidation,
		"Missing required fields",
		http.StatusBadRequest,
	)
	ErrNoEmployeeSelected = apperror.New(
		apperror.CodeLocalValidation,
		"Select an employee first",
		http.StatusBadRequest,
	)
)
