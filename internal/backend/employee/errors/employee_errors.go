package employeeerrors

import (
	"go-workforce/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same ID already exists",
		http.StatusConflict,
	)
	ErrEmployeeEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
)
