package apperror

import "net/http"

type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP converts any error into the status/code/message triple written by handlers.
// Errors that are not AppErrors become a generic 500.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if As(err, &appErr) && appErr.HTTPStatus != 0 {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}
	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
