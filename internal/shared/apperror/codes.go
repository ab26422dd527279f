package apperror

const (
	// Client-side taxonomy
	CodeNetworkFailure     = "NETWORK_FAILURE"
	CodeValidationConflict = "VALIDATION_CONFLICT"
	CodeLocalValidation    = "LOCAL_VALIDATION"
	CodeNotFound           = "NOT_FOUND"

	// Client errors (4xx)
	CodeInvalidInput    = "INVALID_INPUT"
	CodeConflict        = "CONFLICT"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
