package dto

// APIError represents a structured error response.
// All error responses from the API use this format for consistency.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes
const (
	ErrCodeNotFound      = "not_found"
	ErrCodeBadRequest    = "bad_request"
	ErrCodeInternalError = "internal_error"
	ErrCodeValidation    = "validation_error"
	ErrCodeResourceLimit = "resource_limit_exceeded"
)

// NewAPIError creates a new APIError with the given code and message.
func NewAPIError(code, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
	}
}

// NotFoundError creates a not found error response.
func NotFoundError(resource string) APIError {
	return NewAPIError(ErrCodeNotFound, resource+" not found")
}

// BadRequestError creates a bad request error response.
func BadRequestError(message string) APIError {
	return NewAPIError(ErrCodeBadRequest, message)
}

// InternalError creates an internal server error response.
func InternalError() APIError {
	return NewAPIError(ErrCodeInternalError, "an internal error occurred")
}

// ResourceLimitError reports that the solve refused to run because the
// input magnitude exceeds the configured table ceiling.
func ResourceLimitError(message string) APIError {
	return NewAPIError(ErrCodeResourceLimit, message)
}

// EchoedInputs carries the raw request fields back for redisplay.
type EchoedInputs struct {
	Items     string `json:"items"`
	Target    string `json:"target"`
	Tolerance string `json:"tolerance"`
}

// ValidationFailure rejects a whole request and echoes the original inputs
// so the client can put them back in the form for correction. Distinct from
// an infeasible solve, which is a successful outcome.
type ValidationFailure struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Inputs  EchoedInputs `json:"inputs"`
}

// NewValidationFailure creates a validation failure response.
func NewValidationFailure(message string, inputs EchoedInputs) ValidationFailure {
	return ValidationFailure{
		Code:    ErrCodeValidation,
		Message: message,
		Inputs:  inputs,
	}
}
