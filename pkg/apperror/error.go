package apperror

import "net/http"

// Error codes returned in the errorCode field of error responses.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeDatabase     = "DATABASE_ERROR"
)

// AppError carries the HTTP status and error code for a classified failure.
// The wrapped Err is for server-side logs only and is never serialized.
type AppError struct {
	Status    int      `json:"-"`
	ErrorCode string   `json:"errorCode"`
	Message   string   `json:"error"`
	Errors    []string `json:"errors,omitempty"`
	Err       error    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:    status,
		ErrorCode: code,
		Message:   message,
		Err:       err,
	}
}

// Validation is a 400 for malformed input or a business-rule violation.
// Detail messages end up in the errors list of the response.
func Validation(message string, errs ...string) *AppError {
	e := New(http.StatusBadRequest, CodeValidation, message, nil)
	e.Errors = errs
	return e
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, CodeForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, CodeNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, CodeConflict, message, nil)
}

// Database wraps an unclassified store failure. The original error is kept
// for logging; clients only ever see the generic message.
func Database(err error) *AppError {
	return New(http.StatusInternalServerError, CodeDatabase, "Database operation failed", err)
}
