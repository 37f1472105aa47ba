package errors

import "fmt"

// ErrorCode identifies an application error class independent of transport.
type ErrorCode string

const (
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrForbidden          ErrorCode = "FORBIDDEN"
	ErrUnauthorized       ErrorCode = "UNAUTHORIZED"

	// ErrPreconditionNotMet marks "not ready yet" outcomes: schedule
	// generation with zero availability, tally with zero votes. Callers
	// surface these as non-fatal results, never as failures.
	ErrPreconditionNotMet ErrorCode = "PRECONDITION_NOT_MET"

	// ErrExternalService marks best-effort collaborator failures
	// (email dispatch, calendar publishing).
	ErrExternalService ErrorCode = "EXTERNAL_SERVICE_FAILURE"
)

// AppError carries an error class, a user-visible message and the cause.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
