package apperror

import "fmt"

// AppError is the error type services return to handlers. Code and
// HTTPStatus drive the response envelope, Err stays server side.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any
	Err        error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches copies produced by WithErr/WithDetails against the sentinel
// they were derived from.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || t == nil {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message && e.HTTPStatus == t.HTTPStatus
}

// WithErr returns a copy of e carrying cause. Sentinels are never mutated.
func (e *AppError) WithErr(cause error) *AppError {
	cp := *e
	cp.Err = cause
	return &cp
}

// WithDetails returns a copy of e whose details are sent to the client.
func (e *AppError) WithDetails(details any) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}
