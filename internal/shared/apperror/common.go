package apperror

import "net/http"

// ErrInternal is what clients see for any error that is not an *AppError.
var ErrInternal = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)

// RequiredField reports a missing request field by its human readable name.
func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", http.StatusBadRequest)
}

// InvalidField reports a request field that failed a validation rule.
func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", http.StatusBadRequest)
}
