package contacterrors

import (
	"net/http"

	"github.com/piyushraj0718/payrollmanagement/internal/shared/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"name, email and message are required",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"please enter a valid email address",
		http.StatusBadRequest,
	)
	ErrMessageTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"message must be at most 1000 characters",
		http.StatusBadRequest,
	)
)
