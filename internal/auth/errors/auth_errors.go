package autherrors

import (
	"net/http"

	"github.com/piyushraj0718/payrollmanagement/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username, password, or organization",
		http.StatusUnauthorized,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodePasswordMismatch,
		"Passwords do not match",
		http.StatusBadRequest,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username already exists. Please choose another",
		http.StatusConflict,
	)
	ErrMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"Please fill in all fields",
		http.StatusBadRequest,
	)
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrIncompleteClaims = apperror.New(
		apperror.CodeUnauthorized,
		"Token is missing user or organization",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token expired",
		http.StatusUnauthorized,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user id",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
