package paysliperrors

import (
	"net/http"

	"github.com/piyushraj0718/payrollmanagement/internal/shared/apperror"
)

var (
	ErrInvalidBasicSalary = apperror.New(
		apperror.CodeInvalidInput,
		"basic salary must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be between 1 and 9999",
		http.StatusBadRequest,
	)
	ErrEmployeeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id or employee_name is required",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to render payslip document",
		http.StatusInternalServerError,
	)
)
