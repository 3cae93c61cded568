package employeeerrors

import (
	"net/http"

	"github.com/piyushraj0718/payrollmanagement/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee name is required",
		http.StatusBadRequest,
	)
	ErrDepartmentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Department is required",
		http.StatusBadRequest,
	)
	ErrInvalidBasicSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Basic salary must be greater than zero",
		http.StatusBadRequest,
	)
	ErrEmployeeConflict = apperror.New(
		apperror.CodeConflict,
		"Employee already exists",
		http.StatusConflict,
	)
)
