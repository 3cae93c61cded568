package attendanceerrors

import (
	"net/http"

	"github.com/piyushraj0718/payrollmanagement/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found in the database",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Year must be between 1 and 9999 and month between 1 and 12",
		http.StatusBadRequest,
	)
	ErrDateOutsideMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Present dates must fall inside the selected month",
		http.StatusBadRequest,
	)
	ErrSundayPresence = apperror.New(
		apperror.CodeInvalidInput,
		"Sunday is not a working day",
		http.StatusBadRequest,
	)
)
