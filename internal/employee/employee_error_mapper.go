package employee

import (
	"errors"

	employeeerrors "github.com/piyushraj0718/payrollmanagement/internal/employee/errors"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes the employees table can raise.
var pgStateErrors = map[string]*apperror.AppError{
	"23505": employeeerrors.ErrEmployeeConflict,  // unique violation
	"22P02": employeeerrors.ErrInvalidEmployeeID, // malformed uuid literal
}

// mapRepositoryError translates storage errors into client facing ones and
// keeps the original as the cause for logging.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgStateErrors[pgErr.Code]; ok {
			return mapped.WithErr(err)
		}
	}
	return err
}
