package payslip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/attendance"
	"github.com/piyushraj0718/payrollmanagement/internal/employee"
	paysliperrors "github.com/piyushraj0718/payrollmanagement/internal/payslip/errors"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/calendar"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeReader is the subset of the employee repository used here.
type EmployeeReader interface {
	FindByIDAndOrganization(ctx context.Context, organization, id string) (*employee.Employee, error)
	FindByNameAndOrganization(ctx context.Context, organization, name string) (*employee.Employee, error)
}

// AttendanceReader loads the stored attendance rows of one employee for a date range.
type AttendanceReader interface {
	FindByEmployeeBetween(ctx context.Context, employeeID string, from, to calendar.Date) ([]attendance.Attendance, error)
}

// Service computes payslips for employees of an organization. The render
// methods return the file body and its download name.
type Service interface {
	Generate(ctx context.Context, organization string, req PayslipRequest) (PayslipResponse, error)
	RenderPDF(ctx context.Context, organization string, req PayslipRequest) ([]byte, string, error)
	ExportXLSX(ctx context.Context, organization string, req PayslipRequest) ([]byte, string, error)
}

type service struct {
	employees   EmployeeReader
	attendances AttendanceReader
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(employees EmployeeReader, attendances AttendanceReader, logger ...*zap.Logger) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{employees: employees, attendances: attendances, now: time.Now, logger: l}
}

func (s *service) findEmployee(ctx context.Context, organization string, req PayslipRequest) (*employee.Employee, error) {
	id := strings.TrimSpace(req.EmployeeID)
	name := strings.TrimSpace(req.EmployeeName)

	var (
		empl *employee.Employee
		err  error
	)
	switch {
	case id != "":
		if _, perr := uuid.Parse(id); perr != nil {
			return nil, paysliperrors.ErrInvalidEmployeeID
		}
		empl, err = s.employees.FindByIDAndOrganization(ctx, organization, id)
	case name != "":
		empl, err = s.employees.FindByNameAndOrganization(ctx, organization, name)
	default:
		return nil, paysliperrors.ErrEmployeeRequired
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, paysliperrors.ErrEmployeeNotFound
	}
	return empl, err
}

// compute loads the employee and the month's attendance and runs the calculator.
// A missing year or month falls back to the current one.
func (s *service) compute(ctx context.Context, organization string, req PayslipRequest) (*employee.Employee, Result, error) {
	today := s.now()
	if req.Year == 0 {
		req.Year = today.Year()
	}
	if req.Month == 0 {
		req.Month = int(today.Month())
	}
	if !calendar.ValidMonth(req.Year, req.Month) {
		if req.Month < 1 || req.Month > 12 {
			return nil, Result{}, paysliperrors.ErrInvalidMonth
		}
		return nil, Result{}, paysliperrors.ErrInvalidYear
	}

	empl, err := s.findEmployee(ctx, organization, req)
	if err != nil {
		return nil, Result{}, err
	}

	first, last := calendar.MonthRange(req.Year, time.Month(req.Month))
	rows, err := s.attendances.FindByEmployeeBetween(ctx, empl.ID.String(), first, last)
	if err != nil {
		s.logger.Error("load attendance failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return nil, Result{}, err
	}

	res, err := Compute(Input{
		BasicSalary: empl.BasicSalary,
		Presence:    attendance.PresenceMap(rows),
		Year:        req.Year,
		Month:       req.Month,
		Today:       today,
	})
	if err != nil {
		return nil, Result{}, err
	}

	if res.PenaltyApplied() {
		s.logger.Info("attendance penalty applied",
			zap.String("employee_id", empl.ID.String()),
			zap.String("period", fmt.Sprintf("%04d-%02d", req.Year, req.Month)),
			zap.String("penalty", res.Penalty.StringFixed(2)),
		)
	}
	return empl, res, nil
}

func (s *service) Generate(ctx context.Context, organization string, req PayslipRequest) (PayslipResponse, error) {
	empl, res, err := s.compute(ctx, organization, req)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapToResponse(empl, res), nil
}

func (s *service) RenderPDF(ctx context.Context, organization string, req PayslipRequest) ([]byte, string, error) {
	empl, res, err := s.compute(ctx, organization, req)
	if err != nil {
		return nil, "", err
	}

	body, err := buildPayslipPDF(payslipLayout(mapToResponse(empl, res)))
	if err != nil {
		s.logger.Error("render payslip pdf failed", zap.Error(err))
		return nil, "", paysliperrors.ErrRenderFailed.WithErr(err)
	}
	return body, fileName(empl, res, "pdf"), nil
}

func (s *service) ExportXLSX(ctx context.Context, organization string, req PayslipRequest) ([]byte, string, error) {
	empl, res, err := s.compute(ctx, organization, req)
	if err != nil {
		return nil, "", err
	}

	body, err := buildPayslipWorkbook(mapToResponse(empl, res))
	if err != nil {
		s.logger.Error("render payslip xlsx failed", zap.Error(err))
		return nil, "", paysliperrors.ErrRenderFailed.WithErr(err)
	}
	return body, fileName(empl, res, "xlsx"), nil
}

func fileName(empl *employee.Employee, r Result, ext string) string {
	name := strings.ToLower(strings.Join(strings.Fields(empl.Name), "-"))
	return fmt.Sprintf("payslip-%s-%04d-%02d.%s", name, r.Year, r.Month, ext)
}
