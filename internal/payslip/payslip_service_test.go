package payslip

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/attendance"
	"github.com/piyushraj0718/payrollmanagement/internal/employee"
	paysliperrors "github.com/piyushraj0718/payrollmanagement/internal/payslip/errors"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type fakeEmployees struct {
	byIDFn   func(ctx context.Context, organization, id string) (*employee.Employee, error)
	byNameFn func(ctx context.Context, organization, name string) (*employee.Employee, error)
}

func (f *fakeEmployees) FindByIDAndOrganization(ctx context.Context, organization, id string) (*employee.Employee, error) {
	return f.byIDFn(ctx, organization, id)
}

func (f *fakeEmployees) FindByNameAndOrganization(ctx context.Context, organization, name string) (*employee.Employee, error) {
	return f.byNameFn(ctx, organization, name)
}

type fakeAttendances struct {
	betweenFn func(ctx context.Context, employeeID string, from, to calendar.Date) ([]attendance.Attendance, error)
}

func (f *fakeAttendances) FindByEmployeeBetween(ctx context.Context, employeeID string, from, to calendar.Date) ([]attendance.Attendance, error) {
	return f.betweenFn(ctx, employeeID, from, to)
}

func marchAttendance(present int) []attendance.Attendance {
	var rows []attendance.Attendance
	for _, d := range calendar.MonthDays(2024, time.March) {
		isPresent := d.IsWorkday() && present > 0
		if isPresent {
			present--
		}
		rows = append(rows, attendance.Attendance{AttendanceDate: d.Time(), IsPresent: isPresent})
	}
	return rows
}

func setupService(empl *employee.Employee, rows []attendance.Attendance, today time.Time) *service {
	employees := &fakeEmployees{
		byIDFn: func(ctx context.Context, organization, id string) (*employee.Employee, error) {
			if organization != empl.Organization || id != empl.ID.String() {
				return nil, gorm.ErrRecordNotFound
			}
			return empl, nil
		},
		byNameFn: func(ctx context.Context, organization, name string) (*employee.Employee, error) {
			if organization != empl.Organization || name != empl.Name {
				return nil, gorm.ErrRecordNotFound
			}
			return empl, nil
		},
	}
	attendances := &fakeAttendances{
		betweenFn: func(ctx context.Context, employeeID string, from, to calendar.Date) ([]attendance.Attendance, error) {
			return rows, nil
		},
	}

	svc := NewService(employees, attendances).(*service)
	svc.now = func() time.Time { return today }
	return svc
}

func testEmployee() *employee.Employee {
	return &employee.Employee{
		ID:           uuid.New(),
		Organization: "Acme",
		Name:         "Asha Rao",
		Department:   "Finance",
		BasicSalary:  dec("30000"),
	}
}

func TestService_Generate(t *testing.T) {
	ctx := context.Background()
	empl := testEmployee()
	april := time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC)

	t.Run("by id with penalty", func(t *testing.T) {
		svc := setupService(empl, marchAttendance(15), april)

		resp, err := svc.Generate(ctx, "Acme", PayslipRequest{EmployeeID: empl.ID.String(), Year: 2024, Month: 3})

		assert.NoError(t, err)
		assert.Equal(t, "Asha Rao", resp.Employee.Name)
		assert.Equal(t, "March 2024", resp.Period)
		assert.Equal(t, 26, resp.TotalWorkdays)
		assert.Equal(t, 15, resp.DaysPresent)
		assert.Equal(t, "17307.69", resp.BasicPay)
		assert.Equal(t, "6750.00", resp.Penalty)
		assert.Equal(t, "14962.50", resp.NetSalary)
		assert.True(t, resp.PenaltyApplied)
		assert.Contains(t, resp.Warning, "6750.00")
		assert.Len(t, resp.Breakdown.Bar, 6)
	})

	t.Run("by name defaults to current month", func(t *testing.T) {
		svc := setupService(empl, marchAttendance(26), time.Date(2024, time.March, 28, 0, 0, 0, 0, time.UTC))

		resp, err := svc.Generate(ctx, "Acme", PayslipRequest{EmployeeName: "  Asha Rao "})

		assert.NoError(t, err)
		assert.Equal(t, 2024, resp.Year)
		assert.Equal(t, 3, resp.Month)
		assert.Equal(t, "1500.00", resp.Bonus)
		assert.False(t, resp.PenaltyApplied)
		assert.Empty(t, resp.Warning)
	})

	t.Run("other organization", func(t *testing.T) {
		svc := setupService(empl, nil, april)
		_, err := svc.Generate(ctx, "Globex", PayslipRequest{EmployeeID: empl.ID.String()})
		assert.ErrorIs(t, err, paysliperrors.ErrEmployeeNotFound)
	})

	t.Run("employee required", func(t *testing.T) {
		svc := setupService(empl, nil, april)
		_, err := svc.Generate(ctx, "Acme", PayslipRequest{})
		assert.ErrorIs(t, err, paysliperrors.ErrEmployeeRequired)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := setupService(empl, nil, april)
		_, err := svc.Generate(ctx, "Acme", PayslipRequest{EmployeeID: "42"})
		assert.ErrorIs(t, err, paysliperrors.ErrInvalidEmployeeID)
	})

	t.Run("invalid month", func(t *testing.T) {
		svc := setupService(empl, nil, april)
		_, err := svc.Generate(ctx, "Acme", PayslipRequest{EmployeeID: empl.ID.String(), Year: 2024, Month: 13})
		assert.ErrorIs(t, err, paysliperrors.ErrInvalidMonth)
	})

	t.Run("attendance load failure", func(t *testing.T) {
		svc := setupService(empl, nil, april)
		svc.attendances = &fakeAttendances{
			betweenFn: func(ctx context.Context, employeeID string, from, to calendar.Date) ([]attendance.Attendance, error) {
				return nil, errors.New("connection reset")
			},
		}
		_, err := svc.Generate(ctx, "Acme", PayslipRequest{EmployeeID: empl.ID.String()})
		assert.EqualError(t, err, "connection reset")
	})
}

func TestService_RenderPDF(t *testing.T) {
	empl := testEmployee()
	svc := setupService(empl, marchAttendance(15), time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC))

	body, name, err := svc.RenderPDF(context.Background(), "Acme", PayslipRequest{EmployeeID: empl.ID.String(), Year: 2024, Month: 3})

	assert.NoError(t, err)
	assert.Equal(t, "payslip-asha-rao-2024-03.pdf", name)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-1.4")))
	assert.Contains(t, string(body), "(Net Salary \\(Payable\\)) Tj")
	assert.Contains(t, string(body), "/Helvetica-Bold")
	assert.Contains(t, string(body), "Penalty of 6750.00 applied.")
}

func TestService_ExportXLSX(t *testing.T) {
	empl := testEmployee()
	svc := setupService(empl, marchAttendance(26), time.Date(2024, time.April, 5, 0, 0, 0, 0, time.UTC))

	body, name, err := svc.ExportXLSX(context.Background(), "Acme", PayslipRequest{EmployeeID: empl.ID.String(), Year: 2024, Month: 3})
	assert.NoError(t, err)
	assert.Equal(t, "payslip-asha-rao-2024-03.xlsx", name)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	if !assert.NoError(t, err) {
		return
	}
	defer f.Close()

	rows, err := f.GetRows(payslipSheet)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Employee", "Asha Rao"}, rows[0])
	assert.Equal(t, []string{"Component", "Amount"}, rows[6])
	assert.Equal(t, []string{"Basic Pay", "30000.00"}, rows[7])
	assert.Equal(t, []string{"Net Salary", "36450.00"}, rows[len(rows)-1])
}

func TestPayslipLayout_RightAlignsAmounts(t *testing.T) {
	doc := payslipLayout(PayslipResponse{Period: "March 2024", Penalty: "6750.00", Tax: "787.50", NetSalary: "14962.50"})
	stream := doc.contentStream()

	// 7 digits and a point at 11pt: (7*556 + 278) * 11 / 1000 = 45.87
	assert.InDelta(t, 45.87, textWidth("14962.50", 11), 0.001)
	assert.Contains(t, stream, "BT /F2 11 Tf 499.13 ")
	assert.Contains(t, stream, "(14962.50) Tj")
	assert.Contains(t, stream, "(-787.50) Tj")
	assert.Contains(t, stream, "BT /F2 16 Tf 50.00 782.00 Td (Payslip - March 2024) Tj ET")
}

func TestPDFEscape(t *testing.T) {
	assert.Equal(t, `a\(b\)\\c ?`, pdfEscape("a(b)\\c ₹"))
}
