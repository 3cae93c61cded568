package payslip

import (
	"fmt"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/employee"
)

func penaltyWarning(r Result) string {
	if !r.PenaltyApplied() {
		return ""
	}
	return fmt.Sprintf("Attendance below 75%% for a completed month. Penalty of %s applied.", r.Penalty.StringFixed(2))
}

func mapToResponse(empl *employee.Employee, r Result) PayslipResponse {
	b := r.Breakdown()

	bar := make([]ComponentResponse, len(b.Bar))
	for i, c := range b.Bar {
		bar[i] = ComponentResponse{Name: c.Name, Amount: c.Amount.StringFixed(2), Color: c.Color}
	}
	pie := make([]SliceResponse, len(b.Pie))
	for i, s := range b.Pie {
		pie[i] = SliceResponse{Name: s.Name, Amount: s.Amount.StringFixed(2), Color: s.Color, Share: s.Share.StringFixed(2)}
	}

	return PayslipResponse{
		Employee: EmployeeSummary{
			ID:         empl.ID.String(),
			Name:       empl.Name,
			Department: empl.Department,
		},
		Organization:         empl.Organization,
		Year:                 r.Year,
		Month:                r.Month,
		Period:               fmt.Sprintf("%s %d", time.Month(r.Month), r.Year),
		TotalWorkdays:        r.TotalWorkdays,
		DaysPresent:          r.DaysPresent,
		AttendancePercentage: r.AttendancePercentage.StringFixed(2),
		BasicSalary:          r.BasicSalary.StringFixed(2),
		BasicPay:             r.BasicPay.StringFixed(2),
		HRA:                  r.HRA.StringFixed(2),
		DA:                   r.DA.StringFixed(2),
		Bonus:                r.Bonus.StringFixed(2),
		GrossBeforePenalty:   r.GrossBeforePenalty.StringFixed(2),
		Penalty:              r.Penalty.StringFixed(2),
		GrossSalary:          r.GrossSalary.StringFixed(2),
		Tax:                  r.Tax.StringFixed(2),
		NetSalary:            r.NetSalary.StringFixed(2),
		IsPastMonth:          r.IsPastMonth,
		PenaltyApplied:       r.PenaltyApplied(),
		Warning:              penaltyWarning(r),
		Breakdown:            BreakdownResponse{Bar: bar, Pie: pie},
	}
}
