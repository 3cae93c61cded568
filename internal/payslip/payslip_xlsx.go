package payslip

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const payslipSheet = "Payslip"

// buildPayslipWorkbook writes a header block followed by one row per pay
// component and the totals.
func buildPayslipWorkbook(p PayslipResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", payslipSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	rows := [][]any{
		{"Employee", p.Employee.Name},
		{"Department", p.Employee.Department},
		{"Organization", p.Organization},
		{"Period", p.Period},
		{"Attendance", fmt.Sprintf("%d / %d days (%s%%)", p.DaysPresent, p.TotalWorkdays, p.AttendancePercentage)},
		{},
		{"Component", "Amount"},
	}
	for _, c := range p.Breakdown.Pie {
		rows = append(rows, []any{c.Name, c.Amount})
	}
	rows = append(rows,
		[]any{"Gross Salary", p.GrossSalary},
		[]any{"Net Salary", p.NetSalary},
	)
	if p.Warning != "" {
		rows = append(rows, []any{}, []any{"Warning", p.Warning})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(payslipSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(payslipSheet, "A", "A", 18); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(payslipSheet, "B", "B", 40); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
