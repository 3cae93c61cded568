package payslip

type PayslipRequest struct {
	EmployeeID   string `form:"employee_id"`
	EmployeeName string `form:"employee_name"`
	Year         int    `form:"year"`
	Month        int    `form:"month"`
}

type EmployeeSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

type ComponentResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Color  string `json:"color"`
}

type SliceResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Color  string `json:"color"`
	Share  string `json:"share"`
}

type BreakdownResponse struct {
	Bar []ComponentResponse `json:"bar"`
	Pie []SliceResponse     `json:"pie"`
}

// Amounts are decimal strings with two places.
type PayslipResponse struct {
	Employee             EmployeeSummary   `json:"employee"`
	Organization         string            `json:"organization"`
	Year                 int               `json:"year"`
	Month                int               `json:"month"`
	Period               string            `json:"period"`
	TotalWorkdays        int               `json:"total_workdays"`
	DaysPresent          int               `json:"days_present"`
	AttendancePercentage string            `json:"attendance_percentage"`
	BasicSalary          string            `json:"basic_salary"`
	BasicPay             string            `json:"basic_pay"`
	HRA                  string            `json:"hra"`
	DA                   string            `json:"da"`
	Bonus                string            `json:"bonus"`
	GrossBeforePenalty   string            `json:"gross_before_penalty"`
	Penalty              string            `json:"penalty"`
	GrossSalary          string            `json:"gross_salary"`
	Tax                  string            `json:"tax"`
	NetSalary            string            `json:"net_salary"`
	IsPastMonth          bool              `json:"is_past_month"`
	PenaltyApplied       bool              `json:"penalty_applied"`
	Warning              string            `json:"warning,omitempty"`
	Breakdown            BreakdownResponse `json:"breakdown"`
}
