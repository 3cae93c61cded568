package payslip

import (
	"time"

	paysliperrors "github.com/piyushraj0718/payrollmanagement/internal/payslip/errors"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/calendar"
	"github.com/shopspring/decimal"
)

var (
	hraRate          = decimal.RequireFromString("0.20")
	daRate           = decimal.RequireFromString("0.10")
	bonusRate        = decimal.RequireFromString("0.05")
	penaltyRate      = decimal.RequireFromString("0.30")
	lowTaxRate       = decimal.RequireFromString("0.05")
	highTaxRate      = decimal.RequireFromString("0.10")
	taxFreeCeiling   = decimal.NewFromInt(15000)
	lowTaxCeiling    = decimal.NewFromInt(30000)
	bonusThreshold   = decimal.NewFromInt(95)
	penaltyThreshold = decimal.NewFromInt(75)
	hundred          = decimal.NewFromInt(100)
)

// Input is everything needed to compute one employee's payslip for one month.
// Presence holds the stored attendance; dates missing from it count as absent.
type Input struct {
	BasicSalary decimal.Decimal
	Presence    map[calendar.Date]bool
	Year        int
	Month       int
	Today       time.Time
}

// Summary is the attendance tally for a month.
type Summary struct {
	TotalWorkdays int
	DaysPresent   int
}

// Result is one month's payslip. Amounts are kept at full decimal precision;
// rounding to cents happens only when the payslip is rendered.
type Result struct {
	Year                 int
	Month                int
	TotalWorkdays        int
	DaysPresent          int
	AttendanceRatio      decimal.Decimal
	AttendancePercentage decimal.Decimal
	BasicSalary          decimal.Decimal
	BasicPay             decimal.Decimal
	HRA                  decimal.Decimal
	DA                   decimal.Decimal
	Bonus                decimal.Decimal
	GrossBeforePenalty   decimal.Decimal
	Penalty              decimal.Decimal
	GrossSalary          decimal.Decimal
	Tax                  decimal.Decimal
	NetSalary            decimal.Decimal
	IsPastMonth          bool
}

// PenaltyApplied reports whether the low attendance penalty reduced gross pay.
func (r Result) PenaltyApplied() bool {
	return r.Penalty.IsPositive()
}

// Compute derives the payslip for (Year, Month). Only Sundays are non-working
// days. The month counts as completed when it is strictly before Today's month.
func Compute(in Input) (Result, error) {
	if !in.BasicSalary.IsPositive() {
		return Result{}, paysliperrors.ErrInvalidBasicSalary
	}
	if in.Month < 1 || in.Month > 12 {
		return Result{}, paysliperrors.ErrInvalidMonth
	}
	if in.Year < 1 || in.Year > 9999 {
		return Result{}, paysliperrors.ErrInvalidYear
	}

	workdays := calendar.Workdays(calendar.MonthDays(in.Year, time.Month(in.Month)))
	present := 0
	for _, d := range workdays {
		if in.Presence[d] {
			present++
		}
	}

	period := calendar.NewDate(in.Year, time.Month(in.Month), 1)
	isPast := period.MonthBefore(calendar.DateOf(in.Today))

	res := Calculate(in.BasicSalary, Summary{TotalWorkdays: len(workdays), DaysPresent: present}, isPast)
	res.Year = in.Year
	res.Month = in.Month
	return res, nil
}

// Calculate applies the pay rules to an attendance summary. A month without
// workdays yields a zero attendance ratio. Nothing is rounded here so the
// tax slab is chosen on the exact gross.
func Calculate(basicSalary decimal.Decimal, s Summary, isPastMonth bool) Result {
	ratio := decimal.Zero
	basicPay := decimal.Zero
	if s.TotalWorkdays > 0 {
		present := decimal.NewFromInt(int64(s.DaysPresent))
		workdays := decimal.NewFromInt(int64(s.TotalWorkdays))
		ratio = present.Div(workdays)
		basicPay = basicSalary.Mul(present).Div(workdays)
	}
	percentage := ratio.Mul(hundred)

	hra := basicPay.Mul(hraRate)
	da := basicPay.Mul(daRate)

	bonus := decimal.Zero
	if percentage.GreaterThanOrEqual(bonusThreshold) {
		bonus = basicSalary.Mul(bonusRate)
	}

	gross := basicPay.Add(hra).Add(da).Add(bonus)
	beforePenalty := gross

	penalty := decimal.Zero
	if isPastMonth && percentage.LessThan(penaltyThreshold) {
		penalty = gross.Mul(penaltyRate)
		gross = gross.Sub(penalty)
	}

	tax := TaxFor(gross)

	return Result{
		TotalWorkdays:        s.TotalWorkdays,
		DaysPresent:          s.DaysPresent,
		AttendanceRatio:      ratio,
		AttendancePercentage: percentage,
		BasicSalary:          basicSalary,
		BasicPay:             basicPay,
		HRA:                  hra,
		DA:                   da,
		Bonus:                bonus,
		GrossBeforePenalty:   beforePenalty,
		Penalty:              penalty,
		GrossSalary:          gross,
		Tax:                  tax,
		NetSalary:            gross.Sub(tax),
		IsPastMonth:          isPastMonth,
	}
}

// TaxFor returns the flat-slab tax on gross: nothing up to 15000, 5% up to
// 30000 and 10% above. Boundaries are inclusive of the lower slab.
func TaxFor(gross decimal.Decimal) decimal.Decimal {
	switch {
	case gross.LessThanOrEqual(taxFreeCeiling):
		return decimal.Zero
	case gross.LessThanOrEqual(lowTaxCeiling):
		return gross.Mul(lowTaxRate)
	default:
		return gross.Mul(highTaxRate)
	}
}
