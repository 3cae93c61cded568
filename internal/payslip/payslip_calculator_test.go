package payslip

import (
	"fmt"
	"testing"
	"time"

	paysliperrors "github.com/piyushraj0718/payrollmanagement/internal/payslip/errors"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/calendar"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertMoney compares at cent precision, the way amounts are displayed.
func assertMoney(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Equal(t, dec(want).StringFixed(2), got.StringFixed(2), "%s: exact value %s", field, got.String())
}

// presentOn marks the first n workdays of the month present.
func presentOn(year int, month time.Month, n int) map[calendar.Date]bool {
	m := map[calendar.Date]bool{}
	for _, d := range calendar.Workdays(calendar.MonthDays(year, month)) {
		if n == 0 {
			break
		}
		m[d] = true
		n--
	}
	return m
}

func TestCalculate_FullAttendance(t *testing.T) {
	r := Calculate(dec("30000"), Summary{TotalWorkdays: 26, DaysPresent: 26}, false)

	assertMoney(t, "100", r.AttendancePercentage, "percentage")
	assertMoney(t, "30000", r.BasicPay, "basic")
	assertMoney(t, "6000", r.HRA, "hra")
	assertMoney(t, "3000", r.DA, "da")
	assertMoney(t, "1500", r.Bonus, "bonus")
	assertMoney(t, "40500", r.GrossSalary, "gross")
	assertMoney(t, "4050", r.Tax, "tax")
	assertMoney(t, "36450", r.NetSalary, "net")
	assert.False(t, r.PenaltyApplied())
}

func TestCalculate_LowAttendancePastMonth(t *testing.T) {
	r := Calculate(dec("30000"), Summary{TotalWorkdays: 26, DaysPresent: 15}, true)

	assertMoney(t, "17307.69", r.BasicPay, "basic")
	assertMoney(t, "3461.54", r.HRA, "hra")
	assertMoney(t, "1730.77", r.DA, "da")
	assertMoney(t, "0", r.Bonus, "bonus")
	assertMoney(t, "22500.00", r.GrossBeforePenalty, "gross before penalty")
	assertMoney(t, "6750.00", r.Penalty, "penalty")
	assertMoney(t, "15750.00", r.GrossSalary, "gross")
	assertMoney(t, "787.50", r.Tax, "tax")
	assertMoney(t, "14962.50", r.NetSalary, "net")
	assert.True(t, r.PenaltyApplied())
}

func TestCalculate_TaxSlabUsesExactGross(t *testing.T) {
	// 276923.08 / 24 * 1.3 = 15000.000166..., just above the tax free ceiling
	r := Calculate(dec("276923.08"), Summary{TotalWorkdays: 24, DaysPresent: 1}, false)

	assert.True(t, r.GrossSalary.GreaterThan(dec("15000")), "gross %s", r.GrossSalary)
	assertMoney(t, "15000.00", r.GrossSalary, "gross")
	assertMoney(t, "750.00", r.Tax, "tax")
	assertMoney(t, "14250.00", r.NetSalary, "net")
}

func TestCalculate_ZeroWorkdays(t *testing.T) {
	r := Calculate(dec("30000"), Summary{}, true)

	assert.True(t, r.AttendanceRatio.IsZero())
	assert.True(t, r.BasicPay.IsZero())
	assert.True(t, r.GrossSalary.IsZero())
	assert.True(t, r.NetSalary.IsZero())
	assert.False(t, r.PenaltyApplied())
}

func TestCalculate_Thresholds(t *testing.T) {
	tests := []struct {
		name        string
		summary     Summary
		past        bool
		wantBonus   bool
		wantPenalty bool
	}{
		{"exactly 95 percent earns bonus", Summary{20, 19}, false, true, false},
		{"below 95 percent has no bonus", Summary{27, 25}, false, false, false},
		{"exactly 75 percent is not penalized", Summary{20, 15}, true, false, false},
		{"below 75 percent in past month", Summary{20, 14}, true, false, true},
		{"below 75 percent in current month", Summary{20, 14}, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Calculate(dec("20000"), tt.summary, tt.past)
			assert.Equal(t, tt.wantBonus, r.Bonus.IsPositive())
			assert.Equal(t, tt.wantPenalty, r.PenaltyApplied())
		})
	}
}

func TestTaxFor_Boundaries(t *testing.T) {
	tests := []struct {
		gross string
		want  string
	}{
		{"0", "0"},
		{"15000.00", "0"},
		{"15000.01", "750.00"},
		{"30000.00", "1500.00"},
		{"30000.01", "3000.00"},
		{"40500", "4050"},
	}

	for _, tt := range tests {
		t.Run(tt.gross, func(t *testing.T) {
			assertMoney(t, tt.want, TaxFor(dec(tt.gross)), "tax")
		})
	}
}

func TestCompute_MonthScenarios(t *testing.T) {
	t.Run("march 2024 with 15 of 26 days, completed month", func(t *testing.T) {
		presence := presentOn(2024, time.March, 15)
		// a stored present Sunday is ignored
		presence[calendar.NewDate(2024, time.March, 31)] = true

		r, err := Compute(Input{
			BasicSalary: dec("30000"),
			Presence:    presence,
			Year:        2024,
			Month:       3,
			Today:       time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Equal(t, 26, r.TotalWorkdays)
		assert.Equal(t, 15, r.DaysPresent)
		assert.True(t, r.IsPastMonth)
		assertMoney(t, "15750.00", r.GrossSalary, "gross")
		assertMoney(t, "14962.50", r.NetSalary, "net")
	})

	t.Run("january 2024 full attendance", func(t *testing.T) {
		r, err := Compute(Input{
			BasicSalary: dec("30000"),
			Presence:    presentOn(2024, time.January, 31),
			Year:        2024,
			Month:       1,
			Today:       time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		})

		assert.NoError(t, err)
		assert.Equal(t, 27, r.TotalWorkdays)
		assert.Equal(t, 27, r.DaysPresent)
		assertMoney(t, "100", r.AttendancePercentage, "percentage")
		assertMoney(t, "1500", r.Bonus, "bonus")
		assertMoney(t, "36450", r.NetSalary, "net")
	})

	t.Run("no penalty for current or future months", func(t *testing.T) {
		for _, today := range []time.Time{
			time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
		} {
			r, err := Compute(Input{BasicSalary: dec("30000"), Year: 2024, Month: 3, Today: today})
			assert.NoError(t, err)
			assert.False(t, r.IsPastMonth)
			assert.False(t, r.PenaltyApplied())
			assert.True(t, r.AttendancePercentage.IsZero())
		}
	})

	t.Run("previous year counts as past", func(t *testing.T) {
		r, err := Compute(Input{BasicSalary: dec("30000"), Year: 2023, Month: 12, Today: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)})
		assert.NoError(t, err)
		assert.True(t, r.IsPastMonth)
	})
}

func TestCompute_InvalidInput(t *testing.T) {
	today := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"zero salary", Input{BasicSalary: dec("0"), Year: 2024, Month: 1}, paysliperrors.ErrInvalidBasicSalary},
		{"negative salary", Input{BasicSalary: dec("-1"), Year: 2024, Month: 1}, paysliperrors.ErrInvalidBasicSalary},
		{"month zero", Input{BasicSalary: dec("1000"), Year: 2024, Month: 0}, paysliperrors.ErrInvalidMonth},
		{"month thirteen", Input{BasicSalary: dec("1000"), Year: 2024, Month: 13}, paysliperrors.ErrInvalidMonth},
		{"year zero", Input{BasicSalary: dec("1000"), Year: 0, Month: 1}, paysliperrors.ErrInvalidYear},
		{"year too large", Input{BasicSalary: dec("1000"), Year: 10000, Month: 1}, paysliperrors.ErrInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Today = today
			_, err := Compute(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCompute_NetNeverExceedsGrossBeforePenalty(t *testing.T) {
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	salaries := []string{"0.01", "999.99", "15000", "21428.57", "30000", "123456.78"}

	for _, salary := range salaries {
		for present := 0; present <= 27; present += 3 {
			for _, month := range []int{1, 2, 6} {
				r, err := Compute(Input{
					BasicSalary: dec(salary),
					Presence:    presentOn(2024, time.Month(month), present),
					Year:        2024,
					Month:       month,
					Today:       today,
				})
				assert.NoError(t, err)
				assert.True(t, r.NetSalary.LessThanOrEqual(r.GrossBeforePenalty),
					fmt.Sprintf("salary %s present %d month %d", salary, present, month))
				assert.False(t, r.NetSalary.IsNegative())
			}
		}
	}
}
