package payslip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Breakdown(t *testing.T) {
	r := Calculate(dec("30000"), Summary{TotalWorkdays: 26, DaysPresent: 26}, false)
	b := r.Breakdown()

	names := make([]string, len(b.Bar))
	for i, c := range b.Bar {
		names[i] = c.Name
	}
	assert.Equal(t, []string{
		ComponentPenalty, ComponentBonus, ComponentDA, ComponentTax, ComponentHRA, ComponentBasicPay,
	}, names)

	if assert.Len(t, b.Pie, 6) {
		assert.Equal(t, ComponentBasicPay, b.Pie[0].Name)
		assert.Equal(t, "#1f77b4", b.Pie[0].Color)
		assertMoney(t, "67.34", b.Pie[0].Share, "basic share")
		assertMoney(t, "0", b.Pie[4].Share, "penalty share")
	}
}

func TestResult_Breakdown_ZeroTotal(t *testing.T) {
	b := Calculate(dec("30000"), Summary{}, false).Breakdown()

	for _, s := range b.Pie {
		assert.True(t, s.Share.IsZero(), s.Name)
	}
	assert.Len(t, b.Bar, 6)
}
