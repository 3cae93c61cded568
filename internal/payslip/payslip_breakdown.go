package payslip

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Component names in display order.
const (
	ComponentBasicPay = "Basic Pay"
	ComponentHRA      = "HRA"
	ComponentDA       = "DA"
	ComponentBonus    = "Bonus"
	ComponentPenalty  = "Penalty"
	ComponentTax      = "Tax"
)

var componentColors = map[string]string{
	ComponentBasicPay: "#1f77b4",
	ComponentHRA:      "#ff7f0e",
	ComponentDA:       "#2ca02c",
	ComponentBonus:    "#d62728",
	ComponentPenalty:  "#9467bd",
	ComponentTax:      "#8c564b",
}

type Component struct {
	Name   string
	Amount decimal.Decimal
	Color  string
}

type Slice struct {
	Component
	// Share is the percentage of the component total, rounded to 2 places.
	Share decimal.Decimal
}

// Breakdown is chart-ready data: Bar for a horizontal bar chart sorted by
// ascending amount, Pie for a distribution chart in display order.
type Breakdown struct {
	Bar []Component
	Pie []Slice
}

func (r Result) Components() []Component {
	amounts := []struct {
		name   string
		amount decimal.Decimal
	}{
		{ComponentBasicPay, r.BasicPay},
		{ComponentHRA, r.HRA},
		{ComponentDA, r.DA},
		{ComponentBonus, r.Bonus},
		{ComponentPenalty, r.Penalty},
		{ComponentTax, r.Tax},
	}

	out := make([]Component, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, Component{Name: a.name, Amount: a.amount, Color: componentColors[a.name]})
	}
	return out
}

func (r Result) Breakdown() Breakdown {
	components := r.Components()

	bar := make([]Component, len(components))
	copy(bar, components)
	sort.SliceStable(bar, func(i, j int) bool {
		return bar[i].Amount.LessThan(bar[j].Amount)
	})

	total := decimal.Zero
	for _, c := range components {
		total = total.Add(c.Amount)
	}

	pie := make([]Slice, 0, len(components))
	for _, c := range components {
		share := decimal.Zero
		if total.IsPositive() {
			share = c.Amount.Div(total).Mul(hundred).Round(2)
		}
		pie = append(pie, Slice{Component: c, Share: share})
	}

	return Breakdown{Bar: bar, Pie: pie}
}
