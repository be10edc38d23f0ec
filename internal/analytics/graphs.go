package analytics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"spender/internal/models"
)

const maxBarItems = 4

// PieData is the worth/waste split of classified expenses, in whole percents.
type PieData struct {
	Good        int `json:"good"`
	Unnecessary int `json:"unnecessary"`
}

// BarItem is one category's share of total spending, in whole percents.
type BarItem struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// GraphsData is the chart payload: classification split plus the top spending
// categories.
type GraphsData struct {
	Pie PieData   `json:"pie"`
	Bar []BarItem `json:"bar"`
}

// BuildGraphs derives chart data from an expense snapshot. The pie covers
// classified expenses only and counts records, not amounts; the bar covers all
// expenses by amount, keeping the four largest categories. Independent
// rounding can make the pie legs sum to 99 or 101, so the unnecessary leg is
// recomputed as the complement of the good leg.
func BuildGraphs(expenses []models.Expense) GraphsData {
	graphs := GraphsData{Bar: []BarItem{}}
	if len(expenses) == 0 {
		return graphs
	}

	var worth, waste int
	for i := range expenses {
		switch {
		case expenses[i].IsWorth():
			worth++
		case expenses[i].IsWaste():
			waste++
		}
	}

	if classified := worth + waste; classified > 0 {
		graphs.Pie.Good = roundPercent(float64(worth) / float64(classified) * 100)
		graphs.Pie.Unnecessary = roundPercent(float64(waste) / float64(classified) * 100)
		if graphs.Pie.Good+graphs.Pie.Unnecessary != 100 {
			graphs.Pie.Unnecessary = 100 - graphs.Pie.Good
		}
	}

	totals := make(map[string]decimal.Decimal)
	var grandTotal decimal.Decimal
	for i := range expenses {
		amount := expenses[i].Amount
		if amount.Sign() < 0 {
			amount = decimal.Zero
		}
		totals[expenses[i].Category] = totals[expenses[i].Category].Add(amount)
		grandTotal = grandTotal.Add(amount)
	}

	for label, amount := range totals {
		value := 0
		if grandTotal.Sign() > 0 {
			value = roundPercent(amount.Div(grandTotal).InexactFloat64() * 100)
		}
		graphs.Bar = append(graphs.Bar, BarItem{Label: label, Value: value})
	}

	sort.Slice(graphs.Bar, func(i, j int) bool {
		if graphs.Bar[i].Value != graphs.Bar[j].Value {
			return graphs.Bar[i].Value > graphs.Bar[j].Value
		}
		return graphs.Bar[i].Label < graphs.Bar[j].Label
	})

	if len(graphs.Bar) > maxBarItems {
		graphs.Bar = graphs.Bar[:maxBarItems]
	}

	return graphs
}

// roundPercent rounds half away from zero, matching how the percentages are
// displayed.
func roundPercent(x float64) int {
	return int(math.Round(x))
}
