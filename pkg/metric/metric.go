// Package metric holds the rounding rules shared by report assembly and templates.
package metric

import (
	"math"

	"github.com/shopspring/decimal"
)

// Percentage returns round(part/total*100) rounding half up, or 0 when total is 0.
func Percentage(part, total float64) int {
	if total == 0 || !finite(part) || !finite(total) {
		return 0
	}
	return PercentageDecimal(decimal.NewFromFloat(part), decimal.NewFromFloat(total))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// PercentageDecimal is Percentage for monetary values.
func PercentageDecimal(part, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(part.Mul(decimal.NewFromInt(100)).Div(total).Round(0).IntPart())
}

// Ratio formats part/total with one decimal place, or "0" when total is 0.
func Ratio(part, total int64) string {
	if total == 0 {
		return "0"
	}
	return decimal.NewFromInt(part).Div(decimal.NewFromInt(total)).StringFixed(1)
}

// Average divides sum by count, or returns zero when count is 0.
func Average(sum decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}
