// Package percent implements the percentage calculators. Each calculator is
// also available as a Request variant so host layers can dispatch on a mode
// selected at runtime.
package percent

import (
	"github.com/iwvelando/finance-calc/pkg/mathutil"
)

// IncreaseResult is a value raised by a percentage.
type IncreaseResult struct {
	Increase float64 `json:"increase"`
	Total    float64 `json:"total"`
}

// DiscountResult is the discount between an original and a final value.
type DiscountResult struct {
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// Value returns pct percent of total.
func Value(total, pct float64) float64 {
	return mathutil.ApplyPercentage(total, pct)
}

// Proportion returns what percent part is of total; a zero total yields 0.
func Proportion(part, total float64) float64 {
	return mathutil.CalculatePercentage(part, total)
}

// Increase raises value by pct percent.
func Increase(value, pct float64) IncreaseResult {
	increase := mathutil.ApplyPercentage(value, pct)
	return IncreaseResult{Increase: increase, Total: value + increase}
}

// Discount finds the discount from original to final; a zero original
// yields a 0% discount.
func Discount(original, final float64) DiscountResult {
	amount := original - final
	return DiscountResult{
		Amount:  amount,
		Percent: mathutil.CalculatePercentage(amount, original),
	}
}
