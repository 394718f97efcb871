// Package cashflow computes the net present value and internal rate of return
// of a series of periodic cash flows. Flow t is discounted by (1+r)^t, so the
// first flow (usually the negative outlay) is taken at face value.
package cashflow

import (
	"math"

	"github.com/iwvelando/finance-calc/pkg/mathutil"
)

// DiscountedFlow is one period of an NPV breakdown.
type DiscountedFlow struct {
	Period     int     `json:"period"`
	Flow       float64 `json:"flow"`
	Discounted float64 `json:"discounted"`
	Cumulative float64 `json:"cumulative"`
}

// NPVResult is the net present value together with the per-period values
// charts and tables are drawn from.
type NPVResult struct {
	NPV   float64          `json:"npv"`
	Flows []DiscountedFlow `json:"flows"`
}

// NPV discounts flows at a per-period rate given in percent.
func NPV(rate float64, flows []float64) NPVResult {
	r := mathutil.ToFraction(rate)
	result := NPVResult{Flows: make([]DiscountedFlow, 0, len(flows))}
	for t, flow := range flows {
		discounted := flow / math.Pow(1+r, float64(t))
		result.NPV += discounted
		result.Flows = append(result.Flows, DiscountedFlow{
			Period:     t,
			Flow:       flow,
			Discounted: discounted,
			Cumulative: result.NPV,
		})
	}
	return result
}

// npvAndSlope evaluates NPV and its derivative with respect to the fractional
// rate r.
func npvAndSlope(r float64, flows []float64) (float64, float64) {
	npv, slope := 0.0, 0.0
	for t, flow := range flows {
		denom := math.Pow(1+r, float64(t))
		npv += flow / denom
		slope -= float64(t) * flow / (denom * (1 + r))
	}
	return npv, slope
}
