// Package returns holds the investment return and asset value calculators.
package returns

import (
	"fmt"
	"math"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/mathutil"
	"github.com/iwvelando/finance-calc/pkg/tvm"
)

// CAGR returns the compound annual growth rate, in percent, that takes start
// to end over years. A zero start or zero years yields 0. Values of opposite
// sign have no real rate for most periods and yield NaN.
func CAGR(start, end, years float64) float64 {
	if start == 0 || years == 0 {
		return 0
	}
	return mathutil.ToPercent(math.Pow(end/start, 1/years) - 1)
}

// ROI returns the return on investment in percent. A zero start yields 0.
func ROI(start, end float64) float64 {
	return mathutil.CalculatePercentage(end-start, start)
}

// Inflation projects value forward at rate percent per period.
func Inflation(value, rate, periods float64) float64 {
	return tvm.FV(value, rate, periods)
}

// Depreciation returns the straight-line depreciation per period. A zero
// useful life yields 0.
func Depreciation(cost, residual, life float64) float64 {
	return mathutil.SafeRatio(cost-residual, life)
}

// DepreciationRow is one period of a straight-line depreciation table.
type DepreciationRow struct {
	Year        int     `json:"year"`
	Expense     float64 `json:"expense"`
	Accumulated float64 `json:"accumulated"`
	BookValue   float64 `json:"bookValue"`
}

// DepreciationSchedule lists the book value of an asset period by period.
// A non-positive or fractional life yields an empty table; a life longer
// than MaxSchedulePeriods is rejected.
func DepreciationSchedule(cost, residual, usefulLife float64) ([]DepreciationRow, error) {
	if usefulLife > constants.MaxSchedulePeriods {
		return nil, fmt.Errorf("useful life of %v periods exceeds the limit of %d: %w",
			usefulLife, constants.MaxSchedulePeriods, calcerr.ErrInvalidInput)
	}
	if usefulLife <= 0 || usefulLife != math.Trunc(usefulLife) {
		return []DepreciationRow{}, nil
	}

	life := int(usefulLife)
	expense := Depreciation(cost, residual, usefulLife)
	rows := make([]DepreciationRow, 0, life)
	accumulated := 0.0
	for year := 1; year <= life; year++ {
		accumulated += expense
		book := cost - accumulated
		if year == life {
			// land exactly on the residual value
			accumulated = cost - residual
			book = residual
		}
		rows = append(rows, DepreciationRow{
			Year:        year,
			Expense:     expense,
			Accumulated: accumulated,
			BookValue:   book,
		})
	}
	return rows, nil
}
