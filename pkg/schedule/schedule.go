// Package schedule holds the row type shared by the accumulation and
// amortization schedules.
package schedule

import "github.com/iwvelando/finance-calc/pkg/constants"

// Row holds the values for one period of a schedule. Index 0 is the seed row
// of an accumulation schedule; amortization rows start at 1.
type Row struct {
	Index               int     `json:"index"`
	Payment             float64 `json:"payment"`
	Interest            float64 `json:"interest"`
	Principal           float64 `json:"principal,omitempty"`
	Balance             float64 `json:"balance"`
	Invested            float64 `json:"invested,omitempty"`
	AccumulatedInterest float64 `json:"accumulatedInterest"`
}

// ClampBalance snaps a residual balance below one cent to exactly zero.
func ClampBalance(balance float64) float64 {
	if balance < constants.BalanceEpsilon {
		return 0
	}
	return balance
}

// Last returns the final row, or the zero Row for an empty schedule.
func Last(rows []Row) Row {
	if len(rows) == 0 {
		return Row{}
	}
	return rows[len(rows)-1]
}
