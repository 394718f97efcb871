// Package interest accumulates a principal and monthly contributions under
// simple or compound interest, producing a month-by-month schedule.
package interest

import (
	"github.com/iwvelando/finance-calc/pkg/rates"
	"github.com/iwvelando/finance-calc/pkg/schedule"
)

// Input describes an accumulation.
type Input struct {
	Principal           float64           `json:"principal" yaml:"principal"`
	MonthlyContribution float64           `json:"monthlyContribution" yaml:"monthlyContribution"`
	Rate                rates.RateInput   `json:"rate" yaml:"rate"`
	Period              rates.PeriodInput `json:"period" yaml:"period"`
}

// Result is the final position plus the schedule that led to it. The
// schedule has a seed row for month 0 followed by one row per whole month.
type Result struct {
	Total       float64        `json:"total"`
	Invested    float64        `json:"invested"`
	Interest    float64        `json:"interest"`
	MonthlyRate float64        `json:"monthlyRate"`
	Months      float64        `json:"months"`
	Schedule    []schedule.Row `json:"schedule"`
}

// Simple accrues interest on the invested capital only. Each month's
// interest is taken on what was invested before that month's contribution,
// and accrued interest never earns interest itself.
func Simple(in Input) (Result, error) {
	norm, err := rates.Normalize(in.Rate, in.Period, rates.Simple)
	if err != nil {
		return Result{}, err
	}
	r := norm.MonthlyRate

	invested := in.Principal
	accumulated := 0.0
	rows := seed(in.Principal, norm.Months)

	for i := 1; float64(i) <= norm.Months; i++ {
		monthly := invested * r
		accumulated += monthly
		invested += in.MonthlyContribution

		rows = append(rows, schedule.Row{
			Index:               i,
			Payment:             in.MonthlyContribution,
			Interest:            monthly,
			Balance:             invested + accumulated,
			Invested:            invested,
			AccumulatedInterest: accumulated,
		})
	}

	return Result{
		Total:       invested + accumulated,
		Invested:    invested,
		Interest:    accumulated,
		MonthlyRate: r,
		Months:      norm.Months,
		Schedule:    rows,
	}, nil
}

// Compound accrues interest on the whole balance, then adds the month's
// contribution. With no contributions the total equals P(1+r)^n.
func Compound(in Input) (Result, error) {
	norm, err := rates.Normalize(in.Rate, in.Period, rates.Compound)
	if err != nil {
		return Result{}, err
	}
	r := norm.MonthlyRate

	balance := in.Principal
	invested := in.Principal
	rows := seed(in.Principal, norm.Months)

	for i := 1; float64(i) <= norm.Months; i++ {
		gain := balance * r
		balance += gain + in.MonthlyContribution
		invested += in.MonthlyContribution

		rows = append(rows, schedule.Row{
			Index:               i,
			Payment:             in.MonthlyContribution,
			Interest:            gain,
			Balance:             balance,
			Invested:            invested,
			AccumulatedInterest: balance - invested,
		})
	}

	return Result{
		Total:       balance,
		Invested:    invested,
		Interest:    balance - invested,
		MonthlyRate: r,
		Months:      norm.Months,
		Schedule:    rows,
	}, nil
}

func seed(principal, months float64) []schedule.Row {
	rows := make([]schedule.Row, 0, int(months)+1)
	return append(rows, schedule.Row{
		Index:    0,
		Balance:  principal,
		Invested: principal,
	})
}
