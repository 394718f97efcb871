package loans

import (
	"math"

	"github.com/iwvelando/finance-calc/pkg/mathutil"
	"github.com/iwvelando/finance-calc/pkg/rates"
)

// CompareInput describes a financed purchase to run through both systems.
type CompareInput struct {
	PropertyValue float64           `json:"propertyValue" yaml:"propertyValue"`
	DownPayment   float64           `json:"downPayment" yaml:"downPayment"`
	Rate          rates.RateInput   `json:"rate" yaml:"rate"`
	Period        rates.PeriodInput `json:"period" yaml:"period"`
}

// Comparison holds both schedules for the same loan. MonthlyRate is the
// per-period rate both engines used, in percent.
type Comparison struct {
	LoanAmount      float64 `json:"loanAmount"`
	MonthlyRate     float64 `json:"monthlyRate"`
	Periods         int     `json:"periods"`
	Price           Result  `json:"price"`
	SAC             Result  `json:"sac"`
	InterestSavings float64 `json:"interestSavings"`
}

// LoanAmount is the financed amount: property value less down payment,
// floored at zero.
func LoanAmount(propertyValue, downPayment float64) float64 {
	return math.Max(propertyValue-downPayment, 0)
}

// Compare converts the rate and period once, then runs PRICE and SAC on the
// identical per-period rate and count.
func Compare(in CompareInput) (Comparison, error) {
	norm, err := rates.Normalize(in.Rate, in.Period, rates.Compound)
	if err != nil {
		return Comparison{}, err
	}
	periods, err := rates.WholeMonths(norm.Months)
	if err != nil {
		return Comparison{}, err
	}
	if err := validatePeriods(periods); err != nil {
		return Comparison{}, err
	}

	loan := LoanAmount(in.PropertyValue, in.DownPayment)
	priceResult := price(loan, norm.MonthlyRate, periods)
	sacResult := sac(loan, norm.MonthlyRate, periods)

	return Comparison{
		LoanAmount:      loan,
		MonthlyRate:     mathutil.ToPercent(norm.MonthlyRate),
		Periods:         periods,
		Price:           priceResult,
		SAC:             sacResult,
		InterestSavings: priceResult.TotalInterest - sacResult.TotalInterest,
	}, nil
}
