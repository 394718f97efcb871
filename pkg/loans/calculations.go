// Package loans provides the PRICE (fixed installment) and SAC (constant
// amortization) schedule engines and a side-by-side comparator.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/mathutil"
	"github.com/iwvelando/finance-calc/pkg/schedule"
)

// Method identifies an amortization system.
type Method string

const (
	// MethodPrice is the French system: constant installment.
	MethodPrice Method = "price"
	// MethodSAC is the constant amortization system.
	MethodSAC Method = "sac"
)

// Result holds a generated amortization schedule and its totals. PRICE
// results carry FixedPayment; SAC results carry FixedAmortization.
type Result struct {
	Method            Method         `json:"method"`
	FixedPayment      float64        `json:"fixedPayment,omitempty"`
	FixedAmortization float64        `json:"fixedAmortization,omitempty"`
	TotalInterest     float64        `json:"totalInterest"`
	TotalPaid         float64        `json:"totalPaid"`
	Schedule          []schedule.Row `json:"schedule"`
}

// CalculateFixedPayment calculates the constant PRICE installment for a
// per-period rate given as a fraction.
func CalculateFixedPayment(loan, periodicRate float64, periods int) float64 {
	if periodicRate == 0 {
		// For zero interest, simply divide the loan by the term
		return loan / float64(periods)
	}
	power := math.Pow(1+periodicRate, float64(periods))
	return loan * periodicRate * power / (power - 1)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(balance, periodicRate float64) float64 {
	return balance * periodicRate
}

// Price builds a PRICE schedule. The rate is per period, in percent.
func Price(loan, rate float64, periods int) (Result, error) {
	if err := validatePeriods(periods); err != nil {
		return Result{}, err
	}
	return price(loan, mathutil.ToFraction(rate), periods), nil
}

// SAC builds a SAC schedule. The rate is per period, in percent.
func SAC(loan, rate float64, periods int) (Result, error) {
	if err := validatePeriods(periods); err != nil {
		return Result{}, err
	}
	return sac(loan, mathutil.ToFraction(rate), periods), nil
}

func validatePeriods(periods int) error {
	if periods <= 0 {
		return fmt.Errorf("amortization needs a positive number of periods, got %d: %w", periods, calcerr.ErrInvalidInput)
	}
	if periods > constants.MaxSchedulePeriods {
		return fmt.Errorf("amortization over %d periods exceeds the limit of %d: %w",
			periods, constants.MaxSchedulePeriods, calcerr.ErrInvalidInput)
	}
	return nil
}

func price(loan, r float64, periods int) Result {
	pmt := CalculateFixedPayment(loan, r, periods)

	rows := make([]schedule.Row, 0, periods)
	balance := loan
	totalInterest := 0.0

	for i := 1; i <= periods; i++ {
		interest := CalculateInterestPayment(balance, r)
		principal := pmt - interest
		balance = schedule.ClampBalance(balance - principal)
		totalInterest += interest

		rows = append(rows, schedule.Row{
			Index:               i,
			Payment:             pmt,
			Interest:            interest,
			Principal:           principal,
			Balance:             balance,
			AccumulatedInterest: totalInterest,
		})
	}

	return Result{
		Method:        MethodPrice,
		FixedPayment:  pmt,
		TotalInterest: totalInterest,
		TotalPaid:     pmt * float64(periods),
		Schedule:      rows,
	}
}

func sac(loan, r float64, periods int) Result {
	amortization := loan / float64(periods)

	rows := make([]schedule.Row, 0, periods)
	balance := loan
	totalInterest := 0.0
	totalPaid := 0.0

	for i := 1; i <= periods; i++ {
		interest := CalculateInterestPayment(balance, r)
		payment := amortization + interest
		balance = schedule.ClampBalance(balance - amortization)
		totalInterest += interest
		totalPaid += payment

		rows = append(rows, schedule.Row{
			Index:               i,
			Payment:             payment,
			Interest:            interest,
			Principal:           amortization,
			Balance:             balance,
			AccumulatedInterest: totalInterest,
		})
	}

	return Result{
		Method:            MethodSAC,
		FixedAmortization: amortization,
		TotalInterest:     totalInterest,
		TotalPaid:         totalPaid,
		Schedule:          rows,
	}
}
