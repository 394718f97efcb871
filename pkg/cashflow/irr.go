package cashflow

import (
	"fmt"
	"math"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/mathutil"
)

// Reason records why the IRR solver stopped.
type Reason string

const (
	Converged               Reason = "converged"
	IterationBudgetExceeded Reason = "iteration budget exceeded"
	DerivativeVanished      Reason = "derivative vanished"
	NonFiniteStep           Reason = "non-finite step"
)

// IRRResult is the outcome of the solver. Rate is in percent and, when
// Reason is not Converged, holds the last iterate reached.
type IRRResult struct {
	Rate       float64 `json:"rate"`
	Iterations int     `json:"iterations"`
	Reason     Reason  `json:"reason"`
}

// Converged reports whether the solver found a root.
func (r IRRResult) Converged() bool {
	return r.Reason == Converged
}

// IRR solves NPV(r) = 0 by Newton-Raphson seeded at 10%.
func IRR(flows []float64) (IRRResult, error) {
	return IRRWithGuess(flows, constants.IRRDefaultGuess)
}

// IRRWithGuess solves NPV(r) = 0 starting from guess (percent). It stops when
// |NPV| or the step size drops below the precision, and never takes more than
// constants.IRRMaxIterations steps. A solver that stops for any other reason
// returns an error wrapping calcerr.ErrNonConvergence.
func IRRWithGuess(flows []float64, guess float64) (IRRResult, error) {
	if len(flows) < 2 {
		return IRRResult{}, fmt.Errorf("IRR needs at least two cash flows, got %d: %w", len(flows), calcerr.ErrInvalidInput)
	}

	r := mathutil.ToFraction(guess)
	for i := 0; i < constants.IRRMaxIterations; i++ {
		if r <= -1 || !mathutil.IsFinite(r) {
			return stopped(r, i, NonFiniteStep)
		}

		npv, slope := npvAndSlope(r, flows)
		if !mathutil.IsFinite(npv) || !mathutil.IsFinite(slope) {
			return stopped(r, i, NonFiniteStep)
		}
		if math.Abs(npv) < constants.IRRPrecision {
			return IRRResult{Rate: mathutil.ToPercent(r), Iterations: i + 1, Reason: Converged}, nil
		}
		if math.Abs(slope) < constants.IRRMinDerivative {
			return stopped(r, i+1, DerivativeVanished)
		}

		next := r - npv/slope
		if !mathutil.IsFinite(next) {
			return stopped(r, i+1, NonFiniteStep)
		}
		if math.Abs(next-r) < constants.IRRPrecision {
			return IRRResult{Rate: mathutil.ToPercent(next), Iterations: i + 1, Reason: Converged}, nil
		}
		r = next
	}

	return stopped(r, constants.IRRMaxIterations, IterationBudgetExceeded)
}

// stopped reports a failed solve. A non-finite last iterate is reported as 0
// so the result stays encodable; Reason carries the distinction.
func stopped(r float64, iterations int, reason Reason) (IRRResult, error) {
	if !mathutil.IsFinite(r) {
		r = 0
	}
	result := IRRResult{Rate: mathutil.ToPercent(r), Iterations: iterations, Reason: reason}
	return result, fmt.Errorf("IRR stopped after %d iterations (%s): %w", iterations, reason, calcerr.ErrNonConvergence)
}
