package loans

import (
	"fmt"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"go.uber.org/zap"
)

// ScheduleGenerator runs the amortization engines and logs what it produced.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// Generate builds the schedule for the requested method.
func (g *ScheduleGenerator) Generate(method Method, loan, rate float64, periods int) (Result, error) {
	var (
		result Result
		err    error
	)
	switch method {
	case MethodPrice:
		result, err = Price(loan, rate, periods)
	case MethodSAC:
		result, err = SAC(loan, rate, periods)
	default:
		return Result{}, fmt.Errorf("unknown amortization method %q: %w", method, calcerr.ErrInvalidInput)
	}
	if err != nil {
		g.logger.Debug("amortization rejected",
			zap.String("op", "loans.Generate"),
			zap.String("method", string(method)),
			zap.Int("periods", periods),
			zap.Error(err),
		)
		return Result{}, err
	}

	g.logger.Debug(fmt.Sprintf("generated %s schedule of %d periods for loan %.2f", method, periods, loan),
		zap.String("op", "loans.Generate"),
		zap.Float64("rate", rate),
		zap.Float64("totalInterest", result.TotalInterest),
		zap.Float64("totalPaid", result.TotalPaid),
	)
	return result, nil
}

// Compare runs Compare and logs the outcome.
func (g *ScheduleGenerator) Compare(in CompareInput) (Comparison, error) {
	comparison, err := Compare(in)
	if err != nil {
		g.logger.Debug("amortization comparison rejected",
			zap.String("op", "loans.Compare"),
			zap.Error(err),
		)
		return Comparison{}, err
	}

	g.logger.Debug(fmt.Sprintf("compared PRICE and SAC over %d periods for loan %.2f", comparison.Periods, comparison.LoanAmount),
		zap.String("op", "loans.Compare"),
		zap.Float64("monthlyRate", comparison.MonthlyRate),
		zap.Float64("interestSavings", comparison.InterestSavings),
	)
	return comparison, nil
}

// ParseMethod maps a user-facing name onto a Method.
func ParseMethod(value string) (Method, error) {
	switch Method(value) {
	case MethodPrice, "PRICE", "french":
		return MethodPrice, nil
	case MethodSAC, "SAC", "constant":
		return MethodSAC, nil
	default:
		return "", fmt.Errorf("unknown amortization method %q: %w", value, calcerr.ErrInvalidInput)
	}
}
