// Package rates normalizes rate and period inputs onto the monthly basis the
// calculators iterate on.
package rates

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/mathutil"
)

// Basis is the period a rate magnitude refers to.
type Basis string

const (
	Annual  Basis = "annual"
	Monthly Basis = "monthly"
)

// Unit is the unit a period count is expressed in.
type Unit string

const (
	Years  Unit = "years"
	Months Unit = "months"
)

// Kind selects how an annual rate is spread over months.
type Kind int

const (
	// Simple divides the annual rate linearly.
	Simple Kind = iota
	// Compound takes the effective monthly rate.
	Compound
)

func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Compound:
		return "compound"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// RateInput is a rate in percent units together with its basis.
type RateInput struct {
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	Basis     Basis   `json:"basis" yaml:"basis"`
}

// PeriodInput is a period count together with its unit.
type PeriodInput struct {
	Count float64 `json:"count" yaml:"count"`
	Unit  Unit    `json:"unit" yaml:"unit"`
}

// Normalized holds a monthly rate as a fraction and a period count in months.
type Normalized struct {
	MonthlyRate float64
	Months      float64
}

// ParseBasis maps user-facing spellings onto a Basis.
func ParseBasis(value string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "annual", "annually", "yearly", "year", "a.a.":
		return Annual, nil
	case "monthly", "month", "a.m.":
		return Monthly, nil
	default:
		return "", fmt.Errorf("unknown rate basis %q: %w", value, calcerr.ErrInvalidInput)
	}
}

// ParseUnit maps user-facing spellings onto a Unit.
func ParseUnit(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "years", "year", "y":
		return Years, nil
	case "months", "month", "m":
		return Months, nil
	default:
		return "", fmt.Errorf("unknown period unit %q: %w", value, calcerr.ErrInvalidInput)
	}
}

// MonthlyRate converts a rate to a monthly fraction. Annual rates become the
// effective monthly rate for Compound and one twelfth for Simple.
func MonthlyRate(rate RateInput, kind Kind) (float64, error) {
	r := mathutil.ToFraction(rate.Magnitude)
	switch rate.Basis {
	case Monthly:
		return r, nil
	case Annual:
		switch kind {
		case Simple:
			return r / constants.MonthsPerYear, nil
		case Compound:
			return EffectiveMonthly(r), nil
		default:
			return 0, fmt.Errorf("unknown calculation kind %s: %w", kind, calcerr.ErrInvalidInput)
		}
	default:
		return 0, fmt.Errorf("unknown rate basis %q: %w", rate.Basis, calcerr.ErrInvalidInput)
	}
}

// EffectiveMonthly converts an annual fraction to the monthly fraction that
// compounds to it over twelve months.
func EffectiveMonthly(annual float64) float64 {
	return math.Pow(1+annual, 1.0/constants.MonthsPerYear) - 1
}

// MonthCount converts a period to a month count. Fractional results are
// kept. Counts beyond MaxSchedulePeriods months are rejected.
func MonthCount(period PeriodInput) (float64, error) {
	if period.Count < 0 {
		return 0, fmt.Errorf("negative period count %v: %w", period.Count, calcerr.ErrInvalidInput)
	}
	var months float64
	switch period.Unit {
	case Years:
		months = period.Count * constants.MonthsPerYear
	case Months:
		months = period.Count
	default:
		return 0, fmt.Errorf("unknown period unit %q: %w", period.Unit, calcerr.ErrInvalidInput)
	}
	if months > constants.MaxSchedulePeriods {
		return 0, fmt.Errorf("period of %v months exceeds the limit of %d: %w",
			months, constants.MaxSchedulePeriods, calcerr.ErrInvalidInput)
	}
	return months, nil
}

// Normalize converts both inputs in one call.
func Normalize(rate RateInput, period PeriodInput, kind Kind) (Normalized, error) {
	monthly, err := MonthlyRate(rate, kind)
	if err != nil {
		return Normalized{}, err
	}
	months, err := MonthCount(period)
	if err != nil {
		return Normalized{}, err
	}
	return Normalized{MonthlyRate: monthly, Months: months}, nil
}

// WholeMonths returns months as an int, rejecting counts that are not
// integral.
func WholeMonths(months float64) (int, error) {
	if months > constants.MaxSchedulePeriods {
		return 0, fmt.Errorf("period of %v months exceeds the limit of %d: %w",
			months, constants.MaxSchedulePeriods, calcerr.ErrInvalidInput)
	}
	rounded := math.Round(months)
	if math.Abs(months-rounded) > 1e-9 {
		return 0, fmt.Errorf("period of %v months is not a whole number: %w", months, calcerr.ErrInvalidInput)
	}
	return int(rounded), nil
}
