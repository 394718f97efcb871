// Package tvm implements the time-value-of-money primitives. Rates are per
// period and expressed in percent.
package tvm

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/mathutil"
)

// Timing says whether annuity payments fall at the end (Post) or the start
// (Pre) of each period.
type Timing string

const (
	Post Timing = "post"
	Pre  Timing = "pre"
)

// ParseTiming maps user-facing spellings onto a Timing. An empty value means
// an ordinary (Post) annuity.
func ParseTiming(value string) (Timing, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "post", "end", "ordinary":
		return Post, nil
	case "pre", "begin", "beginning", "due":
		return Pre, nil
	default:
		return "", fmt.Errorf("unknown annuity timing %q: %w", value, calcerr.ErrInvalidInput)
	}
}

// FV grows a present value over n periods: PV(1+r)^n.
func FV(pv, rate, n float64) float64 {
	return pv * math.Pow(1+mathutil.ToFraction(rate), n)
}

// PV discounts a future value over n periods: FV/(1+r)^n.
func PV(fv, rate, n float64) float64 {
	return fv / math.Pow(1+mathutil.ToFraction(rate), n)
}

// AnnuityFV is the accumulated value of n equal payments.
func AnnuityFV(pmt, rate, n float64, timing Timing) float64 {
	r := mathutil.ToFraction(rate)
	if r == 0 {
		return pmt * n
	}
	fv := pmt * (math.Pow(1+r, n) - 1) / r
	if timing == Pre {
		fv *= 1 + r
	}
	return fv
}

// AnnuityPV is the present value of n equal payments.
func AnnuityPV(pmt, rate, n float64, timing Timing) float64 {
	r := mathutil.ToFraction(rate)
	if r == 0 {
		return pmt * n
	}
	pv := pmt * (1 - math.Pow(1+r, -n)) / r
	if timing == Pre {
		pv *= 1 + r
	}
	return pv
}
