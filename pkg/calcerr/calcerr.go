// Package calcerr defines the error conditions the calculation engine can
// signal. Packages wrap these sentinels so callers can test with errors.Is.
package calcerr

import "errors"

var (
	// ErrInvalidInput marks a configuration that no formula can evaluate,
	// such as an amortization over zero periods or an unknown rate basis.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNonConvergence marks an iterative solver that stopped without
	// reaching its precision target.
	ErrNonConvergence = errors.New("did not converge")
)
