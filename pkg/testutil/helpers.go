// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/iwvelando/finance-calc/pkg/schedule"
)

// FindRow finds a schedule row by its period index.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(rows []schedule.Row, index int) *schedule.Row {
	for i := range rows {
		if rows[i].Index == index {
			return &rows[i]
		}
	}
	return nil
}

// Approx compares floats within a relative tolerance of 1e-9. Values near
// zero also match within an absolute 1e-9.
func Approx() cmp.Option {
	return ApproxWithin(1e-9)
}

// ApproxWithin compares floats within the given relative tolerance.
func ApproxWithin(fraction float64) cmp.Option {
	return cmpopts.EquateApprox(fraction, 1e-9)
}
