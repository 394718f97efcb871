package tvm

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/mathutil"
)

func TestFV(t *testing.T) {
	result := FV(1000, 0.5, 12)
	if math.Abs(result-1061.6778118644984) > 1e-9 {
		t.Errorf("FV() = %v, expected 1061.6778118644984", result)
	}
}

func TestFVPVAreInverses(t *testing.T) {
	tests := []struct {
		name string
		pv   float64
		rate float64
		n    float64
	}{
		{"Small monthly rate", 1000, 0.5, 12},
		{"Large horizon", 250000, 1.2, 360},
		{"Zero rate", 42, 0, 10},
		{"Negative rate", 9000, -2, 5},
		{"Fractional periods", 1, 7.5, 2.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := PV(FV(tt.pv, tt.rate, tt.n), tt.rate, tt.n)
			if !mathutil.WithinRelativeTolerance(back, tt.pv, 1e-9) {
				t.Errorf("PV(FV(%v)) = %v", tt.pv, back)
			}
			forward := FV(PV(tt.pv, tt.rate, tt.n), tt.rate, tt.n)
			if !mathutil.WithinRelativeTolerance(forward, tt.pv, 1e-9) {
				t.Errorf("FV(PV(%v)) = %v", tt.pv, forward)
			}
		})
	}
}

func TestAnnuities(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(pmt, rate, n float64, timing Timing) float64
		pmt      float64
		rate     float64
		n        float64
		timing   Timing
		expected float64
	}{
		{"FV post", AnnuityFV, 500, 0.8, 36, Post, 20764.364798924642},
		{"FV pre", AnnuityFV, 500, 0.8, 36, Pre, 20764.364798924642 * 1.008},
		{"PV post", AnnuityPV, 1000, 1, 12, Post, 11255.077473484642},
		{"PV pre", AnnuityPV, 1000, 1, 12, Pre, 11255.077473484642 * 1.01},
		{"FV zero rate", AnnuityFV, 500, 0, 36, Post, 18000},
		{"PV zero rate", AnnuityPV, 1000, 0, 12, Post, 12000},
		{"FV zero rate pre is still linear", AnnuityFV, 500, 0, 36, Pre, 18000},
		{"PV zero rate pre is still linear", AnnuityPV, 1000, 0, 12, Pre, 12000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn(tt.pmt, tt.rate, tt.n, tt.timing)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("got %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestAnnuityPVGrowsToAnnuityFV(t *testing.T) {
	pv := AnnuityPV(750, 0.9, 48, Post)
	fv := AnnuityFV(750, 0.9, 48, Post)
	if !mathutil.WithinRelativeTolerance(FV(pv, 0.9, 48), fv, 1e-9) {
		t.Errorf("FV(AnnuityPV) = %v, expected AnnuityFV %v", FV(pv, 0.9, 48), fv)
	}
}

func TestParseTiming(t *testing.T) {
	tests := map[string]Timing{"": Post, "post": Post, "END": Post, "pre": Pre, "due": Pre}
	for input, expected := range tests {
		got, err := ParseTiming(input)
		if err != nil || got != expected {
			t.Errorf("ParseTiming(%q) = %v, %v; expected %v", input, got, err, expected)
		}
	}
	if _, err := ParseTiming("sometimes"); !errors.Is(err, calcerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
