package rates

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
)

func TestMonthlyRate(t *testing.T) {
	tests := []struct {
		name     string
		rate     RateInput
		kind     Kind
		expected float64
	}{
		{"Annual simple is linear", RateInput{12, Annual}, Simple, 0.01},
		{"Annual compound is effective", RateInput{12, Annual}, Compound, 0.009488792934583046},
		{"Monthly simple unchanged", RateInput{1, Monthly}, Simple, 0.01},
		{"Monthly compound unchanged", RateInput{1, Monthly}, Compound, 0.01},
		{"Negative annual simple", RateInput{-6, Annual}, Simple, -0.005},
		{"Zero rate", RateInput{0, Annual}, Compound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MonthlyRate(tt.rate, tt.kind)
			if err != nil {
				t.Fatalf("MonthlyRate() error = %v", err)
			}
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("MonthlyRate() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestMonthlyRateCompoundsBackToAnnual(t *testing.T) {
	monthly, err := MonthlyRate(RateInput{Magnitude: 10.5, Basis: Annual}, Compound)
	if err != nil {
		t.Fatalf("MonthlyRate() error = %v", err)
	}
	annual := math.Pow(1+monthly, 12) - 1
	if math.Abs(annual-0.105) > 1e-12 {
		t.Errorf("compounded monthly rate = %v, expected 0.105", annual)
	}
}

func TestMonthlyRateUnknownBasis(t *testing.T) {
	_, err := MonthlyRate(RateInput{Magnitude: 1, Basis: "weekly"}, Compound)
	if !errors.Is(err, calcerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMonthCount(t *testing.T) {
	tests := []struct {
		name      string
		period    PeriodInput
		expected  float64
		wantError bool
	}{
		{"Years", PeriodInput{2, Years}, 24, false},
		{"Months", PeriodInput{7, Months}, 7, false},
		{"Fractional years", PeriodInput{1.5, Years}, 18, false},
		{"Fractional months propagate", PeriodInput{6.5, Months}, 6.5, false},
		{"Zero", PeriodInput{0, Years}, 0, false},
		{"Negative", PeriodInput{-1, Months}, 0, true},
		{"Unknown unit", PeriodInput{1, "weeks"}, 0, true},
		{"Longest schedule", PeriodInput{1000, Years}, 12000, false},
		{"Beyond the schedule limit", PeriodInput{12001, Months}, 0, true},
		{"Count that overflows an int", PeriodInput{1e19, Months}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MonthCount(tt.period)
			if tt.wantError {
				if !errors.Is(err, calcerr.ErrInvalidInput) {
					t.Errorf("MonthCount() expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("MonthCount() error = %v", err)
			}
			if result != tt.expected {
				t.Errorf("MonthCount() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestParseBasisAndUnit(t *testing.T) {
	if b, err := ParseBasis(" Yearly "); err != nil || b != Annual {
		t.Errorf("ParseBasis(yearly) = %v, %v", b, err)
	}
	if b, err := ParseBasis("monthly"); err != nil || b != Monthly {
		t.Errorf("ParseBasis(monthly) = %v, %v", b, err)
	}
	if _, err := ParseBasis("daily"); !errors.Is(err, calcerr.ErrInvalidInput) {
		t.Errorf("ParseBasis(daily) expected ErrInvalidInput, got %v", err)
	}
	if u, err := ParseUnit("YEAR"); err != nil || u != Years {
		t.Errorf("ParseUnit(YEAR) = %v, %v", u, err)
	}
	if _, err := ParseUnit("fortnights"); !errors.Is(err, calcerr.ErrInvalidInput) {
		t.Errorf("ParseUnit(fortnights) expected ErrInvalidInput, got %v", err)
	}
}

func TestWholeMonths(t *testing.T) {
	if n, err := WholeMonths(60); err != nil || n != 60 {
		t.Errorf("WholeMonths(60) = %d, %v", n, err)
	}
	if n, err := WholeMonths(2.5 * 12); err != nil || n != 30 {
		t.Errorf("WholeMonths(30) = %d, %v", n, err)
	}
	if _, err := WholeMonths(6.5); !errors.Is(err, calcerr.ErrInvalidInput) {
		t.Errorf("WholeMonths(6.5) expected ErrInvalidInput, got %v", err)
	}
	if _, err := WholeMonths(1e19); !errors.Is(err, calcerr.ErrInvalidInput) {
		t.Errorf("WholeMonths(1e19) expected ErrInvalidInput, got %v", err)
	}
}
