package loans

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/rates"
	"go.uber.org/zap"
)

func TestCompare(t *testing.T) {
	comparison, err := Compare(CompareInput{
		PropertyValue: 250000,
		DownPayment:   50000,
		Rate:          rates.RateInput{Magnitude: 12, Basis: rates.Annual},
		Period:        rates.PeriodInput{Count: 5, Unit: rates.Years},
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if comparison.LoanAmount != 200000 {
		t.Errorf("LoanAmount = %v, expected 200000", comparison.LoanAmount)
	}
	if comparison.Periods != 60 {
		t.Errorf("Periods = %d, expected 60", comparison.Periods)
	}
	if math.Abs(comparison.MonthlyRate-0.9488792934583046) > 1e-9 {
		t.Errorf("MonthlyRate = %v, expected the effective monthly rate", comparison.MonthlyRate)
	}
	if len(comparison.Price.Schedule) != 60 || len(comparison.SAC.Schedule) != 60 {
		t.Fatalf("expected 60 rows in both schedules")
	}

	// Both engines start from the same balance at the same rate.
	if comparison.Price.Schedule[0].Interest != comparison.SAC.Schedule[0].Interest {
		t.Errorf("first-period interest differs: PRICE %v, SAC %v",
			comparison.Price.Schedule[0].Interest, comparison.SAC.Schedule[0].Interest)
	}

	direct, err := Price(200000, comparison.MonthlyRate, 60)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if math.Abs(direct.FixedPayment-comparison.Price.FixedPayment) > 1e-6 {
		t.Errorf("comparator PRICE payment %v differs from direct %v", comparison.Price.FixedPayment, direct.FixedPayment)
	}

	if comparison.InterestSavings <= 0 {
		t.Errorf("SAC should pay less interest than PRICE, savings = %v", comparison.InterestSavings)
	}
}

func TestCompareClampsNegativeLoan(t *testing.T) {
	comparison, err := Compare(CompareInput{
		PropertyValue: 100000,
		DownPayment:   150000,
		Rate:          rates.RateInput{Magnitude: 1, Basis: rates.Monthly},
		Period:        rates.PeriodInput{Count: 12, Unit: rates.Months},
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if comparison.LoanAmount != 0 {
		t.Errorf("LoanAmount = %v, expected 0", comparison.LoanAmount)
	}
	if comparison.Price.TotalPaid != 0 || comparison.SAC.TotalPaid != 0 {
		t.Errorf("nothing financed should cost nothing: %+v", comparison)
	}
}

func TestCompareInvalidPeriods(t *testing.T) {
	tests := []struct {
		name   string
		period rates.PeriodInput
	}{
		{"Zero periods", rates.PeriodInput{Count: 0, Unit: rates.Years}},
		{"Fractional months", rates.PeriodInput{Count: 6.5, Unit: rates.Months}},
		{"Unknown unit", rates.PeriodInput{Count: 6, Unit: "weeks"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compare(CompareInput{
				PropertyValue: 1000,
				Rate:          rates.RateInput{Magnitude: 1, Basis: rates.Monthly},
				Period:        tt.period,
			})
			if !errors.Is(err, calcerr.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestScheduleGenerator(t *testing.T) {
	generator := NewScheduleGenerator(nil)

	if _, err := generator.Generate("german", 1000, 1, 10); !errors.Is(err, calcerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown method, got %v", err)
	}
	if _, err := generator.Generate(MethodSAC, 1000, 1, 0); !errors.Is(err, calcerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for zero periods, got %v", err)
	}

	result, err := generator.Generate(MethodSAC, 1200, 1, 12)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if result.Method != MethodSAC || result.FixedAmortization != 100 {
		t.Errorf("Generate() = %+v", result)
	}

	logged := NewScheduleGenerator(zap.NewExample())
	if _, err := logged.Compare(CompareInput{
		PropertyValue: 1000,
		Rate:          rates.RateInput{Magnitude: 1, Basis: rates.Monthly},
		Period:        rates.PeriodInput{Count: 1, Unit: rates.Years},
	}); err != nil {
		t.Errorf("Compare() error = %v", err)
	}
}

func TestParseMethod(t *testing.T) {
	if m, err := ParseMethod("PRICE"); err != nil || m != MethodPrice {
		t.Errorf("ParseMethod(PRICE) = %v, %v", m, err)
	}
	if m, err := ParseMethod("sac"); err != nil || m != MethodSAC {
		t.Errorf("ParseMethod(sac) = %v, %v", m, err)
	}
	if _, err := ParseMethod("bullet"); !errors.Is(err, calcerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
