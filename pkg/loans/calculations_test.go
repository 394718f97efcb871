package loans

import (
	"errors"
	"math"
	"testing"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/schedule"
)

func TestCalculateFixedPayment(t *testing.T) {
	tests := []struct {
		name          string
		loan          float64
		periodicRate  float64
		periods       int
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "Standard 30-year mortgage",
			loan:          240000,
			periodicRate:  0.005,
			periods:       360,
			expectedRange: []float64{1438, 1440}, // Around 1438.92
		},
		{
			name:          "Five year financing at 1% a month",
			loan:          200000,
			periodicRate:  0.01,
			periods:       60,
			expectedRange: []float64{4448.88, 4448.90},
		},
		{
			name:          "Zero interest loan",
			loan:          10000,
			periodicRate:  0,
			periods:       60,
			expectedRange: []float64{166.66, 166.67},
		},
		{
			name:          "Nothing financed",
			loan:          0,
			periodicRate:  0.01,
			periods:       12,
			expectedRange: []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateFixedPayment(tt.loan, tt.periodicRate, tt.periods)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("CalculateFixedPayment() = %.4f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestPriceSchedule(t *testing.T) {
	result, err := Price(200000, 1, 60)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}

	if len(result.Schedule) != 60 {
		t.Fatalf("expected 60 rows, got %d", len(result.Schedule))
	}
	if result.FixedAmortization != 0 {
		t.Errorf("PRICE result should not carry a fixed amortization, got %v", result.FixedAmortization)
	}
	if math.Abs(result.FixedPayment-4448.889536980352) > 1e-6 {
		t.Errorf("FixedPayment = %v, expected 4448.889536980352", result.FixedPayment)
	}

	sumInterest, sumPrincipal := 0.0, 0.0
	previous := 200000.0
	for i, row := range result.Schedule {
		if row.Index != i+1 {
			t.Errorf("row %d has index %d", i, row.Index)
		}
		if math.Abs(row.Payment-(row.Interest+row.Principal)) > 1e-9 {
			t.Errorf("row %d: payment %v != interest %v + principal %v", row.Index, row.Payment, row.Interest, row.Principal)
		}
		if row.Balance > previous {
			t.Errorf("row %d: balance increased from %v to %v", row.Index, previous, row.Balance)
		}
		previous = row.Balance
		sumInterest += row.Interest
		sumPrincipal += row.Principal
	}

	if math.Abs(sumInterest+sumPrincipal-result.FixedPayment*60) > 1e-6 {
		t.Errorf("interest + principal = %v, expected %v", sumInterest+sumPrincipal, result.FixedPayment*60)
	}
	if schedule.Last(result.Schedule).Balance != 0 {
		t.Errorf("final balance = %v, expected 0", schedule.Last(result.Schedule).Balance)
	}
	if math.Abs(result.TotalInterest-66933.37221882133) > 1e-4 {
		t.Errorf("TotalInterest = %v, expected 66933.37", result.TotalInterest)
	}
	if math.Abs(result.TotalPaid-266933.37221882114) > 1e-4 {
		t.Errorf("TotalPaid = %v, expected 266933.37", result.TotalPaid)
	}
}

func TestSACSchedule(t *testing.T) {
	result, err := SAC(200000, 1, 60)
	if err != nil {
		t.Fatalf("SAC() error = %v", err)
	}

	if result.FixedPayment != 0 {
		t.Errorf("SAC result should not carry a fixed payment, got %v", result.FixedPayment)
	}
	if math.Abs(result.FixedAmortization-3333.3333333333335) > 1e-9 {
		t.Errorf("FixedAmortization = %v", result.FixedAmortization)
	}

	for i, row := range result.Schedule {
		if math.Abs(row.Principal-result.FixedAmortization) > 1e-9 {
			t.Errorf("row %d principal %v differs from %v", row.Index, row.Principal, result.FixedAmortization)
		}
		if math.Abs(row.Payment-(row.Interest+row.Principal)) > 1e-9 {
			t.Errorf("row %d: payment %v != interest + principal", row.Index, row.Payment)
		}
		if i > 0 && row.Payment >= result.Schedule[i-1].Payment {
			t.Errorf("row %d payment %v did not decrease from %v", row.Index, row.Payment, result.Schedule[i-1].Payment)
		}
	}

	if schedule.Last(result.Schedule).Balance != 0 {
		t.Errorf("final balance = %v, expected 0", schedule.Last(result.Schedule).Balance)
	}
	if math.Abs(result.TotalInterest-61000) > 1e-6 {
		t.Errorf("TotalInterest = %v, expected 61000", result.TotalInterest)
	}
	if math.Abs(result.TotalPaid-261000) > 1e-6 {
		t.Errorf("TotalPaid = %v, expected 261000", result.TotalPaid)
	}
}

func TestZeroRateAmortization(t *testing.T) {
	priceResult, err := Price(12000, 0, 12)
	if err != nil {
		t.Fatalf("Price() error = %v", err)
	}
	if priceResult.FixedPayment != 1000 || priceResult.TotalInterest != 0 {
		t.Errorf("zero-rate PRICE = %+v", priceResult)
	}

	sacResult, err := SAC(12000, 0, 12)
	if err != nil {
		t.Fatalf("SAC() error = %v", err)
	}
	for _, row := range sacResult.Schedule {
		if row.Payment != 1000 {
			t.Errorf("zero-rate SAC row %d payment = %v", row.Index, row.Payment)
		}
	}
}

func TestInvalidPeriods(t *testing.T) {
	for name, fn := range map[string]func(float64, float64, int) (Result, error){"price": Price, "sac": SAC} {
		t.Run(name, func(t *testing.T) {
			for _, periods := range []int{0, -3, 12001, math.MaxInt32} {
				if _, err := fn(1000, 1, periods); !errors.Is(err, calcerr.ErrInvalidInput) {
					t.Errorf("periods=%d: expected ErrInvalidInput, got %v", periods, err)
				}
			}
		})
	}
}
