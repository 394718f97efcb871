package datetime

import (
	"errors"
	"testing"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name     string
		dateStr  string
		expected string
	}{
		{name: "Valid date", dateStr: "2025-01-15", expected: "2025-01-15"},
		{name: "Leap day", dateStr: "2024-02-29", expected: "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(DateLayout, tt.dateStr)
			if result.Format(DateLayout) != tt.expected {
				t.Errorf("MustParseTime() = %s, expected %s", result.Format(DateLayout), tt.expected)
			}
		})
	}
}

func TestMustParseTimePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected MustParseTime to panic with invalid date")
		}
	}()

	MustParseTime(DateLayout, "invalid-date")
}

func TestDateBeforeDate(t *testing.T) {
	tests := []struct {
		name       string
		firstDate  string
		secondDate string
		expected   bool
		wantErr    bool
	}{
		{name: "Different years", firstDate: "2024-12-31", secondDate: "2025-01-01", expected: true},
		{name: "Same day", firstDate: "2025-03-10", secondDate: "2025-03-10", expected: false},
		{name: "Later first", firstDate: "2025-03-11", secondDate: "2025-03-10", expected: false},
		{name: "Invalid first", firstDate: "2025-13-01", secondDate: "2025-03-10", wantErr: true},
		{name: "Invalid second", firstDate: "2025-03-10", secondDate: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DateBeforeDate(tt.firstDate, tt.secondDate)
			if tt.wantErr {
				if !errors.Is(err, calcerr.ErrInvalidInput) {
					t.Errorf("DateBeforeDate() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DateBeforeDate() error = %v", err)
			}
			if result != tt.expected {
				t.Errorf("DateBeforeDate() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestHoldingDays(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected int
		wantErr  bool
	}{
		{name: "Same day", from: "2025-01-01", to: "2025-01-01", expected: 0},
		{name: "Calendar year", from: "2025-01-01", to: "2026-01-01", expected: 365},
		{name: "Leap year", from: "2024-01-01", to: "2025-01-01", expected: 366},
		{name: "Across February", from: "2025-02-01", to: "2025-03-01", expected: 28},
		{name: "Surrounding whitespace", from: " 2025-01-01", to: "2025-01-31 ", expected: 30},
		{name: "Redemption before application", from: "2025-02-01", to: "2025-01-01", wantErr: true},
		{name: "Malformed date", from: "01/02/2025", to: "2025-03-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := HoldingDays(tt.from, tt.to)
			if tt.wantErr {
				if !errors.Is(err, calcerr.ErrInvalidInput) {
					t.Errorf("HoldingDays() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("HoldingDays() error = %v", err)
			}
			if days != tt.expected {
				t.Errorf("HoldingDays() = %d, expected %d", days, tt.expected)
			}
		})
	}
}
