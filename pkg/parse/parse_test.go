package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected float64
	}{
		{"Integer", "1000", 1000},
		{"Decimal point", "14.90", 14.9},
		{"Decimal comma", "14,90", 14.9},
		{"Surrounding space", "  360 ", 360},
		{"Negative", "-250.5", -250.5},
		{"Exponent", "1e3", 1000},
		{"Leading fraction", ".5", 0.5},
		{"Trailing text", "12abc", 12},
		{"Grouped thousands read up to the comma", "1.234,56", 1.234},
		{"Empty", "", 0},
		{"Garbage", "abc", 0},
		{"Out of range", "1e999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float(tt.text); got != tt.expected {
				t.Errorf("Float(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestFlows(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []float64
	}{
		{"Commas", "-1000, 200, 300, 400, 500", []float64{-1000, 200, 300, 400, 500}},
		{"Semicolons and spaces", "-1000;200 300", []float64{-1000, 200, 300}},
		{"Malformed entries skipped", "-1000, x, 300,,", []float64{-1000, 300}},
		{"Empty", "", []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, Flows(tt.text)); diff != "" {
				t.Errorf("Flows(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}
