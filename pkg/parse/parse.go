// Package parse reads loosely formatted numeric text typed by users.
package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iwvelando/finance-calc/pkg/mathutil"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

var flowSeparators = regexp.MustCompile(`[,;\s]+`)

// Float reads the leading number in text. A comma is read as the decimal
// separator when the text has no period. Text without a leading number, or
// one outside the float64 range, reads as 0.
func Float(text string) float64 {
	value, ok := leading(normalizeDecimal(strings.TrimSpace(text)))
	if !ok {
		return 0
	}
	return value
}

// Flows reads a list of cash flows separated by commas, semicolons or
// whitespace. Entries that are not numbers are skipped.
func Flows(text string) []float64 {
	flows := []float64{}
	for _, field := range flowSeparators.Split(strings.TrimSpace(text), -1) {
		if value, ok := leading(field); ok {
			flows = append(flows, value)
		}
	}
	return flows
}

func normalizeDecimal(text string) string {
	if strings.Contains(text, ".") {
		return text
	}
	return strings.Replace(text, ",", ".", 1)
}

func leading(text string) (float64, bool) {
	match := numericPrefix.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil || !mathutil.IsFinite(value) {
		return 0, false
	}
	return value, true
}
