package validation

import (
	"fmt"

	"github.com/iwvelando/finance-calc/pkg/constants"
)

// ShortHoldingDays is the holding period below which fixed-income
// redemptions also pay IOF.
const ShortHoldingDays = 30

// ValidateDownPayment warns when the down payment leaves nothing to finance.
func ValidateDownPayment(propertyValue, downPayment float64) string {
	if downPayment >= propertyValue {
		return fmt.Sprintf("down payment (%.2f) covers the property value (%.2f) - loan amount is zero",
			downPayment, propertyValue)
	}
	return ""
}

// ValidateHoldingPeriod returns warnings for holding periods the fixed-income
// comparison does not fully model.
func ValidateHoldingPeriod(days float64) []string {
	var warnings []string

	if days == 0 {
		warnings = append(warnings, "holding period is zero days - every instrument yields nothing")
	} else if days > 0 && days < ShortHoldingDays {
		warnings = append(warnings, fmt.Sprintf("holding period of %.0f days is under %d - IOF is not included",
			days, ShortHoldingDays))
	}

	return warnings
}

// ValidateRate warns about rates that look like they were typed as a
// fraction or with an extra digit.
func ValidateRate(label string, rate float64) string {
	if rate > constants.PercentageMultiplier {
		return fmt.Sprintf("%s of %.2f%% is above 100%% - rates are read in percent units", label, rate)
	}
	return ""
}
