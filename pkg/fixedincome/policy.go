package fixedincome

import (
	"fmt"
	"math"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/mathutil"
)

// TaxBracket applies Rate (percent) to holdings of up to MaxDays days. A
// MaxDays of 0 marks the open-ended final bracket.
type TaxBracket struct {
	MaxDays float64 `json:"maxDays" yaml:"maxDays" mapstructure:"maxDays"`
	Rate    float64 `json:"rate" yaml:"rate" mapstructure:"rate"`
}

// TaxSchedule is a regressive withholding table ordered by holding period.
type TaxSchedule []TaxBracket

// RateFor returns the withholding rate, in percent, for a holding period.
func (s TaxSchedule) RateFor(days float64) float64 {
	for _, b := range s {
		if b.MaxDays == 0 || days <= b.MaxDays {
			return b.Rate
		}
	}
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Rate
}

// Validate checks the thresholds ascend and the table ends with an open
// bracket.
func (s TaxSchedule) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("tax schedule is empty: %w", calcerr.ErrInvalidInput)
	}
	prev := 0.0
	for i, b := range s {
		if b.Rate < 0 || b.Rate > constants.PercentageMultiplier {
			return fmt.Errorf("tax bracket %d rate %.2f outside 0-100: %w", i, b.Rate, calcerr.ErrInvalidInput)
		}
		last := i == len(s)-1
		if last {
			if b.MaxDays != 0 {
				return fmt.Errorf("tax schedule must end with an open bracket (maxDays 0): %w", calcerr.ErrInvalidInput)
			}
			continue
		}
		if b.MaxDays <= prev {
			return fmt.Errorf("tax bracket %d threshold %.0f does not ascend: %w", i, b.MaxDays, calcerr.ErrInvalidInput)
		}
		prev = b.MaxDays
	}
	return nil
}

// SavingsRule derives the savings account yield from the SELIC rate. Above
// SelicThreshold the account pays MonthlyRate per month; otherwise it pays
// SelicShare percent of SELIC. All fields are in percent.
type SavingsRule struct {
	SelicThreshold float64 `json:"selicThreshold" yaml:"selicThreshold" mapstructure:"selicThreshold"`
	MonthlyRate    float64 `json:"monthlyRate" yaml:"monthlyRate" mapstructure:"monthlyRate"`
	SelicShare     float64 `json:"selicShare" yaml:"selicShare" mapstructure:"selicShare"`
}

// AnnualRate returns the savings yield for a year as a fraction.
func (r SavingsRule) AnnualRate(selic float64) float64 {
	if selic > r.SelicThreshold {
		return math.Pow(1+mathutil.ToFraction(r.MonthlyRate), constants.MonthsPerYear) - 1
	}
	return mathutil.ToFraction(selic) * mathutil.ToFraction(r.SelicShare)
}

// Policy holds the rules the comparison is evaluated under.
type Policy struct {
	TaxSchedule TaxSchedule `json:"taxSchedule" yaml:"taxSchedule" mapstructure:"taxSchedule"`
	Savings     SavingsRule `json:"savings" yaml:"savings" mapstructure:"savings"`
}

// DefaultPolicy returns the regressive income tax table and the current
// savings remuneration rule.
func DefaultPolicy() Policy {
	return Policy{
		TaxSchedule: TaxSchedule{
			{MaxDays: 180, Rate: 22.5},
			{MaxDays: 360, Rate: 20},
			{MaxDays: 720, Rate: 17.5},
			{MaxDays: 0, Rate: 15},
		},
		Savings: SavingsRule{
			SelicThreshold: 8.5,
			MonthlyRate:    0.5,
			SelicShare:     70,
		},
	}
}

// Validate checks the tax schedule and the savings rule.
func (p Policy) Validate() error {
	if err := p.TaxSchedule.Validate(); err != nil {
		return err
	}
	if p.Savings.SelicShare < 0 || p.Savings.MonthlyRate < 0 {
		return fmt.Errorf("savings rule rates must not be negative: %w", calcerr.ErrInvalidInput)
	}
	return nil
}
