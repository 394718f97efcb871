// Package fixedincome compares a savings account, a taxable deposit indexed
// to the DI rate and a tax-exempt deposit indexed to the same rate, over one
// holding period on a 360-day commercial year.
package fixedincome

import (
	"fmt"
	"math"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/mathutil"
)

// Kind identifies an instrument in a Comparison.
type Kind string

const (
	// KindSavings is the savings account (poupança).
	KindSavings Kind = "savings"
	// KindTaxable covers CDB, RDB and LC deposits.
	KindTaxable Kind = "taxable"
	// KindTaxExempt covers LCI and LCA deposits.
	KindTaxExempt Kind = "tax-exempt"
)

// Input describes the investment. Rates are annual percentages; the
// instrument percentages are shares of the DI rate.
type Input struct {
	Principal      float64 `json:"principal" yaml:"principal"`
	Days           float64 `json:"days" yaml:"days"`
	DIRate         float64 `json:"diRate" yaml:"diRate"`
	SelicRate      float64 `json:"selicRate" yaml:"selicRate"`
	TaxablePercent float64 `json:"taxablePercent" yaml:"taxablePercent"`
	ExemptPercent  float64 `json:"exemptPercent" yaml:"exemptPercent"`
}

// DefaultInput mirrors the figures a new comparison starts from.
func DefaultInput() Input {
	return Input{
		Principal:      1000,
		Days:           360,
		DIRate:         14.90,
		SelicRate:      15.00,
		TaxablePercent: 100,
		ExemptPercent:  90,
	}
}

// InstrumentResult is the outcome of holding one instrument.
type InstrumentResult struct {
	Kind           Kind    `json:"kind"`
	GrossYield     float64 `json:"grossYield"`
	TaxAmount      float64 `json:"taxAmount"`
	NetYield       float64 `json:"netYield"`
	Total          float64 `json:"total"`
	PercentReturn  float64 `json:"percentReturn"`
	AppliedTaxRate float64 `json:"appliedTaxRate"`
}

// Comparison holds the three instruments side by side. TaxRate is the
// withholding rate for the holding period.
type Comparison struct {
	Days      float64          `json:"days"`
	TaxRate   float64          `json:"taxRate"`
	Savings   InstrumentResult `json:"savings"`
	Taxable   InstrumentResult `json:"taxable"`
	TaxExempt InstrumentResult `json:"taxExempt"`
}

// ByKind indexes the instruments by Kind.
func (c Comparison) ByKind() map[Kind]InstrumentResult {
	return map[Kind]InstrumentResult{
		KindSavings:   c.Savings,
		KindTaxable:   c.Taxable,
		KindTaxExempt: c.TaxExempt,
	}
}

// Compare evaluates the three instruments under policy.
func Compare(in Input, policy Policy) (Comparison, error) {
	if in.Days < 0 || !mathutil.IsFinite(in.Days) {
		return Comparison{}, fmt.Errorf("holding period of %v days: %w", in.Days, calcerr.ErrInvalidInput)
	}
	if err := policy.Validate(); err != nil {
		return Comparison{}, fmt.Errorf("invalid fixed-income policy: %w", err)
	}

	years := in.Days / constants.CommercialYearDays
	periodRate := math.Pow(1+mathutil.ToFraction(in.DIRate), years) - 1
	taxRate := policy.TaxSchedule.RateFor(in.Days)

	taxableGross := in.Principal * periodRate * mathutil.ToFraction(in.TaxablePercent)
	exemptGross := in.Principal * periodRate * mathutil.ToFraction(in.ExemptPercent)
	savingsGross := in.Principal * (math.Pow(1+policy.Savings.AnnualRate(in.SelicRate), years) - 1)

	return Comparison{
		Days:      in.Days,
		TaxRate:   taxRate,
		Savings:   instrument(KindSavings, in.Principal, savingsGross, 0),
		Taxable:   instrument(KindTaxable, in.Principal, taxableGross, taxRate),
		TaxExempt: instrument(KindTaxExempt, in.Principal, exemptGross, 0),
	}, nil
}

func instrument(kind Kind, principal, gross, taxRate float64) InstrumentResult {
	tax := 0.0
	if gross > 0 {
		tax = mathutil.ApplyPercentage(gross, taxRate)
	}
	net := gross - tax
	return InstrumentResult{
		Kind:           kind,
		GrossYield:     gross,
		TaxAmount:      tax,
		NetYield:       net,
		Total:          principal + net,
		PercentReturn:  mathutil.CalculatePercentage(net, principal),
		AppliedTaxRate: taxRate,
	}
}
