package percent

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
)

// Mode names a percentage calculation.
type Mode string

const (
	ModeValue      Mode = "value"
	ModeProportion Mode = "proportion"
	ModeIncrease   Mode = "increase"
	ModeDiscount   Mode = "discount"
)

// Request is one of ValueOf, ProportionOf, IncreaseBy or DiscountFrom.
type Request interface {
	Mode() Mode
}

// ValueOf asks for Percent percent of Total.
type ValueOf struct {
	Total   float64 `json:"total"`
	Percent float64 `json:"percent"`
}

// ProportionOf asks what percent Part is of Total.
type ProportionOf struct {
	Part  float64 `json:"part"`
	Total float64 `json:"total"`
}

// IncreaseBy asks for Value raised by Percent percent.
type IncreaseBy struct {
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

// DiscountFrom asks for the discount from Original to Final.
type DiscountFrom struct {
	Original float64 `json:"original"`
	Final    float64 `json:"final"`
}

func (ValueOf) Mode() Mode      { return ModeValue }
func (ProportionOf) Mode() Mode { return ModeProportion }
func (IncreaseBy) Mode() Mode   { return ModeIncrease }
func (DiscountFrom) Mode() Mode { return ModeDiscount }

// Result carries the figures a mode produces. Value is the headline number:
// the amount for ModeValue, the percent for ModeProportion, the new total for
// ModeIncrease and the discount percent for ModeDiscount. Amount is the
// increase or discount amount where one exists.
type Result struct {
	Mode   Mode    `json:"mode"`
	Value  float64 `json:"value"`
	Amount float64 `json:"amount,omitempty"`
}

// Calculate resolves a Request.
func Calculate(req Request) (Result, error) {
	switch r := req.(type) {
	case ValueOf:
		return Result{Mode: ModeValue, Value: Value(r.Total, r.Percent)}, nil
	case ProportionOf:
		return Result{Mode: ModeProportion, Value: Proportion(r.Part, r.Total)}, nil
	case IncreaseBy:
		inc := Increase(r.Value, r.Percent)
		return Result{Mode: ModeIncrease, Value: inc.Total, Amount: inc.Increase}, nil
	case DiscountFrom:
		d := Discount(r.Original, r.Final)
		return Result{Mode: ModeDiscount, Value: d.Percent, Amount: d.Amount}, nil
	case nil:
		return Result{}, fmt.Errorf("missing percentage request: %w", calcerr.ErrInvalidInput)
	default:
		return Result{}, fmt.Errorf("unsupported percentage request %T: %w", req, calcerr.ErrInvalidInput)
	}
}

// ParseMode maps a user-facing name onto a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeValue, "of":
		return ModeValue, nil
	case ModeProportion, "ratio":
		return ModeProportion, nil
	case ModeIncrease, "raise":
		return ModeIncrease, nil
	case ModeDiscount, "decrease":
		return ModeDiscount, nil
	default:
		return "", fmt.Errorf("unknown percentage mode %q: %w", value, calcerr.ErrInvalidInput)
	}
}

// NewRequest builds the variant for mode from two positional operands, in
// the order each variant declares its fields.
func NewRequest(mode Mode, a, b float64) (Request, error) {
	switch mode {
	case ModeValue:
		return ValueOf{Total: a, Percent: b}, nil
	case ModeProportion:
		return ProportionOf{Part: a, Total: b}, nil
	case ModeIncrease:
		return IncreaseBy{Value: a, Percent: b}, nil
	case ModeDiscount:
		return DiscountFrom{Original: a, Final: b}, nil
	default:
		return nil, fmt.Errorf("unknown percentage mode %q: %w", mode, calcerr.ErrInvalidInput)
	}
}
