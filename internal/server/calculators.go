package server

import (
	"fmt"
	"net/http"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/cashflow"
	"github.com/iwvelando/finance-calc/pkg/fixedincome"
	"github.com/iwvelando/finance-calc/pkg/interest"
	"github.com/iwvelando/finance-calc/pkg/loans"
	"github.com/iwvelando/finance-calc/pkg/mathutil"
	"github.com/iwvelando/finance-calc/pkg/percent"
	"github.com/iwvelando/finance-calc/pkg/returns"
	"github.com/iwvelando/finance-calc/pkg/tvm"
	"github.com/iwvelando/finance-calc/pkg/validation"
)

type growthRequest struct {
	PV      float64 `json:"pv" yaml:"pv"`
	FV      float64 `json:"fv" yaml:"fv"`
	Rate    float64 `json:"rate" yaml:"rate"`
	Periods float64 `json:"periods" yaml:"periods"`
}

type annuityRequest struct {
	Payment float64 `json:"payment" yaml:"payment"`
	Rate    float64 `json:"rate" yaml:"rate"`
	Periods float64 `json:"periods" yaml:"periods"`
	Timing  string  `json:"timing" yaml:"timing"`
}

type loanRequest struct {
	Principal float64 `json:"principal" yaml:"principal"`
	Rate      float64 `json:"rate" yaml:"rate"`
	Periods   int     `json:"periods" yaml:"periods"`
}

type npvRequest struct {
	Rate  float64   `json:"rate" yaml:"rate"`
	Flows []float64 `json:"flows" yaml:"flows"`
}

type irrRequest struct {
	Flows []float64 `json:"flows" yaml:"flows"`
	Guess *float64  `json:"guess,omitempty" yaml:"guess,omitempty"`
}

type percentRequest struct {
	Mode string  `json:"mode" yaml:"mode"`
	A    float64 `json:"a" yaml:"a"`
	B    float64 `json:"b" yaml:"b"`
}

type returnsRequest struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
	Years float64 `json:"years" yaml:"years"`
}

type inflationRequest struct {
	Value   float64 `json:"value" yaml:"value"`
	Rate    float64 `json:"rate" yaml:"rate"`
	Periods float64 `json:"periods" yaml:"periods"`
}

type depreciationRequest struct {
	Cost     float64 `json:"cost" yaml:"cost"`
	Residual float64 `json:"residual" yaml:"residual"`
	Life     float64 `json:"life" yaml:"life"`
}

type valueResult struct {
	Value float64 `json:"value"`
}

type depreciationResult struct {
	PerPeriod float64                   `json:"perPeriod"`
	Schedule  []returns.DepreciationRow `json:"schedule"`
}

func (h *handler) registerCalculators(mux *http.ServeMux) {
	mux.HandleFunc("/api/interest/simple", handleCalc(h, "interest/simple", nil, h.simpleInterest))
	mux.HandleFunc("/api/interest/compound", handleCalc(h, "interest/compound", nil, h.compoundInterest))
	mux.HandleFunc("/api/tvm/fv", handleCalc(h, "tvm/fv", nil, h.futureValue))
	mux.HandleFunc("/api/tvm/pv", handleCalc(h, "tvm/pv", nil, h.presentValue))
	mux.HandleFunc("/api/tvm/annuity-fv", handleCalc(h, "tvm/annuity-fv", nil, h.annuityFutureValue))
	mux.HandleFunc("/api/tvm/annuity-pv", handleCalc(h, "tvm/annuity-pv", nil, h.annuityPresentValue))
	mux.HandleFunc("/api/amortization/price", handleCalc(h, "amortization/price", nil, h.amortize(loans.MethodPrice)))
	mux.HandleFunc("/api/amortization/sac", handleCalc(h, "amortization/sac", nil, h.amortize(loans.MethodSAC)))
	mux.HandleFunc("/api/amortization/compare", handleCalc(h, "amortization/compare", nil, h.compareAmortization))
	mux.HandleFunc("/api/cashflow/npv", handleCalc(h, "cashflow/npv", nil, h.netPresentValue))
	mux.HandleFunc("/api/cashflow/irr", handleCalc(h, "cashflow/irr", nil, h.internalRateOfReturn))
	mux.HandleFunc("/api/percent", handleCalc(h, "percent", nil, h.percentage))
	mux.HandleFunc("/api/returns/cagr", handleCalc(h, "returns/cagr", nil, h.cagr))
	mux.HandleFunc("/api/returns/roi", handleCalc(h, "returns/roi", nil, h.roi))
	mux.HandleFunc("/api/returns/inflation", handleCalc(h, "returns/inflation", nil, h.inflation))
	mux.HandleFunc("/api/returns/depreciation", handleCalc(h, "returns/depreciation", nil, h.depreciation))
	mux.HandleFunc("/api/fixed-income", handleCalc(h, "fixed-income", fixedincome.DefaultInput, h.fixedIncome))
}

func (h *handler) accumulationResponse(result interest.Result, err error, in interest.Input) (response, error) {
	if err != nil {
		return response{}, err
	}
	var warnings []string
	if w := validation.ValidateRate("rate", in.Rate.Magnitude); w != "" {
		warnings = append(warnings, w)
	}
	return response{
		Result: result,
		Formatted: map[string]string{
			"total":    h.formatter.Currency(result.Total),
			"invested": h.formatter.Currency(result.Invested),
			"interest": h.formatter.Currency(result.Interest),
		},
		Warnings: warnings,
	}, nil
}

func (h *handler) simpleInterest(in interest.Input) (response, error) {
	result, err := interest.Simple(in)
	return h.accumulationResponse(result, err, in)
}

func (h *handler) compoundInterest(in interest.Input) (response, error) {
	result, err := interest.Compound(in)
	return h.accumulationResponse(result, err, in)
}

// requireFinite rejects results the inputs pushed outside the real numbers,
// such as a present value discounted at -100 %.
func requireFinite(name string, value float64) error {
	if !mathutil.IsFinite(value) {
		return fmt.Errorf("%s is %v for these inputs: %w", name, value, calcerr.ErrInvalidInput)
	}
	return nil
}

func (h *handler) currencyValue(value float64) (response, error) {
	if err := requireFinite("value", value); err != nil {
		return response{}, err
	}
	return response{
		Result:    valueResult{Value: value},
		Formatted: map[string]string{"value": h.formatter.Currency(value)},
	}, nil
}

func (h *handler) futureValue(req growthRequest) (response, error) {
	return h.currencyValue(tvm.FV(req.PV, req.Rate, req.Periods))
}

func (h *handler) presentValue(req growthRequest) (response, error) {
	return h.currencyValue(tvm.PV(req.FV, req.Rate, req.Periods))
}

func (h *handler) annuityFutureValue(req annuityRequest) (response, error) {
	timing, err := tvm.ParseTiming(req.Timing)
	if err != nil {
		return response{}, err
	}
	return h.currencyValue(tvm.AnnuityFV(req.Payment, req.Rate, req.Periods, timing))
}

func (h *handler) annuityPresentValue(req annuityRequest) (response, error) {
	timing, err := tvm.ParseTiming(req.Timing)
	if err != nil {
		return response{}, err
	}
	return h.currencyValue(tvm.AnnuityPV(req.Payment, req.Rate, req.Periods, timing))
}

func (h *handler) amortize(method loans.Method) calculator[loanRequest] {
	return func(req loanRequest) (response, error) {
		result, err := h.generator.Generate(method, req.Principal, req.Rate, req.Periods)
		if err != nil {
			return response{}, err
		}
		formatted := map[string]string{
			"totalInterest": h.formatter.Currency(result.TotalInterest),
			"totalPaid":     h.formatter.Currency(result.TotalPaid),
		}
		if method == loans.MethodPrice {
			formatted["fixedPayment"] = h.formatter.Currency(result.FixedPayment)
		} else {
			formatted["fixedAmortization"] = h.formatter.Currency(result.FixedAmortization)
		}
		return response{Result: result, Formatted: formatted}, nil
	}
}

func (h *handler) compareAmortization(in loans.CompareInput) (response, error) {
	comparison, err := h.generator.Compare(in)
	if err != nil {
		return response{}, err
	}
	var warnings []string
	if w := validation.ValidateDownPayment(in.PropertyValue, in.DownPayment); w != "" {
		warnings = append(warnings, w)
	}
	return response{
		Result: comparison,
		Formatted: map[string]string{
			"loanAmount":         h.formatter.Currency(comparison.LoanAmount),
			"monthlyRate":        h.formatter.Percent(comparison.MonthlyRate),
			"priceTotalInterest": h.formatter.Currency(comparison.Price.TotalInterest),
			"sacTotalInterest":   h.formatter.Currency(comparison.SAC.TotalInterest),
			"interestSavings":    h.formatter.Currency(comparison.InterestSavings),
		},
		Warnings: warnings,
	}, nil
}

func (h *handler) netPresentValue(req npvRequest) (response, error) {
	result := cashflow.NPV(req.Rate, req.Flows)
	return response{
		Result:    result,
		Formatted: map[string]string{"npv": h.formatter.Currency(result.NPV)},
	}, nil
}

func (h *handler) internalRateOfReturn(req irrRequest) (response, error) {
	guess := h.irrGuess
	if req.Guess != nil {
		guess = *req.Guess
	}
	result, err := cashflow.IRRWithGuess(req.Flows, guess)
	if err != nil {
		return response{}, err
	}
	return response{
		Result:    result,
		Formatted: map[string]string{"rate": h.formatter.Percent(result.Rate)},
	}, nil
}

func (h *handler) percentage(req percentRequest) (response, error) {
	mode, err := percent.ParseMode(req.Mode)
	if err != nil {
		return response{}, err
	}
	request, err := percent.NewRequest(mode, req.A, req.B)
	if err != nil {
		return response{}, err
	}
	result, err := percent.Calculate(request)
	if err != nil {
		return response{}, err
	}

	formatted := map[string]string{}
	switch mode {
	case percent.ModeProportion, percent.ModeDiscount:
		formatted["value"] = h.formatter.Percent(result.Value)
	default:
		formatted["value"] = h.formatter.Number(result.Value)
	}
	if mode == percent.ModeIncrease || mode == percent.ModeDiscount {
		formatted["amount"] = h.formatter.Number(result.Amount)
	}
	return response{Result: result, Formatted: formatted}, nil
}

func (h *handler) cagr(req returnsRequest) (response, error) {
	value := returns.CAGR(req.Start, req.End, req.Years)
	if err := requireFinite("growth rate", value); err != nil {
		return response{}, err
	}
	return response{
		Result:    valueResult{Value: value},
		Formatted: map[string]string{"value": h.formatter.Percent(value)},
	}, nil
}

func (h *handler) roi(req returnsRequest) (response, error) {
	value := returns.ROI(req.Start, req.End)
	return response{
		Result:    valueResult{Value: value},
		Formatted: map[string]string{"value": h.formatter.Percent(value)},
	}, nil
}

func (h *handler) inflation(req inflationRequest) (response, error) {
	return h.currencyValue(returns.Inflation(req.Value, req.Rate, req.Periods))
}

func (h *handler) depreciation(req depreciationRequest) (response, error) {
	perPeriod := returns.Depreciation(req.Cost, req.Residual, req.Life)
	schedule, err := returns.DepreciationSchedule(req.Cost, req.Residual, req.Life)
	if err != nil {
		return response{}, err
	}
	return response{
		Result:    depreciationResult{PerPeriod: perPeriod, Schedule: schedule},
		Formatted: map[string]string{"perPeriod": h.formatter.Currency(perPeriod)},
	}, nil
}

func (h *handler) fixedIncome(in fixedincome.Input) (response, error) {
	comparison, err := fixedincome.Compare(in, h.policy)
	if err != nil {
		return response{}, err
	}
	formatted := map[string]string{"taxRate": h.formatter.Number(comparison.TaxRate) + "%"}
	for kind, result := range comparison.ByKind() {
		formatted[string(kind)+".total"] = h.formatter.Currency(result.Total)
		formatted[string(kind)+".netYield"] = h.formatter.Currency(result.NetYield)
	}
	return response{
		Result:    comparison,
		Formatted: formatted,
		Warnings:  validation.ValidateHoldingPeriod(in.Days),
	}, nil
}
