package main

import (
	"github.com/spf13/cobra"

	"github.com/iwvelando/finance-calc/pkg/interest"
	"github.com/iwvelando/finance-calc/pkg/output"
	"github.com/iwvelando/finance-calc/pkg/parse"
	"github.com/iwvelando/finance-calc/pkg/rates"
	"github.com/iwvelando/finance-calc/pkg/tvm"
	"github.com/iwvelando/finance-calc/pkg/validation"
)

type accumulationFlags struct {
	principal    *string
	contribution *string
	rate         *string
	basis        *string
	period       *string
	unit         *string
}

func bindAccumulationFlags(cmd *cobra.Command) accumulationFlags {
	return accumulationFlags{
		principal:    cmd.Flags().String("principal", "0", "initial amount"),
		contribution: cmd.Flags().String("contribution", "0", "amount added at the end of every month"),
		rate:         cmd.Flags().String("rate", "0", "interest rate in percent"),
		basis:        cmd.Flags().String("basis", string(rates.Annual), "rate basis: annual, monthly"),
		period:       cmd.Flags().String("period", "0", "length of the accumulation"),
		unit:         cmd.Flags().String("unit", string(rates.Years), "period unit: years, months"),
	}
}

func (f accumulationFlags) input() (interest.Input, error) {
	basis, err := rates.ParseBasis(*f.basis)
	if err != nil {
		return interest.Input{}, err
	}
	unit, err := rates.ParseUnit(*f.unit)
	if err != nil {
		return interest.Input{}, err
	}
	return interest.Input{
		Principal:           parse.Float(*f.principal),
		MonthlyContribution: parse.Float(*f.contribution),
		Rate:                rates.RateInput{Magnitude: parse.Float(*f.rate), Basis: basis},
		Period:              rates.PeriodInput{Count: parse.Float(*f.period), Unit: unit},
	}, nil
}

func newAccumulationCommand(a *app, use, short, title string, run func(interest.Input) (interest.Result, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
	}
	flags := bindAccumulationFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		in, err := flags.input()
		if err != nil {
			return err
		}
		a.warn("main."+use, validation.ValidateRate("rate", in.Rate.Magnitude))

		result, err := run(in)
		if err != nil {
			return err
		}
		return a.write(output.Report{
			Title: title,
			Summary: []output.Field{
				{Label: "Total", Value: result.Total, Kind: output.Currency},
				{Label: "Invested", Value: result.Invested, Kind: output.Currency},
				{Label: "Interest", Value: result.Interest, Kind: output.Currency},
				{Label: "Monthly rate", Value: result.MonthlyRate * 100, Kind: output.Percent},
				{Label: "Months", Value: result.Months, Kind: output.Number},
			},
			Table: output.AccumulationTable(result.Schedule),
		})
	}
	return cmd
}

func newSimpleCommand(a *app) *cobra.Command {
	return newAccumulationCommand(a, "simple", "Accumulate a principal and contributions under simple interest",
		"Simple interest", interest.Simple)
}

func newCompoundCommand(a *app) *cobra.Command {
	return newAccumulationCommand(a, "compound", "Accumulate a principal and contributions under compound interest",
		"Compound interest", interest.Compound)
}

func newValueCommand(a *app, use, short, title, amountFlag, amountUsage string, run func(amount, rate, periods float64) float64) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
	}
	amount := cmd.Flags().String(amountFlag, "0", amountUsage)
	rate := cmd.Flags().String("rate", "0", "rate per period in percent")
	periods := cmd.Flags().String("periods", "0", "number of periods")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		value := run(parse.Float(*amount), parse.Float(*rate), parse.Float(*periods))
		return a.write(output.Report{
			Title:   title,
			Summary: []output.Field{{Label: "Value", Value: value, Kind: output.Currency}},
		})
	}
	return cmd
}

func newFVCommand(a *app) *cobra.Command {
	return newValueCommand(a, "fv", "Grow a present value to its future value", "Future value",
		"pv", "present value", tvm.FV)
}

func newPVCommand(a *app) *cobra.Command {
	return newValueCommand(a, "pv", "Discount a future value to its present value", "Present value",
		"fv", "future value", tvm.PV)
}

func newAnnuityCommand(a *app, use, short, title string, run func(pmt, rate, n float64, timing tvm.Timing) float64) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
	}
	payment := cmd.Flags().String("payment", "0", "payment per period")
	rate := cmd.Flags().String("rate", "0", "rate per period in percent")
	periods := cmd.Flags().String("periods", "0", "number of periods")
	timing := cmd.Flags().String("timing", string(tvm.Post), "payment timing: post (end of period), pre (start of period)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		t, err := tvm.ParseTiming(*timing)
		if err != nil {
			return err
		}
		value := run(parse.Float(*payment), parse.Float(*rate), parse.Float(*periods), t)
		return a.write(output.Report{
			Title:   title,
			Summary: []output.Field{{Label: "Value", Value: value, Kind: output.Currency}},
		})
	}
	return cmd
}

func newAnnuityFVCommand(a *app) *cobra.Command {
	return newAnnuityCommand(a, "annuity-fv", "Future value of a series of equal payments",
		"Annuity future value", tvm.AnnuityFV)
}

func newAnnuityPVCommand(a *app) *cobra.Command {
	return newAnnuityCommand(a, "annuity-pv", "Present value of a series of equal payments",
		"Annuity present value", tvm.AnnuityPV)
}
