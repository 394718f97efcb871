package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/iwvelando/finance-calc/pkg/loans"
	"github.com/iwvelando/finance-calc/pkg/output"
	"github.com/iwvelando/finance-calc/pkg/parse"
	"github.com/iwvelando/finance-calc/pkg/rates"
	"github.com/iwvelando/finance-calc/pkg/validation"
)

func newAmortizationCommand(a *app, use string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Amortization schedule using the " + strings.ToUpper(use) + " system",
		Args:  cobra.NoArgs,
	}
	principal := cmd.Flags().String("principal", "0", "loan amount")
	rate := cmd.Flags().String("rate", "0", "interest rate per period in percent")
	periods := cmd.Flags().String("periods", "0", "number of periods")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		method, err := loans.ParseMethod(use)
		if err != nil {
			return err
		}
		n, err := rates.WholeMonths(parse.Float(*periods))
		if err != nil {
			return err
		}

		result, err := loans.NewScheduleGenerator(a.logger).Generate(method, parse.Float(*principal), parse.Float(*rate), n)
		if err != nil {
			return err
		}

		summary := []output.Field{}
		if method == loans.MethodPrice {
			summary = append(summary, output.Field{Label: "Payment", Value: result.FixedPayment, Kind: output.Currency})
		} else {
			summary = append(summary, output.Field{Label: "Amortization", Value: result.FixedAmortization, Kind: output.Currency})
		}
		summary = append(summary,
			output.Field{Label: "Total interest", Value: result.TotalInterest, Kind: output.Currency},
			output.Field{Label: "Total paid", Value: result.TotalPaid, Kind: output.Currency},
		)
		return a.write(output.Report{
			Title:   strings.ToUpper(use) + " amortization",
			Summary: summary,
			Table:   output.ScheduleTable(result.Schedule),
		})
	}
	return cmd
}

func newCompareCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare PRICE and SAC financing of a property",
		Args:  cobra.NoArgs,
	}
	property := cmd.Flags().String("property", "0", "property value")
	down := cmd.Flags().String("down", "0", "down payment")
	rate := cmd.Flags().String("rate", "0", "interest rate in percent")
	basis := cmd.Flags().String("basis", string(rates.Annual), "rate basis: annual, monthly")
	period := cmd.Flags().String("period", "0", "financing term")
	unit := cmd.Flags().String("unit", string(rates.Years), "term unit: years, months")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		b, err := rates.ParseBasis(*basis)
		if err != nil {
			return err
		}
		u, err := rates.ParseUnit(*unit)
		if err != nil {
			return err
		}
		in := loans.CompareInput{
			PropertyValue: parse.Float(*property),
			DownPayment:   parse.Float(*down),
			Rate:          rates.RateInput{Magnitude: parse.Float(*rate), Basis: b},
			Period:        rates.PeriodInput{Count: parse.Float(*period), Unit: u},
		}
		a.warn("main.compare",
			validation.ValidateDownPayment(in.PropertyValue, in.DownPayment),
			validation.ValidateRate("rate", in.Rate.Magnitude),
		)

		comparison, err := loans.NewScheduleGenerator(a.logger).Compare(in)
		if err != nil {
			return err
		}

		table := &output.Table{Columns: []output.Column{
			{Header: "Period", Kind: output.Count},
			{Header: "PRICE payment", Kind: output.Currency},
			{Header: "SAC payment", Kind: output.Currency},
			{Header: "PRICE balance", Kind: output.Currency},
			{Header: "SAC balance", Kind: output.Currency},
		}}
		for i := range comparison.Price.Schedule {
			p, s := comparison.Price.Schedule[i], comparison.SAC.Schedule[i]
			table.Rows = append(table.Rows, []float64{float64(p.Index), p.Payment, s.Payment, p.Balance, s.Balance})
		}

		return a.write(output.Report{
			Title: "PRICE vs SAC",
			Summary: []output.Field{
				{Label: "Loan amount", Value: comparison.LoanAmount, Kind: output.Currency},
				{Label: "Monthly rate", Value: comparison.MonthlyRate, Kind: output.Percent},
				{Label: "Periods", Value: float64(comparison.Periods), Kind: output.Count},
				{Label: "PRICE payment", Value: comparison.Price.FixedPayment, Kind: output.Currency},
				{Label: "PRICE total interest", Value: comparison.Price.TotalInterest, Kind: output.Currency},
				{Label: "SAC amortization", Value: comparison.SAC.FixedAmortization, Kind: output.Currency},
				{Label: "SAC total interest", Value: comparison.SAC.TotalInterest, Kind: output.Currency},
				{Label: "Interest savings", Value: comparison.InterestSavings, Kind: output.Currency},
			},
			Table: table,
		})
	}
	return cmd
}
