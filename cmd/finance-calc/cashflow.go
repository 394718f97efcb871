package main

import (
	"github.com/spf13/cobra"

	"github.com/iwvelando/finance-calc/pkg/cashflow"
	"github.com/iwvelando/finance-calc/pkg/output"
	"github.com/iwvelando/finance-calc/pkg/parse"
)

func newNPVCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "npv",
		Short: "Net present value of a series of cash flows",
		Args:  cobra.NoArgs,
	}
	rate := cmd.Flags().String("rate", "0", "discount rate per period in percent")
	flows := cmd.Flags().String("flows", "", "cash flows starting at period 0, e.g. -1000,200,300")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		result := cashflow.NPV(parse.Float(*rate), parse.Flows(*flows))

		table := &output.Table{Columns: []output.Column{
			{Header: "Period", Kind: output.Count},
			{Header: "Flow", Kind: output.Currency},
			{Header: "Discounted", Kind: output.Currency},
			{Header: "Cumulative", Kind: output.Currency},
		}}
		for _, f := range result.Flows {
			table.Rows = append(table.Rows, []float64{float64(f.Period), f.Flow, f.Discounted, f.Cumulative})
		}

		return a.write(output.Report{
			Title:   "Net present value",
			Summary: []output.Field{{Label: "NPV", Value: result.NPV, Kind: output.Currency}},
			Table:   table,
		})
	}
	return cmd
}

func newIRRCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "irr",
		Short: "Internal rate of return of a series of cash flows",
		Args:  cobra.NoArgs,
	}
	flows := cmd.Flags().String("flows", "", "cash flows starting at period 0, e.g. -1000,200,300")
	guess := cmd.Flags().String("guess", "", "solver seed in percent (default from configuration)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		seed := a.conf.IRR.Guess
		if *guess != "" {
			seed = parse.Float(*guess)
		}

		result, err := cashflow.IRRWithGuess(parse.Flows(*flows), seed)
		if err != nil {
			return err
		}
		return a.write(output.Report{
			Title: "Internal rate of return",
			Summary: []output.Field{
				{Label: "IRR", Value: result.Rate, Kind: output.Percent},
				{Label: "Iterations", Value: float64(result.Iterations), Kind: output.Count},
			},
		})
	}
	return cmd
}
