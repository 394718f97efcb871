package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/datetime"
	"github.com/iwvelando/finance-calc/pkg/fixedincome"
	"github.com/iwvelando/finance-calc/pkg/output"
	"github.com/iwvelando/finance-calc/pkg/parse"
	"github.com/iwvelando/finance-calc/pkg/validation"
)

func formatDefault(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newFixedIncomeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixed-income",
		Short: "Compare savings, CDB and LCI over a holding period",
		Args:  cobra.NoArgs,
	}
	d := fixedincome.DefaultInput()
	principal := cmd.Flags().String("principal", formatDefault(d.Principal), "amount invested")
	days := cmd.Flags().String("days", formatDefault(d.Days), "holding period in calendar days")
	di := cmd.Flags().String("di", formatDefault(d.DIRate), "DI rate in percent a year")
	selic := cmd.Flags().String("selic", formatDefault(d.SelicRate), "SELIC rate in percent a year")
	taxable := cmd.Flags().String("taxable", formatDefault(d.TaxablePercent), "CDB/RDB/LC yield in percent of DI")
	exempt := cmd.Flags().String("exempt", formatDefault(d.ExemptPercent), "LCI/LCA yield in percent of DI")
	from := cmd.Flags().String("from", "", "application date ("+datetime.DateLayout+"), replaces --days together with --to")
	to := cmd.Flags().String("to", "", "redemption date ("+datetime.DateLayout+")")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		in := fixedincome.Input{
			Principal:      parse.Float(*principal),
			Days:           parse.Float(*days),
			DIRate:         parse.Float(*di),
			SelicRate:      parse.Float(*selic),
			TaxablePercent: parse.Float(*taxable),
			ExemptPercent:  parse.Float(*exempt),
		}
		if *from != "" || *to != "" {
			if *from == "" || *to == "" {
				return fmt.Errorf("%w: --from and --to must be given together", calcerr.ErrInvalidInput)
			}
			held, err := datetime.HoldingDays(*from, *to)
			if err != nil {
				return err
			}
			in.Days = float64(held)
		}
		a.warn("main.fixedIncome", validation.ValidateHoldingPeriod(in.Days)...)

		comparison, err := fixedincome.Compare(in, a.conf.FixedIncome)
		if err != nil {
			return err
		}

		summary := []output.Field{{Label: "Income tax", Value: comparison.TaxRate, Kind: output.Percent}}
		for _, inst := range []struct {
			name   string
			result fixedincome.InstrumentResult
		}{
			{"Savings", comparison.Savings},
			{"CDB", comparison.Taxable},
			{"LCI", comparison.TaxExempt},
		} {
			summary = append(summary,
				output.Field{Label: inst.name + " gross yield", Value: inst.result.GrossYield, Kind: output.Currency},
				output.Field{Label: inst.name + " tax", Value: inst.result.TaxAmount, Kind: output.Currency},
				output.Field{Label: inst.name + " net yield", Value: inst.result.NetYield, Kind: output.Currency},
				output.Field{Label: inst.name + " total", Value: inst.result.Total, Kind: output.Currency},
				output.Field{Label: inst.name + " return", Value: inst.result.PercentReturn, Kind: output.Percent},
			)
		}
		return a.write(output.Report{Title: "Fixed income", Summary: summary})
	}
	return cmd
}
