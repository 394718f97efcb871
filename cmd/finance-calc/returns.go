package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/mathutil"
	"github.com/iwvelando/finance-calc/pkg/output"
	"github.com/iwvelando/finance-calc/pkg/parse"
	"github.com/iwvelando/finance-calc/pkg/percent"
	"github.com/iwvelando/finance-calc/pkg/returns"
)

func newPercentCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "percent <value|proportion|increase|discount> <a> <b>",
		Short: "Percentage calculations",
		Long: `Percentage calculations:
  value      <total> <percent>     percent of a total
  proportion <part> <total>        what percent part is of total
  increase   <value> <percent>     value raised by a percentage
  discount   <original> <final>    discount between two prices`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := percent.ParseMode(args[0])
			if err != nil {
				return err
			}
			req, err := percent.NewRequest(mode, parse.Float(args[1]), parse.Float(args[2]))
			if err != nil {
				return err
			}
			result, err := percent.Calculate(req)
			if err != nil {
				return err
			}

			var summary []output.Field
			switch mode {
			case percent.ModeValue:
				summary = []output.Field{{Label: "Value", Value: result.Value, Kind: output.Number}}
			case percent.ModeProportion:
				summary = []output.Field{{Label: "Percent", Value: result.Value, Kind: output.Percent}}
			case percent.ModeIncrease:
				summary = []output.Field{
					{Label: "Increase", Value: result.Amount, Kind: output.Number},
					{Label: "Total", Value: result.Value, Kind: output.Number},
				}
			case percent.ModeDiscount:
				summary = []output.Field{
					{Label: "Discount", Value: result.Amount, Kind: output.Number},
					{Label: "Percent", Value: result.Value, Kind: output.Percent},
				}
			}
			return a.write(output.Report{Title: "Percentage", Summary: summary})
		},
	}
}

func newCAGRCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cagr",
		Short: "Compound annual growth rate between two values",
		Args:  cobra.NoArgs,
	}
	start := cmd.Flags().String("start", "0", "starting value")
	end := cmd.Flags().String("end", "0", "ending value")
	years := cmd.Flags().String("years", "0", "number of years")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		value := returns.CAGR(parse.Float(*start), parse.Float(*end), parse.Float(*years))
		if !mathutil.IsFinite(value) {
			return fmt.Errorf("no real growth rate takes %s to %s: %w", *start, *end, calcerr.ErrInvalidInput)
		}
		return a.write(output.Report{
			Title:   "Compound annual growth rate",
			Summary: []output.Field{{Label: "CAGR", Value: value, Kind: output.Percent}},
		})
	}
	return cmd
}

func newROICommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Return on investment",
		Args:  cobra.NoArgs,
	}
	start := cmd.Flags().String("start", "0", "amount invested")
	end := cmd.Flags().String("end", "0", "amount returned")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		value := returns.ROI(parse.Float(*start), parse.Float(*end))
		return a.write(output.Report{
			Title:   "Return on investment",
			Summary: []output.Field{{Label: "ROI", Value: value, Kind: output.Percent}},
		})
	}
	return cmd
}

func newInflationCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inflation",
		Short: "Project a value forward under inflation",
		Args:  cobra.NoArgs,
	}
	value := cmd.Flags().String("value", "0", "value today")
	rate := cmd.Flags().String("rate", "0", "inflation per period in percent")
	periods := cmd.Flags().String("periods", "0", "number of periods")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		adjusted := returns.Inflation(parse.Float(*value), parse.Float(*rate), parse.Float(*periods))
		return a.write(output.Report{
			Title:   "Inflation adjustment",
			Summary: []output.Field{{Label: "Adjusted value", Value: adjusted, Kind: output.Currency}},
		})
	}
	return cmd
}

func newDepreciationCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "depreciation",
		Short: "Straight-line depreciation of an asset",
		Args:  cobra.NoArgs,
	}
	cost := cmd.Flags().String("cost", "0", "acquisition cost")
	residual := cmd.Flags().String("residual", "0", "residual value at the end of its life")
	life := cmd.Flags().String("life", "0", "useful life in periods")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		c, r, l := parse.Float(*cost), parse.Float(*residual), parse.Float(*life)
		report := output.Report{
			Title:   "Straight-line depreciation",
			Summary: []output.Field{{Label: "Per period", Value: returns.Depreciation(c, r, l), Kind: output.Currency}},
		}
		rows, err := returns.DepreciationSchedule(c, r, l)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			table := &output.Table{Columns: []output.Column{
				{Header: "Year", Kind: output.Count},
				{Header: "Expense", Kind: output.Currency},
				{Header: "Accumulated", Kind: output.Currency},
				{Header: "Book value", Kind: output.Currency},
			}}
			for _, row := range rows {
				table.Rows = append(table.Rows, []float64{float64(row.Year), row.Expense, row.Accumulated, row.BookValue})
			}
			report.Table = table
		}
		return a.write(report)
	}
	return cmd
}
