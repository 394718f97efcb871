// Package output renders calculator results as human-readable or CSV text.
package output

import (
	"github.com/iwvelando/finance-calc/pkg/schedule"
)

// Kind selects how a figure is rendered.
type Kind int

const (
	// Currency is a monetary amount.
	Currency Kind = iota
	// Percent is a value in percent units.
	Percent
	// Number is a plain decimal figure.
	Number
	// Count is an integral count such as a period index.
	Count
	// Text is a label carried in Field.Text.
	Text
)

// Field is one labelled figure of a report summary.
type Field struct {
	Label string
	Value float64
	Text  string
	Kind  Kind
}

// Column describes one column of a Table.
type Column struct {
	Header string
	Kind   Kind
}

// Table is a grid of figures, one slice per row in column order.
type Table struct {
	Columns []Column
	Rows    [][]float64
}

// Report is everything a calculator prints.
type Report struct {
	Title   string
	Summary []Field
	Table   *Table
}

// ScheduleTable lays out amortization rows.
func ScheduleTable(rows []schedule.Row) *Table {
	t := &Table{Columns: []Column{
		{Header: "Period", Kind: Count},
		{Header: "Payment", Kind: Currency},
		{Header: "Interest", Kind: Currency},
		{Header: "Principal", Kind: Currency},
		{Header: "Balance", Kind: Currency},
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []float64{float64(r.Index), r.Payment, r.Interest, r.Principal, r.Balance})
	}
	return t
}

// AccumulationTable lays out interest accumulator rows.
func AccumulationTable(rows []schedule.Row) *Table {
	t := &Table{Columns: []Column{
		{Header: "Month", Kind: Count},
		{Header: "Invested", Kind: Currency},
		{Header: "Interest", Kind: Currency},
		{Header: "Accumulated Interest", Kind: Currency},
		{Header: "Balance", Kind: Currency},
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []float64{float64(r.Index), r.Invested, r.Interest, r.AccumulatedInterest, r.Balance})
	}
	return t
}
