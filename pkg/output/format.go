package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/format"
	"github.com/iwvelando/finance-calc/pkg/validation"
)

// Write renders report in the named output format.
func Write(w io.Writer, outputFormat string, report Report, f format.Formatter) error {
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}
	if outputFormat == constants.OutputFormatCSV {
		return CsvFormat(w, report)
	}
	return PrettyFormat(w, report, f)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, report Report, f format.Formatter) error {
	p := message.NewPrinter(language.Make(f.Locale()))
	render := func(kind Kind, value float64, text string) string {
		switch kind {
		case Currency:
			return f.Currency(value)
		case Percent:
			return f.Percent(value)
		case Count:
			return p.Sprintf("%d", int64(value))
		case Text:
			return text
		default:
			return f.Number(value)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s ---\n", report.Title)

	labelWidth := 0
	for _, field := range report.Summary {
		labelWidth = max(labelWidth, utf8.RuneCountInString(field.Label))
	}
	for _, field := range report.Summary {
		fmt.Fprintf(&b, "%s:%s %s\n", field.Label,
			strings.Repeat(" ", labelWidth-utf8.RuneCountInString(field.Label)),
			render(field.Kind, field.Value, field.Text))
	}

	if report.Table != nil && len(report.Table.Columns) > 0 {
		cols := report.Table.Columns
		cells := make([][]string, len(report.Table.Rows))
		widths := make([]int, len(cols))
		for i, c := range cols {
			widths[i] = utf8.RuneCountInString(c.Header)
		}
		for r, row := range report.Table.Rows {
			cells[r] = make([]string, len(cols))
			for i, c := range cols {
				if i < len(row) {
					cells[r][i] = render(c.Kind, row[i], "")
				}
				widths[i] = max(widths[i], utf8.RuneCountInString(cells[r][i]))
			}
		}

		b.WriteString("\n")
		headers := make([]string, len(cols))
		rules := make([]string, len(cols))
		for i, c := range cols {
			headers[i] = c.Header
			rules[i] = strings.Repeat("_", utf8.RuneCountInString(c.Header))
		}
		writeRow(&b, headers, widths)
		writeRow(&b, rules, widths)
		for _, row := range cells {
			writeRow(&b, row, widths)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(cell)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		}
	}
	b.WriteString("\n")
}

// CsvFormat outputs in comma-separated value format. A report with a table
// writes the table; otherwise the summary is written as a header row and a
// value row.
func CsvFormat(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)

	if report.Table != nil && len(report.Table.Columns) > 0 {
		headers := make([]string, len(report.Table.Columns))
		for i, c := range report.Table.Columns {
			headers[i] = c.Header
		}
		if err := cw.Write(headers); err != nil {
			return err
		}
		for _, row := range report.Table.Rows {
			record := make([]string, len(report.Table.Columns))
			for i, c := range report.Table.Columns {
				if i < len(row) {
					record[i] = raw(c.Kind, row[i], "")
				}
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	} else {
		labels := make([]string, len(report.Summary))
		values := make([]string, len(report.Summary))
		for i, field := range report.Summary {
			labels[i] = field.Label
			values[i] = raw(field.Kind, field.Value, field.Text)
		}
		if err := cw.Write(labels); err != nil {
			return err
		}
		if err := cw.Write(values); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func raw(kind Kind, value float64, text string) string {
	switch kind {
	case Currency:
		return strconv.FormatFloat(value, 'f', 2, 64)
	case Count:
		return strconv.FormatInt(int64(value), 10)
	case Text:
		return text
	default:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
}
