// Package format renders amounts for display in the conventions of a locale.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/iwvelando/finance-calc/pkg/mathutil"
)

type convention struct {
	tag       language.Tag
	symbol    string
	symbolSep string
	thousands byte
	decimal   byte
}

// The first entry is the fallback for unmatched locales.
var conventions = []convention{
	{tag: language.BrazilianPortuguese, symbol: "R$", symbolSep: " ", thousands: '.', decimal: ','},
	{tag: language.AmericanEnglish, symbol: "$", symbolSep: "", thousands: ',', decimal: '.'},
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(conventions))
	for i, c := range conventions {
		tags[i] = c.tag
	}
	return tags
}

// Formatter formats numbers for one locale. The zero value is not usable;
// construct with New.
type Formatter struct {
	conv convention
}

// New returns a Formatter for the supported locale closest to locale.
// Unparseable or unsupported locales fall back to Brazilian Portuguese.
func New(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{conv: conventions[0]}
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		idx = 0
	}
	return Formatter{conv: conventions[idx]}
}

// Locale returns the BCP 47 tag the Formatter renders in.
func (f Formatter) Locale() string {
	return f.conv.tag.String()
}

// Currency returns an amount with the currency symbol and separators,
// e.g. "R$ 1.234,56" or "-R$ 1.234,56".
func (f Formatter) Currency(amount float64) string {
	digits, negative, ok := f.fixed(amount, 2)
	if !ok {
		return digits
	}
	sign := ""
	if negative {
		sign = "-"
	}
	return sign + f.conv.symbol + f.conv.symbolSep + digits
}

// Amount returns a currency amount without the symbol, e.g. "-1.234,56".
func (f Formatter) Amount(amount float64) string {
	digits, negative, ok := f.fixed(amount, 2)
	if ok && negative {
		return "-" + digits
	}
	return digits
}

// Percent renders a percent-unit value with two decimals, e.g. "12,34%".
func (f Formatter) Percent(value float64) string {
	digits, negative, ok := f.fixed(value, 2)
	if !ok {
		return digits
	}
	if negative {
		digits = "-" + digits
	}
	return digits + "%"
}

// Number renders a value with separators and at most two fraction digits.
func (f Formatter) Number(value float64) string {
	if !mathutil.IsFinite(value) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	d := decimal.NewFromFloat(value).Round(2)
	negative := d.Sign() < 0
	text := f.localize(d.Abs().String())
	if negative {
		return "-" + text
	}
	return text
}

// fixed rounds half away from zero to places decimals and returns the
// localized absolute value.
func (f Formatter) fixed(value float64, places int32) (string, bool, bool) {
	if !mathutil.IsFinite(value) {
		return strconv.FormatFloat(value, 'f', -1, 64), false, false
	}
	d := decimal.NewFromFloat(value).Round(places)
	return f.localize(d.Abs().StringFixed(places)), d.Sign() < 0, true
}

// localize rewrites a plain "1234.56" string with the locale's separators.
func (f Formatter) localize(plain string) string {
	intPart, fracPart, hasFrac := strings.Cut(plain, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(f.conv.thousands)
		}
		b.WriteByte(intPart[i])
	}
	if hasFrac {
		b.WriteByte(f.conv.decimal)
		b.WriteString(fracPart)
	}
	return b.String()
}
