// Package datetime turns calendar dates into the day counts the fixed-income
// comparison works with.
package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/constants"
)

// DateLayout is the format expected for dates on the command line and in
// request bodies.
const DateLayout = constants.DateLayout

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a calendar date in DateLayout.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must look like %s", calcerr.ErrInvalidInput, date, DateLayout)
	}
	return t, nil
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := ParseDate(firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := ParseDate(secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}

// HoldingDays counts the calendar days from the application date to the
// redemption date. The redemption may fall on the application date but not
// before it.
func HoldingDays(from, to string) (int, error) {
	start, err := ParseDate(from)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(to)
	if err != nil {
		return 0, err
	}
	if end.Before(start) {
		return 0, fmt.Errorf("%w: redemption %s precedes application %s", calcerr.ErrInvalidInput, to, from)
	}
	// Dates parse as UTC midnight so the difference is a whole number of days.
	return int(end.Sub(start).Hours() / 24), nil
}
