// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation so that command implementations focus on
// calling the validators while this package decides how verdicts and
// dates read on a terminal.
package format

import (
	"fmt"

	"github.com/jpl-au/datecheck/internal/julian"
)

// Verdict renders a boolean validation result for text output.
func Verdict(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

// Date renders a date as year-month-day. Years are not zero-padded
// because the calendar has no upper bound and year 1 is legitimate;
// month and day are padded to keep columns stable.
func Date(d julian.Date) string {
	return fmt.Sprintf("%d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Days renders a days-in-month result, e.g. "29 days".
func Days(n int) string {
	return fmt.Sprintf("%d days", n)
}
