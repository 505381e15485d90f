// year.go implements year validation.
//
// Separated because the year rule is the one check with no companion
// data - no table, no dependency on other fields. Years have no upper
// bound; the calendar is proleptic from year 1 forward only.
//
// Design: Year 0 and negative (BCE) years are rejected rather than
// supported with astronomical numbering. The calendar this package
// models starts at year 1.

package julian

// IsValidYear reports whether year can serve as a calendar year.
//
// Validation rules:
//   - year >= 1 (no upper bound)
func IsValidYear(year int) bool {
	return year >= 1
}
