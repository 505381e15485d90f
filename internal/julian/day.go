// day.go implements day validation.
//
// Separated because the day rule is the only one whose bound is derived
// rather than fixed: it depends on DaysInMonth(year, month).
//
// Design: IsValidDay does not validate year or month itself. An
// out-of-range month resolves to the 31-day fallback in DaysInMonth, so
// IsValidDay(2023, 13, 31) is true in isolation. IsValidOrderedDate
// applies IsValidMonth first; callers using IsValidDay directly carry
// the same obligation.

package julian

// IsValidDay reports whether day can serve as a day of the given month
// and year.
//
// Validation rules:
//   - 1 <= day <= DaysInMonth(year, month)
func IsValidDay(year, month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}
