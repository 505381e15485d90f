// month.go implements month validation.
//
// Separated from year.go because months are a closed range rather than
// a half-open one, and because DaysInMonth deliberately does NOT apply
// this check - keeping the two rules in separate files makes that
// boundary visible.

package julian

// IsValidMonth reports whether month can serve as a calendar month.
//
// Validation rules:
//   - 1 <= month <= 12
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}
