// date.go implements ordered-date validation.
//
// Separated from permute.go to keep the two entry points distinct:
// this file handles triples whose roles are already known, permute.go
// handles triples whose roles are not.

package julian

// Date is a (year, month, day) triple in known role order. It carries
// no validity guarantee of its own; it is the unit that
// IsValidOrderedDate judges and ValidOrdering returns.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// IsValidOrderedDate reports whether (year, month, day), taken in that
// role order, forms a valid date.
//
// Validation rules:
//   - IsValidYear(year)
//   - IsValidMonth(month)
//   - IsValidDay(year, month, day)
//
// Checks short-circuit left to right. That is an optimisation, not a
// safety requirement: IsValidDay is total for any inputs, it just
// resolves out-of-range months to the 31-day fallback.
func IsValidOrderedDate(year, month, day int) bool {
	return IsValidYear(year) && IsValidMonth(month) && IsValidDay(year, month, day)
}
