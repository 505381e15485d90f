// permute.go implements role-assignment search for unordered triples.
//
// Separated from date.go because this is the only part of the package
// that iterates: it tries every assignment of three untagged integers
// to the (year, month, day) roles.
//
// Design: the six permutations are a fixed table rather than a
// generated sequence - for n=3 a literal is shorter, allocation-free,
// and makes the search order explicit. The order only affects which
// ordering ValidOrdering reports, never whether one is found.

package julian

// orderings enumerates the index permutations of a 3-element triple,
// in lexicographic order.
var orderings = [6][3]int{
	{0, 1, 2},
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}

// ValidOrdering searches the six role assignments of the untagged
// integers a, b, c to (year, month, day) and returns the first one that
// forms a valid date, in lexicographic order of input positions.
//
// The boolean result is symmetric in a, b, c: reordering the arguments
// can change which Date is returned, never whether one is found.
func ValidOrdering(a, b, c int) (Date, bool) {
	parts := [3]int{a, b, c}
	for _, o := range orderings {
		y, m, d := parts[o[0]], parts[o[1]], parts[o[2]]
		if IsValidOrderedDate(y, m, d) {
			return Date{Year: y, Month: m, Day: d}, true
		}
	}
	return Date{}, false
}

// IsValidDate reports whether any assignment of the untagged integers
// a, b, c to the (year, month, day) roles forms a valid date. The
// result is invariant under any reordering of the arguments.
func IsValidDate(a, b, c int) bool {
	_, ok := ValidOrdering(a, b, c)
	return ok
}
