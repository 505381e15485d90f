package julian

import "testing"

func TestIsValidYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1, true},
		{2, true},
		{476, true},
		{2023, true},
		{1 << 40, true}, // no upper bound

		{0, false},
		{-1, false},
		{-476, false},
	}

	for _, tt := range tests {
		if got := IsValidYear(tt.year); got != tt.want {
			t.Errorf("IsValidYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	// Every month in range, plus both out-of-range sides.
	for m := 1; m <= 12; m++ {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = false, want true", m)
		}
	}
	for _, m := range []int{0, 13, -1, 100, -12} {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = true, want false", m)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		// The inverted February rule: divisible by 4 => 28, else 29.
		{"feb divisible by 4", 2020, 2, 28},
		{"feb not divisible by 4", 2021, 2, 29},
		{"feb year 2022", 2022, 2, 29},
		{"feb year 2024", 2024, 2, 28},
		{"feb year zero", 0, 2, 28},
		{"feb negative divisible", -4, 2, 28},
		{"feb negative not divisible", -3, 2, 29},

		// 30-day months.
		{"april", 2023, 4, 30},
		{"june", 2023, 6, 30},
		{"september", 2023, 9, 30},
		{"november", 2023, 11, 30},

		// 31-day months.
		{"january", 2023, 1, 31},
		{"march", 2023, 3, 31},
		{"may", 2023, 5, 31},
		{"july", 2023, 7, 31},
		{"august", 2023, 8, 31},
		{"october", 2023, 10, 31},
		{"december", 2023, 12, 31},

		// Out-of-range months fall through to 31; no validation here.
		{"month zero", 2023, 0, 31},
		{"month thirteen", 2023, 13, 31},
		{"month negative", 2023, -5, 31},
		{"month huge", 2023, 1000, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestIsValidDay(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		want  bool
	}{
		{"first of month", 2023, 1, 1, true},
		{"last of january", 2023, 1, 31, true},
		{"day zero", 2023, 1, 0, false},
		{"day negative", 2023, 1, -1, false},
		{"day 32", 2023, 1, 32, false},
		{"last of april", 2023, 4, 30, true},
		{"april 31", 2023, 4, 31, false},

		// February under the inverted rule.
		{"feb 29 in divisible year", 2020, 2, 29, false},
		{"feb 29 in non-divisible year", 2021, 2, 29, true},
		{"feb 28 in divisible year", 2020, 2, 28, true},
		{"feb 30 never", 2021, 2, 30, false},

		// Out-of-range month resolves to the 31-day fallback; IsValidDay
		// alone does not reject it.
		{"month 13 day 31", 2023, 13, 31, true},
		{"month 13 day 32", 2023, 13, 32, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDay(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("IsValidDay(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestIsValidOrderedDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		want  bool
	}{
		{"ordinary date", 2023, 6, 15, true},
		{"year one", 1, 1, 1, true},
		{"year zero", 0, 1, 1, false},
		{"negative year", -10, 6, 15, false},
		{"month out of range", 2023, 13, 1, false},
		{"month zero", 2023, 0, 1, false},
		{"day out of range", 2023, 6, 31, false},
		{"feb 29 divisible year", 2020, 2, 29, false},
		{"feb 29 non-divisible year", 2021, 2, 29, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidOrderedDate(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("IsValidOrderedDate(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

// TestIsValidOrderedDate_Composition pins the contract that the ordered
// check is exactly the conjunction of the three component validators.
func TestIsValidOrderedDate_Composition(t *testing.T) {
	for _, y := range []int{-1, 0, 1, 4, 2020, 2021, 2023} {
		for m := -1; m <= 14; m++ {
			for _, d := range []int{-1, 0, 1, 28, 29, 30, 31, 32} {
				want := IsValidYear(y) && IsValidMonth(m) && IsValidDay(y, m, d)
				if got := IsValidOrderedDate(y, m, d); got != want {
					t.Fatalf("IsValidOrderedDate(%d, %d, %d) = %v, want composition %v", y, m, d, got, want)
				}
			}
		}
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c int
		want    bool
	}{
		{"already ordered", 2023, 6, 15, true},
		{"permuted", 15, 2023, 6, true},
		{"permuted again", 6, 15, 2023, true},
		{"no valid assignment", 2023, 2, 30, false},
		{"zero can play no role", 0, 1, 1, false},
		{"all same small", 1, 1, 1, true},
		{"feb 29 with non-divisible year", 29, 2, 2021, true},
		// 2020-02-29 has a 28-day February under the inverted rule, and
		// no other assignment of {29, 2, 2020} works either (2020 fits
		// neither month nor any day range).
		{"feb 29 with divisible year", 29, 2, 2020, false},
		{"all negative", -1, -2, -3, false},
		{"two zeros", 0, 0, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDate(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("IsValidDate(%d, %d, %d) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

// TestIsValidDate_Symmetry pins the property that the verdict is
// invariant under any reordering of the three arguments.
func TestIsValidDate_Symmetry(t *testing.T) {
	triples := [][3]int{
		{2023, 6, 15},
		{2023, 2, 30},
		{0, 1, 1},
		{1, 1, 1},
		{29, 2, 2021},
		{29, 2, 2020},
		{31, 12, 1},
		{-5, 13, 40},
		{12, 31, 9999},
	}

	for _, tr := range triples {
		a, b, c := tr[0], tr[1], tr[2]
		want := IsValidDate(a, b, c)
		perms := [6][3]int{
			{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
		}
		for _, p := range perms {
			if got := IsValidDate(p[0], p[1], p[2]); got != want {
				t.Errorf("IsValidDate(%d, %d, %d) = %v, want %v (symmetry with (%d, %d, %d))",
					p[0], p[1], p[2], got, want, a, b, c)
			}
		}
	}
}

func TestValidOrdering(t *testing.T) {
	t.Run("reports the matching assignment", func(t *testing.T) {
		d, ok := ValidOrdering(15, 2023, 6)
		if !ok {
			t.Fatal("ValidOrdering(15, 2023, 6) found no valid assignment")
		}
		want := Date{Year: 2023, Month: 6, Day: 15}
		if d != want {
			t.Errorf("ValidOrdering(15, 2023, 6) = %+v, want %+v", d, want)
		}
	})

	t.Run("prefers the earliest ordering", func(t *testing.T) {
		// Every assignment of (1, 1, 1) is valid; the identity ordering
		// comes first.
		d, ok := ValidOrdering(1, 1, 1)
		if !ok {
			t.Fatal("ValidOrdering(1, 1, 1) found no valid assignment")
		}
		if d != (Date{Year: 1, Month: 1, Day: 1}) {
			t.Errorf("ValidOrdering(1, 1, 1) = %+v, want the identity ordering", d)
		}
	})

	t.Run("zero value on failure", func(t *testing.T) {
		d, ok := ValidOrdering(2023, 2, 30)
		if ok {
			t.Fatalf("ValidOrdering(2023, 2, 30) = %+v, want no valid assignment", d)
		}
		if d != (Date{}) {
			t.Errorf("ValidOrdering(2023, 2, 30) returned %+v on failure, want zero Date", d)
		}
	})
}
