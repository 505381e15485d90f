package cmd

import "testing"

func TestDays(t *testing.T) {
	tests := []struct {
		name  string
		year  string
		month string
		want  string
	}{
		{"january", "2023", "1", "31 days"},
		{"april", "2023", "4", "30 days"},
		{"february divisible year", "2020", "2", "28 days"},
		{"february non-divisible year", "2021", "2", "29 days"},
		{"out-of-range month falls back to 31", "2023", "13", "31 days"},
		{"negative month falls back to 31", "2023", "-5", "31 days"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			out := env.run("days", tc.year, tc.month)
			env.contains(out, tc.want)
		})
	}
}

func TestDays_JSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("days", "2021", "2", "-o", "json")
	env.contains(out, `"year":2021`)
	env.contains(out, `"month":2`)
	env.contains(out, `"days":29`)
}

func TestDays_Errors(t *testing.T) {
	env := newTestEnv(t)

	t.Run("non-integer month", func(t *testing.T) {
		_, err := env.runErr("days", "2023", "feb")
		if err == nil {
			t.Error("days with non-integer month = nil error, want error")
		}
	})

	t.Run("wrong arg count", func(t *testing.T) {
		_, err := env.runErr("days", "2023")
		if err == nil {
			t.Error("days with 1 arg = nil error, want error")
		}
	})
}
