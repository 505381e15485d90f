// check.go implements the "datecheck check" command for ordered triples.
//
// Separated from any.go because the two commands answer different
// questions: check judges a triple whose roles are already known, any
// searches for a role assignment.

package date

import (
	"fmt"

	"github.com/jpl-au/datecheck/cmd"
	"github.com/jpl-au/datecheck/internal/format"
	"github.com/jpl-au/datecheck/internal/julian"
	"github.com/jpl-au/datecheck/internal/log"
	"github.com/spf13/cobra"
)

// checkResult is the JSON shape of an ordered-check verdict.
type checkResult struct {
	Valid bool        `json:"valid"`
	Date  julian.Date `json:"date"`
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check YEAR MONTH DAY",
		Short: "Validate a date whose parts are in known order",
		Long: `Validate a (year, month, day) triple, taken in that order.

  datecheck check 2023 6 15   # valid
  datecheck check 2021 2 29   # valid - see 'datecheck guide calendar'
  datecheck check 2020 2 29   # invalid - ditto

Exits 0 when the date is valid, 1 when it is not.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			parts, err := parseInts([]string{"year", "month", "day"}, args)
			if err != nil {
				log.Event("date:check", "check").Author(cmd.Author()).Write(err)
				return cmd.PrintJSONError(err)
			}
			y, m, d := parts[0], parts[1], parts[2]

			ok := julian.IsValidOrderedDate(y, m, d)
			log.Event("date:check", "check").
				Author(cmd.Author()).
				Parts(y, m, d).
				Verdict(ok).
				Write(nil)

			cmd.SetVerdict(ok)
			if cmd.JSON() {
				return cmd.PrintJSON(checkResult{Valid: ok, Date: julian.Date{Year: y, Month: m, Day: d}})
			}
			fmt.Fprintln(cmd.Out(), format.Verdict(ok))
			return nil
		},
	}
}
