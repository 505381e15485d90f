// any.go implements the "datecheck any" command for unordered triples.
//
// Separated from check.go - see the note there. This command wraps
// julian.ValidOrdering so it can report WHICH role assignment matched,
// not just that one exists.

package date

import (
	"fmt"

	"github.com/jpl-au/datecheck/cmd"
	"github.com/jpl-au/datecheck/internal/format"
	"github.com/jpl-au/datecheck/internal/julian"
	"github.com/jpl-au/datecheck/internal/log"
	"github.com/spf13/cobra"
)

// anyResult is the JSON shape of a permutation-check verdict. Ordering
// is present only when a valid role assignment was found.
type anyResult struct {
	Valid    bool         `json:"valid"`
	Parts    []int        `json:"parts"`
	Ordering *julian.Date `json:"ordering,omitempty"`
}

func newAnyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "any PART PART PART",
		Short: "Validate three integers in any role order",
		Long: `Determine whether ANY assignment of three integers to the
(year, month, day) roles forms a valid date. The verdict does not depend
on the order the parts are given in.

  datecheck any 2023 6 15   # valid as 2023-06-15
  datecheck any 15 2023 6   # valid as 2023-06-15 (same parts, reordered)
  datecheck any 2023 2 30   # invalid - no assignment works

Exits 0 when some assignment is valid, 1 when none is.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			parts, err := parseInts([]string{"part", "part", "part"}, args)
			if err != nil {
				log.Event("date:any", "any").Author(cmd.Author()).Write(err)
				return cmd.PrintJSONError(err)
			}
			a, b, c := parts[0], parts[1], parts[2]

			d, ok := julian.ValidOrdering(a, b, c)
			ev := log.Event("date:any", "any").
				Author(cmd.Author()).
				Parts(a, b, c).
				Verdict(ok)
			if ok {
				ev.Detail("ordering", format.Date(d))
			}
			ev.Write(nil)

			cmd.SetVerdict(ok)
			if cmd.JSON() {
				res := anyResult{Valid: ok, Parts: []int{a, b, c}}
				if ok {
					res.Ordering = &d
				}
				return cmd.PrintJSON(res)
			}
			if ok {
				fmt.Fprintf(cmd.Out(), "valid as %s\n", format.Date(d))
			} else {
				fmt.Fprintln(cmd.Out(), format.Verdict(false))
			}
			return nil
		},
	}
}
