// days.go implements the "datecheck days" command.
//
// Separated from check.go/any.go because days is a resolver, not a
// validator: it always produces a day count and never an invalid
// verdict, matching julian.DaysInMonth's contract.

package date

import (
	"fmt"

	"github.com/jpl-au/datecheck/cmd"
	"github.com/jpl-au/datecheck/internal/format"
	"github.com/jpl-au/datecheck/internal/julian"
	"github.com/jpl-au/datecheck/internal/log"
	"github.com/spf13/cobra"
)

// daysResult is the JSON shape of a days-in-month query.
type daysResult struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Days  int `json:"days"`
}

func newDaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days YEAR MONTH",
		Short: "Show the number of days in a month",
		Long: `Resolve the day count for a (year, month) pair.

  datecheck days 2023 4   # 30 days
  datecheck days 2021 2   # 29 days - see 'datecheck guide calendar'
  datecheck days 2020 2   # 28 days - ditto

The month is not range-checked: any month other than February and the
30-day months resolves to 31, out-of-range values included. Use
'datecheck check' when month validity matters.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			parts, err := parseInts([]string{"year", "month"}, args)
			if err != nil {
				log.Event("date:days", "days").Author(cmd.Author()).Write(err)
				return cmd.PrintJSONError(err)
			}
			y, m := parts[0], parts[1]

			n := julian.DaysInMonth(y, m)
			log.Event("date:days", "days").
				Author(cmd.Author()).
				Parts(y, m).
				Days(n).
				Write(nil)

			if cmd.JSON() {
				return cmd.PrintJSON(daysResult{Year: y, Month: m, Days: n})
			}
			fmt.Fprintln(cmd.Out(), format.Days(n))
			return nil
		},
	}
}
