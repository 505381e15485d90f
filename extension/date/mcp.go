// mcp.go defines the MCP tool equivalents of the date commands.
//
// Separated from the command files so the CLI surface and the MCP
// surface of each operation sit side by side but don't share cobra
// plumbing. Both surfaces call the same julian functions.
//
// Design: parameter extraction is strict but survivable - a missing,
// mistyped or fractional number becomes an MCP error result naming the
// parameter, never a Go error. LLMs recover better from "parameter 'a'
// must be an integer" than from a transport-level failure.

package date

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/jpl-au/datecheck/extension"
	"github.com/jpl-au/datecheck/internal/format"
	"github.com/jpl-au/datecheck/internal/julian"
	"github.com/jpl-au/datecheck/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getInt extracts an integer parameter from the MCP request arguments.
//
// JSON numbers are decoded as float64 in Go's encoding/json, so we must
// type assert to float64 first and then convert to int. The ok result is
// false when the parameter is missing, not a number, or has a fractional
// part; the validators need real integers, and truncating 6.5 to 6 would
// judge a different date than the one the caller sent. The CLI rejects
// non-integers the same way via strconv.Atoi.
func getInt(req mcp.CallToolRequest, name string) (int, bool) {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return 0, false
	}
	v, ok := args[name].(float64)
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// getInts extracts the named integer parameters, returning an MCP error
// result naming the first one that is missing or mistyped.
func getInts(req mcp.CallToolRequest, names ...string) ([]int, *mcp.CallToolResult) {
	ns := make([]int, len(names))
	for i, name := range names {
		n, ok := getInt(req, name)
		if !ok {
			return nil, mcp.NewToolResultError(fmt.Sprintf("parameter %q is required and must be an integer", name))
		}
		ns[i] = n
	}
	return ns, nil
}

// jsonResult serialises any value as pretty-printed JSON and wraps it in
// an MCP text result. LLMs parse structured output more reliably when
// it's formatted for readability.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func checkTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("date_check",
			mcp.WithDescription("Check whether three integers can form a valid (year, month, day) date in ANY role order. Returns the matching ordering when one exists. Note: this calendar gives February 28 days in years divisible by 4 and 29 otherwise."),
			mcp.WithNumber("a", mcp.Required(), mcp.Description("First integer part")),
			mcp.WithNumber("b", mcp.Required(), mcp.Description("Second integer part")),
			mcp.WithNumber("c", mcp.Required(), mcp.Description("Third integer part")),
		),
		Handler: func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			ns, errRes := getInts(req, "a", "b", "c")
			if errRes != nil {
				return errRes, nil
			}

			d, ok := julian.ValidOrdering(ns[0], ns[1], ns[2])
			ev := log.Event("mcp:date_check", "any").Author("mcp").Parts(ns...).Verdict(ok)
			if ok {
				ev.Detail("ordering", format.Date(d))
			}
			ev.Write(nil)

			res := anyResult{Valid: ok, Parts: ns}
			if ok {
				res.Ordering = &d
			}
			return jsonResult(res)
		},
	}
}

func checkOrderedTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("date_check_ordered",
			mcp.WithDescription("Check whether (year, month, day), taken in that role order, is a valid date. Note: this calendar gives February 28 days in years divisible by 4 and 29 otherwise."),
			mcp.WithNumber("year", mcp.Required(), mcp.Description("Candidate year (valid when >= 1)")),
			mcp.WithNumber("month", mcp.Required(), mcp.Description("Candidate month (valid when in 1..12)")),
			mcp.WithNumber("day", mcp.Required(), mcp.Description("Candidate day (valid when in 1..days-in-month)")),
		),
		Handler: func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			ns, errRes := getInts(req, "year", "month", "day")
			if errRes != nil {
				return errRes, nil
			}
			y, m, d := ns[0], ns[1], ns[2]

			ok := julian.IsValidOrderedDate(y, m, d)
			log.Event("mcp:date_check_ordered", "check").Author("mcp").Parts(y, m, d).Verdict(ok).Write(nil)

			return jsonResult(checkResult{Valid: ok, Date: julian.Date{Year: y, Month: m, Day: d}})
		},
	}
}

func daysInMonthTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("date_days_in_month",
			mcp.WithDescription("Resolve the number of days in a month. Months outside 1..12 resolve to the 31-day fallback rather than erroring. Note: this calendar gives February 28 days in years divisible by 4 and 29 otherwise."),
			mcp.WithNumber("year", mcp.Required(), mcp.Description("Year (any integer)")),
			mcp.WithNumber("month", mcp.Required(), mcp.Description("Month (any integer; out-of-range resolves to 31)")),
		),
		Handler: func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			ns, errRes := getInts(req, "year", "month")
			if errRes != nil {
				return errRes, nil
			}
			y, m := ns[0], ns[1]

			n := julian.DaysInMonth(y, m)
			log.Event("mcp:date_days_in_month", "days").Author("mcp").Parts(y, m).Days(n).Write(nil)

			return jsonResult(daysResult{Year: y, Month: m, Days: n})
		},
	}
}
