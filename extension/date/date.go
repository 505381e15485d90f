// Package date provides the date extension for datecheck.
// It registers the validation commands (check, any, days) and their MCP
// tool equivalents.
package date

import (
	"github.com/jpl-au/datecheck/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the date extension.
type Extension struct{}

var _ extension.Extension = (*Extension)(nil)

// Name returns "date" - this extension provides the validation commands.
func (e *Extension) Name() string { return "date" }

// Commands returns the validation CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newCheckCmd(),
		newAnyCmd(),
		newDaysCmd(),
	}
}

// MCPTools returns the MCP tool equivalents of the validation commands.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		checkTool(),
		checkOrderedTool(),
		daysInMonthTool(),
	}
}
