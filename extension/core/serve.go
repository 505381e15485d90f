// serve.go implements the "datecheck serve" command for MCP server
// operation.
//
// Separated from extension.go because serve has unique lifecycle
// requirements. Unlike other commands that run and exit, serve blocks
// indefinitely handling MCP requests over stdio.

package core

import (
	"github.com/jpl-au/datecheck/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

The server exposes the date validators as tools (date_check,
date_check_ordered, date_days_in_month) and the usage guides as
resources.`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve()
}
