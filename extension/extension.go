// Package extension provides the plugin architecture for datecheck.
// Extensions encapsulate related functionality (commands, MCP tools) and
// register at init time, enabling modular feature development without
// touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for datecheck extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}
