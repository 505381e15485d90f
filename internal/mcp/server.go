// Package mcp implements the Model Context Protocol server, exposing the
// datecheck validators to LLMs. This enables AI assistants to judge date
// triples and resolve day counts through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/datecheck/extension"
	"github.com/jpl-au/datecheck/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients.
//
// Design: the server carries no state of its own. Tools come from the
// extension registry (the same registrations that produce the CLI
// commands), so the two surfaces cannot drift apart; resources expose
// the embedded guide pages.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := server.NewMCPServer(
		"datecheck",
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s)
	registerTools(s)

	slog.Info("datecheck MCP server ready",
		"version", version.Short(),
		"transport", "stdio",
		"extensions", extension.Names())

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// registerTools exposes extension-declared tools for LLM invocation.
func registerTools(s *server.MCPServer) {
	for _, ext := range extension.All() {
		for _, t := range ext.MCPTools() {
			s.AddTool(t.Tool, server.ToolHandlerFunc(t.Handler))
		}
	}
}

// registerResources adds URI-based access to the embedded guide pages.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcp.NewResource(
			"datecheck://guide",
			"Guide",
			mcp.WithResourceDescription("The main datecheck usage guide, including the calendar rules"),
			mcp.WithMIMEType("text/markdown"),
		),
		readGuide,
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"datecheck://guide/{page}",
			"Guide Page",
			mcp.WithTemplateDescription("Read a specific guide page by name"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		readGuidePage,
	)
}
