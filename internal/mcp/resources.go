// resources.go implements MCP resource handlers for guide access.
//
// MCP resources provide read-only access to the embedded guides via URI
// schemes, enabling LLM clients to load the calendar rules as context
// without using tools. The February rule in particular is something an
// LLM should read before interpreting verdicts.
//
// Design: Resource URIs follow the pattern datecheck://guide[/{page}].
// Omitting the page returns the main guide. This mirrors the CLI's
// "guide" command behaviour.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/datecheck/guide"
	"github.com/jpl-au/datecheck/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// ErrInvalidURI indicates a malformed resource URI, helping clients
// debug URI construction issues.
var ErrInvalidURI = errors.New("invalid URI")

// readGuide handles datecheck://guide resource requests.
func readGuide(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return guideContents(req.Params.URI, "")
}

// readGuidePage handles datecheck://guide/{page} resource requests.
func readGuidePage(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	page, err := parseGuideURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	return guideContents(req.Params.URI, page)
}

func guideContents(uri, page string) ([]mcp.ResourceContents, error) {
	content, err := guide.Get(page)
	log.Event("mcp:guide", "read").Author("mcp").Detail("page", page).Write(err)
	if err != nil {
		pages, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return nil, fmt.Errorf("guide %q not found. Available: %s", page, strings.Join(pages, ", "))
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseGuideURI extracts the page name from a guide URI.
// Supports: datecheck://guide and datecheck://guide/{page}
func parseGuideURI(uri string) (string, error) {
	const prefix = "datecheck://guide"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	rest := strings.TrimPrefix(uri, prefix)
	rest = strings.TrimPrefix(rest, "/")
	return rest, nil
}
