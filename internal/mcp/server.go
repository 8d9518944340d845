// Package mcp provides a Model Context Protocol server for inkwell.
// It exposes blog builds and post listings as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/inkwell/internal/config"
)

// NewServer creates an MCP server with all inkwell tools registered.
// Every call reads cfg; the blog is re-opened per call so template edits
// are picked up.
func NewServer(version string, cfg *config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "inkwell",
		Version: version,
	}, nil)
	registerTools(server, cfg)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for the build tool. Rebuilding
// overwrites generated pages but never touches sources.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, cfg *config.Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "build",
		Description: "Build the blog: render every markdown post to HTML and regenerate the index page. Returns built posts (newest first) and skipped files.",
		Annotations: writeAnnotations(),
	}, handleBuild(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_posts",
		Description: "List posts that would be built, newest first, along with files that would be skipped and why. Writes nothing.",
		Annotations: readOnlyAnnotations(),
	}, handleListPosts(cfg))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_markdown",
		Description: "Render a markdown body to an HTML fragment with the minimal or extended flavor.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderMarkdown(cfg))
}
