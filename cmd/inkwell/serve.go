package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	inkwellmcp "github.com/gorewood/inkwell/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	flags := &siteFlags{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run inkwell as a Model Context Protocol (MCP) server over stdio.

This lets MCP-capable agents build the blog, list posts and preview
markdown rendering.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "inkwell": {
        "command": "inkwell",
        "args": ["serve"]
      }
    }
  }

Available tools: build, list_posts, render_markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			server := inkwellmcp.NewServer(buildVersion(), cfg)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
	addSiteFlags(cmd, flags)
	return cmd
}
