package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/inkwell/internal/config"
	"github.com/gorewood/inkwell/internal/markdown"
	"github.com/gorewood/inkwell/internal/project"
)

// --- Build tool ---

// BuildInput is the input for the build tool (no parameters needed).
type BuildInput struct{}

// BuildOutput is the output for the build tool.
type BuildOutput struct {
	Built   int           `json:"built"   jsonschema:"number of posts written"`
	Skipped int           `json:"skipped" jsonschema:"number of source files skipped"`
	Index   string        `json:"index"   jsonschema:"path of the generated index page"`
	Posts   []PostSummary `json:"posts"   jsonschema:"built posts, newest first"`
	Issues  []Issue       `json:"issues"  jsonschema:"skipped files in processing order"`
}

func handleBuild(cfg *config.Config) mcp.ToolHandlerFor[BuildInput, BuildOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ BuildInput) (*mcp.CallToolResult, BuildOutput, error) {
		proj, err := project.Open(cfg)
		if err != nil {
			return nil, BuildOutput{}, err
		}

		report, err := proj.Build(nil)
		if err != nil {
			return nil, BuildOutput{}, err
		}

		return nil, BuildOutput{
			Built:   report.Built(),
			Skipped: report.Skipped(),
			Index:   proj.IndexPath(),
			Posts:   toPostSummaries(report.Posts),
			Issues:  toIssues(report.Issues),
		}, nil
	}
}

// --- List tool ---

// ListPostsInput is the input for the list_posts tool.
type ListPostsInput struct {
	Last int `json:"last,omitempty" jsonschema:"only return the N newest posts (0 for all)"`
}

// ListPostsOutput is the output for the list_posts tool.
type ListPostsOutput struct {
	Count  int           `json:"count"  jsonschema:"number of valid posts"`
	Posts  []PostSummary `json:"posts"  jsonschema:"valid posts, newest first"`
	Issues []Issue       `json:"issues" jsonschema:"files that would be skipped"`
}

func handleListPosts(cfg *config.Config) mcp.ToolHandlerFor[ListPostsInput, ListPostsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListPostsInput) (*mcp.CallToolResult, ListPostsOutput, error) {
		if input.Last < 0 {
			return nil, ListPostsOutput{}, errors.New("last must not be negative")
		}

		records, issues, err := project.Scan(cfg)
		if err != nil {
			return nil, ListPostsOutput{}, err
		}

		count := len(records)
		if input.Last > 0 && input.Last < len(records) {
			records = records[:input.Last]
		}

		return nil, ListPostsOutput{
			Count:  count,
			Posts:  toPostSummaries(records),
			Issues: toIssues(issues),
		}, nil
	}
}

// --- Render tool ---

// RenderMarkdownInput is the input for the render_markdown tool.
type RenderMarkdownInput struct {
	Body   string `json:"body"             jsonschema:"markdown text without frontmatter (required)"`
	Flavor string `json:"flavor,omitempty" jsonschema:"minimal or extended (defaults to the configured flavor)"`
}

// RenderMarkdownOutput is the output for the render_markdown tool.
type RenderMarkdownOutput struct {
	Flavor string `json:"flavor" jsonschema:"flavor used"`
	HTML   string `json:"html"   jsonschema:"rendered HTML fragment"`
}

func handleRenderMarkdown(cfg *config.Config) mcp.ToolHandlerFor[RenderMarkdownInput, RenderMarkdownOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderMarkdownInput) (*mcp.CallToolResult, RenderMarkdownOutput, error) {
		if strings.TrimSpace(input.Body) == "" {
			return nil, RenderMarkdownOutput{}, errors.New("body is required")
		}

		flavor := input.Flavor
		if flavor == "" {
			flavor = cfg.Markdown
		}
		flavor = strings.ToLower(strings.TrimSpace(flavor))
		if flavor == "" {
			flavor = markdown.FlavorMinimal
		}

		renderer, err := markdown.New(flavor, cfg.HighlightStyle)
		if err != nil {
			return nil, RenderMarkdownOutput{}, err
		}
		html, err := renderer.Render(input.Body)
		if err != nil {
			return nil, RenderMarkdownOutput{}, fmt.Errorf("rendering markdown: %w", err)
		}

		return nil, RenderMarkdownOutput{Flavor: flavor, HTML: html}, nil
	}
}
