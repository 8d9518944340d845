package mcp

import (
	"github.com/gorewood/inkwell/internal/site"
)

// PostSummary is a built or buildable post.
type PostSummary struct {
	Title         string `json:"title"          jsonschema:"post title from frontmatter"`
	Date          string `json:"date"           jsonschema:"publication date (YYYY-MM-DD)"`
	FormattedDate string `json:"formatted_date" jsonschema:"human-readable date"`
	Slug          string `json:"slug"           jsonschema:"file name without extension"`
	Page          string `json:"page"           jsonschema:"generated HTML file name"`
}

// Issue is a source file that produced no post.
type Issue struct {
	File    string `json:"file"    jsonschema:"source file name"`
	Level   string `json:"level"   jsonschema:"warning or error"`
	Message string `json:"message" jsonschema:"what was wrong"`
}

func toPostSummaries(records []site.Record) []PostSummary {
	result := make([]PostSummary, 0, len(records))
	for _, record := range records {
		result = append(result, PostSummary{
			Title:         record.Title,
			Date:          record.Date,
			FormattedDate: record.FormattedDate,
			Slug:          record.Slug,
			Page:          record.PageName(),
		})
	}
	return result
}

func toIssues(skips []*site.SkipError) []Issue {
	result := make([]Issue, 0, len(skips))
	for _, skip := range skips {
		result = append(result, Issue{
			File:    skip.Name,
			Level:   skip.Level.String(),
			Message: skip.Message,
		})
	}
	return result
}
