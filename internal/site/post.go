package site

import (
	"fmt"
	"html/template"
	"time"

	"github.com/gorewood/inkwell/internal/frontmatter"
	"github.com/gorewood/inkwell/internal/page"
)

// Inspect validates a document's frontmatter and returns its record and
// body without rendering anything. Missing fields yield a warning-level
// *SkipError, a malformed date an error-level one.
func Inspect(doc Document) (Record, string, error) {
	meta, body := frontmatter.Parse(doc.Text)

	title, err := meta.Require("title")
	if err != nil {
		return Record{}, "", skipWarning(doc.Name, err, "%s missing 'title' in frontmatter", doc.Name)
	}

	date, err := meta.Require("date")
	if err != nil {
		return Record{}, "", skipWarning(doc.Name, err, "%s missing 'date' in frontmatter", doc.Name)
	}

	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		cause := fmt.Errorf("%w: %w", ErrInvalidDate, err)
		return Record{}, "", skipError(doc.Name, cause, "%s has %s", doc.Name, ErrInvalidDate)
	}

	return Record{
		Title:         title,
		Date:          date,
		FormattedDate: parsed.Format(DisplayLayout),
		Slug:          doc.Slug(),
	}, body, nil
}

// BuildPost validates, renders and stores one document. On success the
// page is written as <slug>.html and the record is returned. Any failure
// is a *SkipError; nothing is written in that case.
func (b *Builder) BuildPost(doc Document) (Record, error) {
	record, body, err := Inspect(doc)
	if err != nil {
		return Record{}, err
	}

	content, err := b.markdown.Render(body)
	if err != nil {
		return Record{}, skipError(doc.Name, err, "rendering markdown for %s: %v", doc.Name, err)
	}

	html, err := b.pages.RenderPost(page.Post{
		Title:         record.Title,
		FormattedDate: record.FormattedDate,
		Content:       template.HTML(content), //nolint:gosec // rendered markdown is trusted author content
	})
	if err != nil {
		return Record{}, skipError(doc.Name, err, "rendering page for %s: %v", doc.Name, err)
	}

	if err := b.store.Write(record.PageName(), html); err != nil {
		return Record{}, skipError(doc.Name, err, "%s: %v", doc.Name, err)
	}

	return record, nil
}
