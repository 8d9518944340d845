package site

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gorewood/inkwell/internal/page"
)

// Date layouts.
const (
	// DateLayout is the only accepted frontmatter date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// DisplayLayout formats dates for readers, e.g. "January 05, 2024".
	DisplayLayout = "January 02, 2006"
)

// Document is the raw content of one source file.
type Document struct {
	Name string // base file name, e.g. "hello.md"
	Text string
}

// Slug is the file name without its extension. It names the generated page.
func (d Document) Slug() string {
	base := filepath.Base(d.Name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Record is the validated metadata of one successfully built post.
type Record struct {
	Title         string `json:"title"`
	Date          string `json:"date"`
	FormattedDate string `json:"formatted_date"`
	Slug          string `json:"slug"`
}

// PageName is the file name of the record's generated page.
func (r Record) PageName() string {
	return r.Slug + ".html"
}

func (r Record) entry() page.Entry {
	return page.Entry{
		Title:         r.Title,
		Date:          r.Date,
		FormattedDate: r.FormattedDate,
		Slug:          r.Slug,
	}
}

// SortRecords returns a copy of records ordered by Date, newest first.
// Dates are fixed-width YYYY-MM-DD strings, so string order is date order.
// Records with equal dates keep their relative order.
func SortRecords(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return sorted
}
