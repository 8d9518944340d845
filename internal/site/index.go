package site

import (
	"fmt"

	"github.com/gorewood/inkwell/internal/output"
	"github.com/gorewood/inkwell/internal/page"
)

// DefaultIndexName is the file name of the index page.
const DefaultIndexName = "index.html"

// BuildIndex sorts records newest first, renders the index page and stores
// it. It returns the sorted records. Failures are fatal to the build and
// returned as *output.ExitError.
func (b *Builder) BuildIndex(records []Record) ([]Record, error) {
	sorted := SortRecords(records)

	entries := make([]page.Entry, 0, len(sorted))
	for _, record := range sorted {
		entries = append(entries, record.entry())
	}

	html, err := b.pages.RenderIndex(entries)
	if err != nil {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("rendering %s: %v", b.indexName, err), err)
	}

	if err := b.store.Write(b.indexName, html); err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("index page not written: %v", err), err)
	}

	return sorted, nil
}
