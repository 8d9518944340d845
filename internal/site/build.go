package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gorewood/inkwell/internal/markdown"
	"github.com/gorewood/inkwell/internal/output"
	"github.com/gorewood/inkwell/internal/page"
)

// DefaultExtension is the source document extension.
const DefaultExtension = ".md"

// Reporter observes build progress.
type Reporter interface {
	// Building is called before each document is processed.
	Building(name string)
	// Skipped is called for each document that produced no post.
	Skipped(err *SkipError)
	// BuildingIndex is called once, after all documents.
	BuildingIndex(name string)
}

type nopReporter struct{}

func (nopReporter) Building(string)      {}
func (nopReporter) Skipped(*SkipError)   {}
func (nopReporter) BuildingIndex(string) {}

// Builder turns documents into pages.
type Builder struct {
	markdown  markdown.Renderer
	pages     page.Renderer
	store     Store
	reporter  Reporter
	indexName string
}

// NewBuilder creates a Builder that renders bodies with md, pages with
// pages, and writes through store.
func NewBuilder(md markdown.Renderer, pages page.Renderer, store Store) *Builder {
	return &Builder{
		markdown:  md,
		pages:     pages,
		store:     store,
		reporter:  nopReporter{},
		indexName: DefaultIndexName,
	}
}

// WithReporter sets the progress observer. Returns the builder for chaining.
func (b *Builder) WithReporter(r Reporter) *Builder {
	if r == nil {
		r = nopReporter{}
	}
	b.reporter = r
	return b
}

// WithIndexName overrides the index page file name.
func (b *Builder) WithIndexName(name string) *Builder {
	if name != "" {
		b.indexName = name
	}
	return b
}

// IndexName returns the index page file name.
func (b *Builder) IndexName() string {
	return b.indexName
}

// Report summarizes a completed build.
type Report struct {
	Posts  []Record     `json:"posts"`  // newest first, as listed on the index
	Issues []*SkipError `json:"issues"` // in processing order
}

// Built returns the number of posts written.
func (r *Report) Built() int {
	return len(r.Posts)
}

// Skipped returns the number of documents that produced no post.
func (r *Report) Skipped() int {
	return len(r.Issues)
}

// Run builds every document in paths, in order, then the index page.
// Per-document problems are collected in the report. The returned error is
// non-nil only when the index page could not be produced.
func (b *Builder) Run(paths []string) (*Report, error) {
	report := &Report{Posts: []Record{}, Issues: []*SkipError{}}

	var records []Record
	for _, path := range paths {
		name := filepath.Base(path)
		b.reporter.Building(name)

		record, err := b.buildFile(path)
		if err != nil {
			skip, ok := AsSkipError(err)
			if !ok {
				skip = skipError(name, err, "%v", err)
			}
			report.Issues = append(report.Issues, skip)
			b.reporter.Skipped(skip)
			continue
		}
		records = append(records, record)
	}

	b.reporter.BuildingIndex(b.indexName)
	sorted, err := b.BuildIndex(records)
	if err != nil {
		return report, err
	}
	report.Posts = sorted
	return report, nil
}

func (b *Builder) buildFile(path string) (Record, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return Record{}, err
	}
	return b.BuildPost(doc)
}

// ReadDocument loads the document at path. Read failures are error-level
// *SkipError values.
func ReadDocument(path string) (Document, error) {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, skipError(name, err, "reading %s: %v", name, err)
	}
	return Document{Name: name, Text: string(data)}, nil
}

// Preflight checks that the blog and templates directories exist. Its
// errors are *output.ExitError user errors.
func Preflight(blogDir, templatesDir string) error {
	if err := requireDir(blogDir); err != nil {
		return output.NewUserErrorWithCause(fmt.Sprintf("blog directory not found: %s", blogDir), err)
	}
	if err := requireDir(templatesDir); err != nil {
		return output.NewUserErrorWithCause(fmt.Sprintf("templates directory not found: %s", templatesDir), err)
	}
	return nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	return nil
}

// Discover lists the documents directly inside dir whose extension matches
// ext (case-insensitive), sorted by name.
func Discover(dir, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, output.NewUserErrorWithCause(fmt.Sprintf("blog directory not found: %s", dir), err)
		}
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("reading %s: %v", dir, err), err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	slices.Sort(paths)
	return paths, nil
}
