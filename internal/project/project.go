// Package project wires a validated config to the site builder: it resolves
// the markdown flavor, loads the page templates and builds or scans the
// blog directory.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/gorewood/inkwell/internal/config"
	"github.com/gorewood/inkwell/internal/markdown"
	"github.com/gorewood/inkwell/internal/output"
	"github.com/gorewood/inkwell/internal/page"
	"github.com/gorewood/inkwell/internal/site"
)

// Project is a blog ready to build.
type Project struct {
	cfg      *config.Config
	markdown markdown.Renderer
	pages    page.Renderer
}

// Open validates cfg, checks that both directories exist and parses the
// templates. All failures are *output.ExitError user errors.
func Open(cfg *config.Config) (*Project, error) {
	if err := cfg.Validate(); err != nil {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("invalid configuration: %v", err), err)
	}
	if err := site.Preflight(cfg.BlogDir, cfg.TemplatesDir); err != nil {
		return nil, err
	}

	pages, err := page.Load(cfg.TemplatesDir)
	if err != nil {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("loading templates: %v", err), err)
	}

	md, err := cfg.Renderer()
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}

	return &Project{cfg: cfg, markdown: md, pages: pages}, nil
}

// Config returns the project's settings.
func (p *Project) Config() *config.Config {
	return p.cfg
}

// IndexPath returns where the index page is written.
func (p *Project) IndexPath() string {
	return filepath.Join(p.cfg.BlogDir, p.cfg.IndexName)
}

// Sources lists the source documents in build order.
func (p *Project) Sources() ([]string, error) {
	return site.Discover(p.cfg.BlogDir, p.cfg.Extension)
}

// Build renders every source document and the index page into the blog
// directory. reporter may be nil.
func (p *Project) Build(reporter site.Reporter) (*site.Report, error) {
	paths, err := p.Sources()
	if err != nil {
		return nil, err
	}
	builder := site.NewBuilder(p.markdown, p.pages, site.NewDirStore(p.cfg.BlogDir)).
		WithReporter(reporter).
		WithIndexName(p.cfg.IndexName)
	return builder.Run(paths)
}

// Scan validates the source documents without writing. Unlike Open it does
// not need the templates directory.
func Scan(cfg *config.Config) ([]site.Record, []*site.SkipError, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, output.NewUserErrorWithCause(fmt.Sprintf("invalid configuration: %v", err), err)
	}
	paths, err := site.Discover(cfg.BlogDir, cfg.Extension)
	if err != nil {
		return nil, nil, err
	}
	records, issues := site.Scan(paths)
	return records, issues, nil
}
