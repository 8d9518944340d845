// Package page renders complete HTML documents for posts and the post index
// from html/template files.
//
// A template set is two files: post.html, executed with a Post, and
// index.html, executed with an Index. Defaults are embedded in the binary
// and written out by "inkwell init".
package page

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
)

// Template file names.
const (
	PostTemplate  = "post.html"
	IndexTemplate = "index.html"
)

//go:embed templates/*.html
var defaultsFS embed.FS

// Post is the data handed to post.html.
type Post struct {
	Title         string
	FormattedDate string
	Content       template.HTML
}

// Entry is one line of the index page.
type Entry struct {
	Title         string
	Date          string
	FormattedDate string
	Slug          string
}

// Href is the relative link to the entry's page.
func (e Entry) Href() string {
	return e.Slug + ".html"
}

// Index is the data handed to index.html. Posts is never nil.
type Index struct {
	Posts []Entry
}

// Renderer produces page HTML.
type Renderer interface {
	RenderPost(post Post) (string, error)
	RenderIndex(entries []Entry) (string, error)
}

// Templates is a parsed post and index template pair.
type Templates struct {
	post  *template.Template
	index *template.Template
}

// Load parses post.html and index.html from dir.
func Load(dir string) (*Templates, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("templates directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates path %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS parses post.html and index.html from the root of fsys.
func LoadFS(fsys fs.FS) (*Templates, error) {
	post, err := template.ParseFS(fsys, PostTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", PostTemplate, err)
	}
	index, err := template.ParseFS(fsys, IndexTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", IndexTemplate, err)
	}
	return &Templates{post: post, index: index}, nil
}

// Defaults returns the embedded template set.
func Defaults() *Templates {
	sub, err := fs.Sub(defaultsFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	tmpl, err := LoadFS(sub)
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return tmpl
}

// RenderPost implements Renderer.
func (t *Templates) RenderPost(post Post) (string, error) {
	return execute(t.post, post)
}

// RenderIndex implements Renderer. A nil or empty slice renders the
// template's empty state.
func (t *Templates) RenderIndex(entries []Entry) (string, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return execute(t.index, Index{Posts: entries})
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// WriteDefaults copies the embedded templates into dir, creating it if
// needed. Existing files are kept unless force is set. It returns the paths
// written.
func WriteDefaults(dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	var written []string
	for _, name := range []string{PostTemplate, IndexTemplate} {
		path := filepath.Join(dir, name)
		if !force {
			if _, err := os.Stat(path); err == nil {
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return written, fmt.Errorf("checking %s: %w", path, err)
			}
		}
		data, err := defaultsFS.ReadFile("templates/" + name)
		if err != nil {
			return written, fmt.Errorf("reading embedded %s: %w", name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
