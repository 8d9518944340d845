package site

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorewood/inkwell/internal/markdown"
	"github.com/gorewood/inkwell/internal/page"
)

// memStore records written pages in memory. Names listed in fail return
// the associated error instead.
type memStore struct {
	pages map[string]string
	fail  map[string]error
}

func newMemStore() *memStore {
	return &memStore{pages: map[string]string{}, fail: map[string]error{}}
}

func (s *memStore) Write(name, html string) error {
	if err := s.fail[name]; err != nil {
		return err
	}
	s.pages[name] = html
	return nil
}

// recordingReporter captures build progress callbacks.
type recordingReporter struct {
	building []string
	skipped  []*SkipError
	index    string
}

func (r *recordingReporter) Building(name string)      { r.building = append(r.building, name) }
func (r *recordingReporter) Skipped(err *SkipError)    { r.skipped = append(r.skipped, err) }
func (r *recordingReporter) BuildingIndex(name string) { r.index = name }

// brokenPages fails every render.
type brokenPages struct{}

func (brokenPages) RenderPost(page.Post) (string, error)     { return "", errors.New("template exploded") }
func (brokenPages) RenderIndex([]page.Entry) (string, error) { return "", errors.New("template exploded") }

func newTestBuilder(store Store) *Builder {
	return NewBuilder(markdown.Minimal{}, page.Defaults(), store)
}

func post(title, date, body string) string {
	text := "---\n"
	if title != "" {
		text += "title: " + title + "\n"
	}
	if date != "" {
		text += "date: " + date + "\n"
	}
	return text + "---\n" + body
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
}
