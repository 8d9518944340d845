package site

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store persists rendered pages under a name.
type Store interface {
	Write(name, html string) error
}

// DirStore writes pages as files in a directory.
type DirStore struct {
	dir string
}

// NewDirStore returns a store rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Path returns where a page named name is written.
func (s *DirStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Write implements Store, replacing any previous file.
func (s *DirStore) Write(name, html string) error {
	path := s.Path(name)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
