// Package watch triggers rebuilds when blog sources or templates change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last relevant event before
// a rebuild runs.
const DefaultDebounce = 200 * time.Millisecond

// Options configure a Watcher.
type Options struct {
	BlogDir      string
	TemplatesDir string
	Extension    string        // source document extension, e.g. ".md"
	Debounce     time.Duration // zero means DefaultDebounce
	OnError      func(error)   // receives watcher errors; may be nil
}

// Watcher observes the blog and templates directories.
type Watcher struct {
	fs           *fsnotify.Watcher
	blogDir      string
	templatesDir string
	ext          string
	debounce     time.Duration
	onError      func(error)
}

// New starts watching both directories. Call Close when done.
func New(opts Options) (*Watcher, error) {
	blogDir, err := filepath.Abs(opts.BlogDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", opts.BlogDir, err)
	}
	templatesDir, err := filepath.Abs(opts.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", opts.TemplatesDir, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	for _, dir := range []string{blogDir, templatesDir} {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fs:           fsw,
		blogDir:      blogDir,
		templatesDir: templatesDir,
		ext:          opts.Extension,
		debounce:     opts.Debounce,
		onError:      opts.OnError,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if w.onError == nil {
		w.onError = func(error) {}
	}
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Relevant reports whether ev should trigger a rebuild. Source documents in
// the blog directory and any file in the templates directory count. Pages
// the build itself writes do not.
func (w *Watcher) Relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod || ev.Op == 0 {
		return false
	}

	path, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~") {
		return false
	}

	switch filepath.Dir(path) {
	case w.templatesDir:
		return true
	case w.blogDir:
		return strings.EqualFold(filepath.Ext(name), w.ext)
	default:
		return false
	}
}

// Run calls rebuild once per burst of relevant events until ctx is done or
// the watcher is closed. rebuild runs on Run's goroutine, so builds never
// overlap.
func (w *Watcher) Run(ctx context.Context, rebuild func()) error {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.Relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.onError(err)
		case <-fire:
			fire = nil
			rebuild()
		}
	}
}
