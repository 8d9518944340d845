package site

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gorewood/inkwell/internal/output"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md":      post("Second", "2024-01-01", "two"),
		"b.md":      post("First", "2024-06-15", "one"),
		"c.md":      post("Third", "2023-12-31", "three"),
		"d.md":      post("", "2024-02-02", "untitled"),
		"e.md":      post("Broken", "2024-13-40", "bad"),
		"notes.txt": "not a post",
	})

	paths, err := Discover(dir, DefaultExtension)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	reporter := &recordingReporter{}
	builder := newTestBuilder(NewDirStore(dir)).WithReporter(reporter)

	report, err := builder.Run(paths)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Built() != 3 || report.Skipped() != 2 {
		t.Errorf("built %d skipped %d, want 3 and 2", report.Built(), report.Skipped())
	}

	var slugs []string
	for _, r := range report.Posts {
		slugs = append(slugs, r.Slug)
	}
	if !slices.Equal(slugs, []string{"b", "a", "c"}) {
		t.Errorf("post order = %v, want [b a c]", slugs)
	}

	if !slices.Equal(reporter.building, []string{"a.md", "b.md", "c.md", "d.md", "e.md"}) {
		t.Errorf("building = %v", reporter.building)
	}
	if reporter.index != DefaultIndexName {
		t.Errorf("BuildingIndex called with %q", reporter.index)
	}
	if len(reporter.skipped) != 2 {
		t.Fatalf("skipped = %v", reporter.skipped)
	}
	if reporter.skipped[0].Name != "d.md" || reporter.skipped[0].Level != LevelWarning {
		t.Errorf("first skip = %+v, want d.md warning", reporter.skipped[0])
	}
	if reporter.skipped[1].Name != "e.md" || reporter.skipped[1].Level != LevelError {
		t.Errorf("second skip = %+v, want e.md error", reporter.skipped[1])
	}

	for _, name := range []string{"a.html", "b.html", "c.html", "index.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	for _, name := range []string{"d.html", "e.html", "notes.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s should not exist (err = %v)", name, err)
		}
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(index)
	if strings.Contains(html, "Broken") || strings.Contains(html, "untitled") {
		t.Error("index should list only successful posts")
	}
	first := strings.Index(html, "b.html")
	last := strings.Index(html, "c.html")
	if first < 0 || last < 0 || first > last {
		t.Errorf("index order wrong:\n%s", html)
	}
}

func TestRun_Rebuild(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"one.md": post("One", "2024-01-01", "# One"),
		"two.md": post("Two", "2024-01-02", "*two*"),
	})

	build := func() string {
		paths, err := Discover(dir, DefaultExtension)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := newTestBuilder(NewDirStore(dir)).Run(paths); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(filepath.Join(dir, DefaultIndexName))
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}

	first := build()
	second := build()
	if first != second {
		t.Error("rebuilding unchanged sources should produce identical output")
	}
}

func TestRun_EmptyBlog(t *testing.T) {
	store := newMemStore()
	report, err := newTestBuilder(store).Run(nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Built() != 0 || report.Skipped() != 0 {
		t.Errorf("report = %+v", report)
	}
	if report.Posts == nil || report.Issues == nil {
		t.Error("report slices should be non-nil")
	}
	if !strings.Contains(store.pages[DefaultIndexName], "No posts yet.") {
		t.Error("empty blog should still get an index page")
	}
}

func TestRun_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"ok.md": post("OK", "2024-01-01", "x")})
	paths := []string{filepath.Join(dir, "gone.md"), filepath.Join(dir, "ok.md")}

	report, err := newTestBuilder(newMemStore()).Run(paths)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Built() != 1 || report.Skipped() != 1 {
		t.Fatalf("built %d skipped %d", report.Built(), report.Skipped())
	}
	issue := report.Issues[0]
	if issue.Name != "gone.md" || issue.Level != LevelError {
		t.Errorf("issue = %+v", issue)
	}
	if !strings.HasPrefix(issue.Message, "reading gone.md") {
		t.Errorf("message = %q", issue.Message)
	}
}

func TestRun_IndexWriteFailure(t *testing.T) {
	store := newMemStore()
	store.fail[DefaultIndexName] = errors.New("permission denied")

	report, err := newTestBuilder(store).Run(nil)
	if err == nil {
		t.Fatal("Run() should fail when the index cannot be written")
	}
	if output.GetExitCode(err) != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitSystemError)
	}
	if report == nil {
		t.Error("report should be returned alongside the fatal error")
	}
}

func TestPreflight(t *testing.T) {
	root := t.TempDir()
	blog := filepath.Join(root, "blog")
	templates := filepath.Join(root, "templates")
	file := filepath.Join(root, "file.txt")
	for _, dir := range []string{blog, templates} {
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	writeFiles(t, root, map[string]string{"file.txt": "x"})

	tests := []struct {
		name      string
		blog      string
		templates string
		wantMsg   string
	}{
		{"both present", blog, templates, ""},
		{"blog missing", filepath.Join(root, "nope"), templates, "blog directory not found"},
		{"templates missing", blog, filepath.Join(root, "nope"), "templates directory not found"},
		{"blog is a file", file, templates, "blog directory not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Preflight(tt.blog, tt.templates)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("Preflight() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("Preflight() error = %v, want %q", err, tt.wantMsg)
			}
			if output.GetExitCode(err) != output.ExitUserError {
				t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"zeta.md":    "",
		"alpha.md":   "",
		"LOUD.MD":    "",
		"index.html": "",
		"readme.txt": "",
	})
	if err := os.Mkdir(filepath.Join(dir, "drafts.md"), 0o755); err != nil {
		t.Fatal(err)
	}

	paths, err := Discover(dir, "")
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	if !slices.Equal(names, []string{"LOUD.MD", "alpha.md", "zeta.md"}) {
		t.Errorf("names = %v", names)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), DefaultExtension)
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d (err = %v)", output.GetExitCode(err), output.ExitUserError, err)
	}
}

func TestDirStore(t *testing.T) {
	dir := t.TempDir()
	store := NewDirStore(dir)

	if err := store.Write("a.html", "first"); err != nil {
		t.Fatal(err)
	}
	if err := store.Write("a.html", "second"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(store.Path("a.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want overwrite", data)
	}

	if err := NewDirStore(filepath.Join(dir, "missing")).Write("a.html", "x"); err == nil {
		t.Error("Write() into a missing directory should fail")
	}
}
