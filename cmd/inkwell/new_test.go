package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorewood/inkwell/internal/output"
)

func fixNow(t *testing.T, when time.Time) {
	t.Helper()
	old := now
	now = func() time.Time { return when }
	t.Cleanup(func() { now = old })
}

func TestNewCommand(t *testing.T) {
	fixNow(t, time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name        string
		args        []string
		wantFile    string
		wantContent string
	}{
		{
			name:        "title only",
			args:        []string{"new", "Hello World"},
			wantFile:    "hello-world.md",
			wantContent: "---\ntitle: Hello World\ndate: 2024-03-05\n---\n\n",
		},
		{
			name:        "explicit date",
			args:        []string{"new", "Trip", "--date", "2023-12-31"},
			wantFile:    "trip.md",
			wantContent: "---\ntitle: Trip\ndate: 2023-12-31\n---\n\n",
		},
		{
			name:        "slug only derives title",
			args:        []string{"new", "--slug", "summer-trip"},
			wantFile:    "summer-trip.md",
			wantContent: "---\ntitle: Summer Trip\ndate: 2024-03-05\n---\n\n",
		},
		{
			name:        "title and slug",
			args:        []string{"new", "A Long Title", "--slug", "short"},
			wantFile:    "short.md",
			wantContent: "---\ntitle: A Long Title\ndate: 2024-03-05\n---\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newTestBlog(t, nil)

			stdout, stderr, err := execute(t, root, tt.args...)
			if err != nil {
				t.Fatalf("new error = %v\nstderr: %s", err, stderr)
			}

			path := filepath.Join(root, "blog", tt.wantFile)
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("%s not created: %v", tt.wantFile, err)
			}
			if string(data) != tt.wantContent {
				t.Errorf("content = %q, want %q", data, tt.wantContent)
			}
			if !strings.Contains(stdout, tt.wantFile) {
				t.Errorf("stdout should mention the new file: %q", stdout)
			}
		})
	}
}

func TestNewCommand_BuildsCleanly(t *testing.T) {
	fixNow(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	root := newTestBlog(t, nil)

	if _, _, err := execute(t, root, "new", "Fresh Post"); err != nil {
		t.Fatal(err)
	}
	stdout, stderr, err := execute(t, root, "build")
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	if stderr != "" {
		t.Errorf("a new post should build without diagnostics: %s", stderr)
	}
	if !strings.Contains(stdout, "Done! Built 1 post(s).") {
		t.Errorf("stdout:\n%s", stdout)
	}
}

func TestNewCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"no title or slug", []string{"new"}, output.ExitUserError},
		{"bad date", []string{"new", "Hi", "--date", "2024-13-40"}, output.ExitUserError},
		{"timestamp date", []string{"new", "Hi", "--date", "2024-03-05T00:00:00Z"}, output.ExitUserError},
		{"multiline title", []string{"new", "Hi\nthere"}, output.ExitUserError},
		{"existing post", []string{"new", "Taken"}, output.ExitConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newTestBlog(t, map[string]string{"taken.md": "original"})

			_, _, err := execute(t, root, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := output.GetExitCode(err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (err = %v)", code, tt.wantCode, err)
			}

			data, err := os.ReadFile(filepath.Join(root, "blog", "taken.md"))
			if err != nil || string(data) != "original" {
				t.Errorf("existing post modified: %q, %v", data, err)
			}
		})
	}
}

func TestTitleFromSlug(t *testing.T) {
	tests := map[string]string{
		"summer-trip":     "Summer Trip",
		"my_first_post":   "My First Post",
		"single":          "Single",
		"2024-in-review":  "2024 In Review",
		"double--hyphens": "Double Hyphens",
	}
	for in, want := range tests {
		if got := titleFromSlug(in); got != want {
			t.Errorf("titleFromSlug(%q) = %q, want %q", in, got, want)
		}
	}
}
