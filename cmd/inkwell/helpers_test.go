package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorewood/inkwell/internal/page"
)

// runInDir runs testFunc with dir as the working directory.
func runInDir(t *testing.T, dir string, testFunc func()) {
	t.Helper()
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	defer func() {
		if err := os.Chdir(oldDir); err != nil {
			t.Errorf("failed to restore dir: %v", err)
		}
	}()
	testFunc()
}

// isolateEnv clears INKWELL_* settings and points the global config dir
// at an empty temp dir.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"INKWELL_BLOG_DIR",
		"INKWELL_TEMPLATES_DIR",
		"INKWELL_INDEX_NAME",
		"INKWELL_MARKDOWN",
		"INKWELL_HIGHLIGHT_STYLE",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("INKWELL_CONFIG_HOME", t.TempDir())
}

// execute runs the root command with args in dir.
func execute(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	runInDir(t, dir, func() {
		cmd := newRootCmd()
		cmd.SetOut(&outBuf)
		cmd.SetErr(&errBuf)
		cmd.SetArgs(args)
		err = cmd.Execute()
	})
	return outBuf.String(), errBuf.String(), err
}

// newTestBlog creates blog/ and templates/ under a temp dir, writes posts
// into blog/ and returns the root.
func newTestBlog(t *testing.T, posts map[string]string) string {
	t.Helper()
	isolateEnv(t)
	root := t.TempDir()
	blog := filepath.Join(root, "blog")
	if err := os.Mkdir(blog, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := page.WriteDefaults(filepath.Join(root, "templates"), false); err != nil {
		t.Fatal(err)
	}
	for name, content := range posts {
		if err := os.WriteFile(filepath.Join(blog, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return root
}
