package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gorewood/inkwell/internal/output"
	"github.com/gorewood/inkwell/internal/site"
)

// now is swapped in tests.
var now = time.Now

// newPostFlags holds the command-line flags for the new command.
type newPostFlags struct {
	site siteFlags
	date string
	slug string
}

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	flags := &newPostFlags{}
	cmd := &cobra.Command{
		Use:   "new [title]",
		Short: "Create a new post with frontmatter",
		Long: `Create a new markdown post in the blog directory.

The file name is derived from the title unless --slug is given. When only
--slug is given, the title is derived from it. Existing posts are never
overwritten.

Examples:
  inkwell new "Hello, World"                 # blog/hello-world.md dated today
  inkwell new "Trip Notes" --date 2024-03-05 # Backdate a post
  inkwell new --slug summer-trip             # Title "Summer Trip"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := ""
			if len(args) == 1 {
				title = args[0]
			}
			return runNew(cmd, flags, title)
		},
	}
	addSiteFlags(cmd, &flags.site)
	cmd.Flags().StringVar(&flags.date, "date", "", "Post date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&flags.slug, "slug", "", "File name without extension")
	return cmd
}

func runNew(cmd *cobra.Command, flags *newPostFlags, title string) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(&flags.site)
	if err != nil {
		printer.Error(err)
		return err
	}

	post, err := preparePost(strings.TrimSpace(title), flags.slug, flags.date)
	if err != nil {
		printer.Error(err)
		return err
	}

	path := filepath.Join(cfg.BlogDir, post.slug+cfg.Extension)
	if err := writeNewPost(path, post); err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"path":  path,
			"title": post.title,
			"date":  post.date,
			"slug":  post.slug,
		})
	}
	printer.KeyValue("Created", path)
	return nil
}

type newPost struct {
	title string
	date  string
	slug  string
}

// preparePost fills in whichever of title and slug is missing and checks
// the date.
func preparePost(title, slugFlag, dateFlag string) (newPost, error) {
	if strings.ContainsAny(title, "\r\n") {
		return newPost{}, output.NewUserError("title must be a single line")
	}

	var post newPost
	switch {
	case slugFlag != "":
		normalized, err := slug.Normalize(slugFlag)
		if err != nil || normalized == "" {
			return newPost{}, output.NewUserError(fmt.Sprintf("invalid slug %q", slugFlag))
		}
		post.slug = normalized
		post.title = title
		if post.title == "" {
			post.title = titleFromSlug(normalized)
		}
	case title != "":
		normalized, err := slug.Normalize(title)
		if err != nil || normalized == "" {
			return newPost{}, output.NewUserError(fmt.Sprintf("cannot derive a file name from %q; pass --slug", title))
		}
		post.slug = normalized
		post.title = title
	default:
		return newPost{}, output.NewUserError("a title or --slug is required")
	}

	post.date = dateFlag
	if post.date == "" {
		post.date = now().Format(site.DateLayout)
	}
	if _, err := time.Parse(site.DateLayout, post.date); err != nil {
		return newPost{}, output.NewUserErrorWithCause(fmt.Sprintf("--date %q: %v", post.date, site.ErrInvalidDate), err)
	}
	return post, nil
}

// titleFromSlug turns "summer-trip" into "Summer Trip".
func titleFromSlug(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func writeNewPost(path string, post newPost) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("creating %s: %v", filepath.Dir(path), err), err)
	}

	content := fmt.Sprintf("---\ntitle: %s\ndate: %s\n---\n\n", post.title, post.date)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return output.NewConflictError("post already exists: " + path)
		}
		return output.NewSystemErrorWithCause(fmt.Sprintf("creating %s: %v", path, err), err)
	}
	if _, err := file.WriteString(content); err != nil {
		_ = file.Close()
		return output.NewSystemErrorWithCause(fmt.Sprintf("writing %s: %v", path, err), err)
	}
	if err := file.Close(); err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("writing %s: %v", path, err), err)
	}
	return nil
}
