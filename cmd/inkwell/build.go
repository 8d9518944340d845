package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/inkwell/internal/config"
	"github.com/gorewood/inkwell/internal/output"
	"github.com/gorewood/inkwell/internal/project"
	"github.com/gorewood/inkwell/internal/site"
)

// buildResult is the JSON shape of a completed build.
type buildResult struct {
	Built   int               `json:"built"`
	Skipped int               `json:"skipped"`
	Index   string            `json:"index"`
	Posts   []site.Record     `json:"posts"`
	Issues  []*site.SkipError `json:"issues"`
}

// newBuildCmd creates the build command.
func newBuildCmd() *cobra.Command {
	flags := &siteFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render all posts and the index page",
		Long: `Render every markdown post in the blog directory to HTML and regenerate
the index page.

Posts missing a title or date are skipped with a warning. Posts with a
malformed date, or whose page cannot be written, are skipped with an error.
Skipped posts never stop the build; only a failure to write the index does.

Examples:
  inkwell build                      # Build using inkwell.yaml or defaults
  inkwell build --blog-dir site      # Build a different directory
  inkwell build --markdown extended  # Use GitHub Flavored Markdown
  inkwell build --json               # Print a machine-readable summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}
	addSiteFlags(cmd, flags)
	return cmd
}

func runBuild(cmd *cobra.Command, flags *siteFlags) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := buildSite(printer, cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	return printer.Success(map[string]any{"message": doneMessage(result.Built)})
}

func doneMessage(built int) string {
	return fmt.Sprintf("Done! Built %d post(s).", built)
}

// buildSite opens the project and builds it, reporting progress through
// printer. It is shared with the watch command.
func buildSite(printer *output.Printer, cfg *config.Config) (*buildResult, error) {
	proj, err := project.Open(cfg)
	if err != nil {
		return nil, err
	}

	sources, err := proj.Sources()
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 && !printer.IsJSON() {
		printer.Warn("no %s files found in %s", proj.Config().Extension, proj.Config().BlogDir)
	}

	report, err := proj.Build(&printerReporter{printer: printer})
	if err != nil {
		return nil, err
	}

	return &buildResult{
		Built:   report.Built(),
		Skipped: report.Skipped(),
		Index:   proj.IndexPath(),
		Posts:   report.Posts,
		Issues:  report.Issues,
	}, nil
}

// printerReporter prints build progress. Diagnostics go to stderr; in JSON
// mode everything is left to the final summary.
type printerReporter struct {
	printer *output.Printer
}

func (r *printerReporter) Building(name string) {
	r.printer.Println("Building " + name + "...")
}

func (r *printerReporter) Skipped(skip *site.SkipError) {
	if r.printer.IsJSON() {
		return
	}
	if skip.Level == site.LevelWarning {
		r.printer.Warn("%s", skip.Message)
		return
	}
	r.printer.Error(skip)
}

func (r *printerReporter) BuildingIndex(string) {
	r.printer.Println("Building index...")
}
