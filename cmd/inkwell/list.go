package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/inkwell/internal/project"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	flags := &siteFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts without building",
		Long: `List the posts a build would produce, newest first, and report any
files that would be skipped. Nothing is written.

Examples:
  inkwell list          # Table of posts
  inkwell list --json   # Posts and issues as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags)
		},
	}
	addSiteFlags(cmd, flags)
	return cmd
}

func runList(cmd *cobra.Command, flags *siteFlags) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	records, issues, err := project.Scan(cfg)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"count":  len(records),
			"posts":  records,
			"issues": issues,
		})
	}

	reporter := &printerReporter{printer: printer}
	for _, issue := range issues {
		reporter.Skipped(issue)
	}

	if len(records) == 0 {
		printer.Println("No posts found in " + cfg.BlogDir)
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Date, r.Title, r.PageName()})
	}
	printer.Table([]string{"DATE", "TITLE", "PAGE"}, rows)
	return nil
}
