package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/inkwell/internal/config"
	"github.com/gorewood/inkwell/internal/output"
)

// siteFlags override settings from inkwell.yaml and the environment.
// Empty values leave the loaded setting alone.
type siteFlags struct {
	configPath   string
	blogDir      string
	templatesDir string
	indexName    string
	markdown     string
}

func addSiteFlags(cmd *cobra.Command, flags *siteFlags) {
	cmd.Flags().StringVar(&flags.configPath, "config", config.FileName, "Path to the config file")
	cmd.Flags().StringVar(&flags.blogDir, "blog-dir", "", "Directory holding markdown posts and generated pages")
	cmd.Flags().StringVar(&flags.templatesDir, "templates-dir", "", "Directory holding post.html and index.html")
	cmd.Flags().StringVar(&flags.indexName, "index-name", "", "File name of the generated index page")
	cmd.Flags().StringVar(&flags.markdown, "markdown", "", "Markdown flavor: minimal or extended")
}

// loadConfig resolves the effective settings. Errors are user errors.
func loadConfig(flags *siteFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}

	for _, o := range []struct {
		value  string
		target *string
	}{
		{flags.blogDir, &cfg.BlogDir},
		{flags.templatesDir, &cfg.TemplatesDir},
		{flags.indexName, &cfg.IndexName},
		{flags.markdown, &cfg.Markdown},
	} {
		if o.value != "" {
			*o.target = o.value
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("invalid configuration: %v", err), err)
	}
	return cfg, nil
}
