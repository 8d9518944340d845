package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/inkwell/internal/config"
	"github.com/gorewood/inkwell/internal/output"
	"github.com/gorewood/inkwell/internal/page"
)

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	var force bool
	flags := &siteFlags{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a blog in the current directory",
		Long: `Scaffold a blog in the current directory.

Creates:
  - the blog directory for markdown posts
  - the templates directory with default post.html and index.html
  - inkwell.yaml with the default settings

Existing files are left untouched unless --force is given.

Examples:
  inkwell init            # Create blog/, templates/ and inkwell.yaml
  inkwell init --force    # Reset templates and config to the defaults`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags, force)
		},
	}
	addSiteFlags(cmd, flags)
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing templates and config")
	return cmd
}

func runInit(cmd *cobra.Command, flags *siteFlags, force bool) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	created, err := scaffold(cfg, flags.configPath, force)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"created":       created,
			"blog_dir":      cfg.BlogDir,
			"templates_dir": cfg.TemplatesDir,
		})
	}

	if len(created) == 0 {
		printer.Println("Nothing to do: blog is already initialized.")
		return nil
	}
	for _, path := range created {
		printer.KeyValue("Created", path)
	}
	printer.Println()
	printer.Println("Next: inkwell new \"My first post\" && inkwell build")
	return nil
}

// scaffold creates the blog directory, default templates and config file.
// It returns the paths it created or overwrote.
func scaffold(cfg *config.Config, configPath string, force bool) ([]string, error) {
	created := []string{}

	if _, err := os.Stat(cfg.BlogDir); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(cfg.BlogDir, 0o755); err != nil {
			return nil, output.NewSystemErrorWithCause(fmt.Sprintf("creating %s: %v", cfg.BlogDir, err), err)
		}
		created = append(created, cfg.BlogDir)
	}

	templates, err := page.WriteDefaults(cfg.TemplatesDir, force)
	if err != nil {
		return nil, output.NewSystemErrorWithCause(err.Error(), err)
	}
	created = append(created, templates...)

	wrote, err := writeConfigFile(cfg, configPath, force)
	if err != nil {
		return nil, output.NewSystemErrorWithCause(err.Error(), err)
	}
	if wrote {
		created = append(created, configPath)
	}
	return created, nil
}

func writeConfigFile(cfg *config.Config, path string, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return false, fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
