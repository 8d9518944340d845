package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gorewood/inkwell/internal/config"
	"github.com/gorewood/inkwell/internal/output"
	"github.com/gorewood/inkwell/internal/watch"
)

// newWatchCmd creates the watch command.
func newWatchCmd() *cobra.Command {
	flags := &siteFlags{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild whenever posts or templates change",
		Long: `Build once, then rebuild whenever a post in the blog directory or a file in
the templates directory changes. Generated pages are ignored, so a build
never triggers another. Stop with Ctrl+C.

Examples:
  inkwell watch
  inkwell watch --markdown extended`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, flags)
		},
	}
	addSiteFlags(cmd, flags)
	return cmd
}

func runWatch(cmd *cobra.Command, flags *siteFlags) error {
	printer := newPrinter(cmd)

	cfg, err := loadConfig(flags)
	if err != nil {
		printer.Error(err)
		return err
	}

	// Only the first build is fatal; later failures are reported and the
	// watch continues.
	if err := rebuild(printer, cfg); err != nil {
		return err
	}

	watcher, err := watch.New(watch.Options{
		BlogDir:      cfg.BlogDir,
		TemplatesDir: cfg.TemplatesDir,
		Extension:    cfg.Extension,
		OnError: func(err error) {
			printer.Warn("watcher: %v", err)
		},
	})
	if err != nil {
		sysErr := output.NewSystemErrorWithCause(err.Error(), err)
		printer.Error(sysErr)
		return sysErr
	}
	defer watcher.Close() //nolint:errcheck // best-effort close on shutdown

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer.Println("Watching " + cfg.BlogDir + " and " + cfg.TemplatesDir + " for changes (Ctrl+C to stop)")
	return watcher.Run(ctx, func() {
		_ = rebuild(printer, cfg)
	})
}

// rebuild runs one build and prints its outcome.
func rebuild(printer *output.Printer, cfg *config.Config) error {
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
