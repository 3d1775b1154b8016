package main

import (
	"fmt"

	"github.com/jonathan/career-pivots/internal/logging"
	"github.com/jonathan/career-pivots/internal/observability"
	"github.com/jonathan/career-pivots/internal/restore"
	"github.com/jonathan/career-pivots/internal/timeline"
	"github.com/spf13/cobra"
)

func newRestoreCmd(opts *rootOptions) *cobra.Command {
	var w writeOptions

	cmd := &cobra.Command{
		Use:   "restore [path]",
		Short: "Add missing index-2 and index-3 pivot opportunities",
		Long: "Adds a mid-senior pivot at branch index 2 and an executive pivot at branch index 3 to every career " +
			"that lacks them. Existing pivots are never changed, so running it again adds nothing.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w.backup = w.backup || opts.cfg.Backup
			return runRestore(cmd, opts, dataPath(args, w.in, opts), w)
		},
	}

	cmd.Flags().StringVarP(&w.in, "in", "i", "", "Path to the career timeline JSON file")
	cmd.Flags().StringVarP(&w.out, "out", "o", "", "Path to write the result (defaults to the input path)")
	cmd.Flags().BoolVar(&w.dryRun, "dry-run", false, "Print the report without writing")
	cmd.Flags().BoolVar(&w.backup, "backup", false, "Copy the input to <path>.bak before writing")

	return cmd
}

func runRestore(cmd *cobra.Command, opts *rootOptions, path string, w writeOptions) error {
	log := logging.ForRun(opts.logger, "restore").WithField("path", path)

	log.Info("Loading career data...")
	doc, err := timeline.LoadDocument(path)
	if err != nil {
		return fmt.Errorf("failed to load career data: %w", err)
	}

	result := restore.Restore(doc)

	saved, err := saveDocument(doc, path, w, log)
	if err != nil {
		return fmt.Errorf("failed to save career data: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintRestoration(result, saved)
	return nil
}
