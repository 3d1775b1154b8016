package main

import (
	"fmt"
	"time"

	"github.com/jonathan/career-pivots/internal/enhance"
	"github.com/jonathan/career-pivots/internal/logging"
	"github.com/jonathan/career-pivots/internal/observability"
	"github.com/jonathan/career-pivots/internal/timeline"
	"github.com/spf13/cobra"
)

func newEnhanceCmd(opts *rootOptions) *cobra.Command {
	var (
		w         writeOptions
		templates string
		date      string
	)

	cmd := &cobra.Command{
		Use:   "enhance [path]",
		Short: "Regenerate every career's pivot opportunities from templates",
		Long: "Classifies each career as tech, science or business, generates the archetype's pivot templates " +
			"against the career's main path and replaces the existing pivot opportunities with them. " +
			"Existing pivots are overwritten; use --backup to keep a copy of the input.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if templates == "" {
				templates = opts.cfg.Templates
			}
			if date == "" {
				date = time.Now().Format(time.DateOnly)
			}
			w.backup = w.backup || opts.cfg.Backup
			return runEnhance(cmd, opts, dataPath(args, w.in, opts), w, templates, date)
		},
	}

	cmd.Flags().StringVarP(&w.in, "in", "i", "", "Path to the career timeline JSON file")
	cmd.Flags().StringVarP(&w.out, "out", "o", "", "Path to write the result (defaults to the input path)")
	cmd.Flags().BoolVar(&w.dryRun, "dry-run", false, "Print the report without writing")
	cmd.Flags().BoolVar(&w.backup, "backup", false, "Copy the input to <path>.bak before writing")
	cmd.Flags().StringVar(&templates, "templates", "", "Path to an alternative YAML template catalog")
	cmd.Flags().StringVar(&date, "date", "", "Date recorded as metadata.lastUpdated (YYYY-MM-DD, default today)")

	return cmd
}

func runEnhance(cmd *cobra.Command, opts *rootOptions, path string, w writeOptions, templates, date string) error {
	log := logging.ForRun(opts.logger, "enhance").WithField("path", path)

	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
	}

	catalog, err := loadCatalog(templates)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	log.Info("Loading career data...")
	doc, err := timeline.LoadDocument(path)
	if err != nil {
		return fmt.Errorf("failed to load career data: %w", err)
	}

	log.Info("Enhancing pivot opportunities...")
	result, err := enhance.New(catalog, log).Enhance(doc, date)
	if err != nil {
		return fmt.Errorf("failed to enhance career data: %w", err)
	}

	saved, err := saveDocument(doc, path, w, log)
	if err != nil {
		return fmt.Errorf("failed to save career data: %w", err)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintEnhancement(result, saved)
	return nil
}

func loadCatalog(path string) (*enhance.Catalog, error) {
	if path == "" {
		return enhance.DefaultCatalog()
	}
	return enhance.LoadCatalogFile(path)
}
