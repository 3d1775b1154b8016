package main

import (
	"fmt"

	"github.com/jonathan/career-pivots/internal/analysis"
	"github.com/jonathan/career-pivots/internal/logging"
	"github.com/jonathan/career-pivots/internal/observability"
	"github.com/jonathan/career-pivots/internal/timeline"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Report pivot counts and branch distributions per career",
		Long: "Loads a career timeline document and prints, per career, the number of pivot opportunities " +
			"and how they spread over branch indices. Careers with fewer pivots than the threshold are flagged. " +
			"The document is not modified.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = opts.cfg.Threshold
			}
			return runAnalyze(cmd, opts, dataPath(args, "", opts), threshold)
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", analysis.DefaultThreshold, "Pivot count below which a career needs enhancement")

	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *rootOptions, path string, threshold int) error {
	log := logging.ForRun(opts.logger, "analyze").WithField("path", path)

	log.Debug("Loading career data...")
	doc, err := timeline.LoadDocument(path)
	if err != nil {
		return fmt.Errorf("failed to load career data: %w", err)
	}

	report := analysis.Analyze(doc, threshold)
	observability.NewPrinter(cmd.OutOrStdout()).PrintAnalysis(report)

	log.WithField("needing_enhancement", len(report.NeedingEnhancement())).Debug("Analysis complete")
	return nil
}
