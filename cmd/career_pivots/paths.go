package main

import (
	"github.com/jonathan/career-pivots/internal/timeline"
	"github.com/jonathan/career-pivots/internal/types"
	"github.com/sirupsen/logrus"
)

// writeOptions are the flags shared by the commands that rewrite the document.
type writeOptions struct {
	in     string
	out    string
	dryRun bool
	backup bool
}

// dataPath picks the input file: positional argument, then --in, then the
// configured path (environment or config file), then the default.
func dataPath(args []string, in string, opts *rootOptions) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if in != "" {
		return in
	}
	return opts.cfg.DataPath
}

// saveDocument writes doc to the output path unless this is a dry run. It
// reports whether anything was written.
func saveDocument(doc *types.Document, inPath string, w writeOptions, log *logrus.Entry) (bool, error) {
	if w.dryRun {
		log.Info("Dry run, skipping save")
		return false, nil
	}

	outPath := w.out
	if outPath == "" {
		outPath = inPath
	}

	if w.backup {
		backupPath, err := timeline.Backup(inPath)
		if err != nil {
			return false, err
		}
		log.WithField("backup", backupPath).Info("Backed up career data")
	}

	log.WithField("path", outPath).Info("Saving career data...")
	if err := timeline.SaveDocument(doc, outPath); err != nil {
		return false, err
	}
	return true, nil
}
