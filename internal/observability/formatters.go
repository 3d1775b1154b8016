// Package observability provides the human-readable console reports of the
// career pivot tools.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-pivots/internal/analysis"
	"github.com/jonathan/career-pivots/internal/enhance"
	"github.com/jonathan/career-pivots/internal/restore"
)

const (
	// ruleWidth is the width of separator lines
	ruleWidth = 60
	statusOK  = "OK"
	statusLow = "NEEDS ENHANCEMENT"
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printHeader prints a "=== TITLE ===" section header
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printHeader(title string) {
	fmt.Fprintf(p.out, "=== %s ===\n", title)
}

// PrintAnalysis outputs the pivot count report: totals, the careers needing
// enhancement, then every career sorted by key.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAnalysis(report *analysis.Report) {
	if report == nil {
		return
	}
	needing := report.NeedingEnhancement()

	p.printHeader("PIVOT OPPORTUNITIES ANALYSIS")
	fmt.Fprintf(p.out, "Total careers: %d\n", len(report.Careers))
	fmt.Fprintf(p.out, "Careers needing enhancement: %d\n", len(needing))
	fmt.Fprintln(p.out)

	p.printHeader("CAREERS NEEDING ENHANCEMENT")
	for _, c := range needing {
		fmt.Fprintf(p.out, "%s: %d pivots, branches: %s\n", c.Key, c.TotalPivots, c.Distribution)
	}

	fmt.Fprintln(p.out)
	p.printHeader("ALL CAREER PIVOT COUNTS")
	for _, c := range report.SortedByKey() {
		status := statusOK
		if c.NeedsEnhancement {
			status = statusLow
		}
		fmt.Fprintf(p.out, "%s: %d pivots, branches: %s [%s]\n", c.Key, c.TotalPivots, c.Distribution, status)
	}
}

// PrintEnhancement outputs the per-career progress and totals of an Enhance run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintEnhancement(result *enhance.Result, saved bool) {
	if result == nil {
		return
	}

	for _, c := range result.Careers {
		fmt.Fprintf(p.out, "Enhancing %s...\n", c.Name)
	}
	fmt.Fprintf(p.out, "Enhanced %d careers\n", len(result.Careers))
	if saved {
		fmt.Fprintln(p.out, "Enhancement complete!")
	} else {
		fmt.Fprintln(p.out, "Dry run: no changes written")
	}

	fmt.Fprintf(p.out, "Total pivot opportunities: %d\n", result.TotalPivots)
	fmt.Fprintf(p.out, "Average pivots per career: %.1f\n", result.AveragePivots())
}

// PrintRestoration outputs the restoration summary and per-career breakdown.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRestoration(result *restore.Result, saved bool) {
	if result == nil {
		return
	}

	p.printHeader("PIVOT OPPORTUNITIES RESTORATION SUMMARY")
	fmt.Fprintf(p.out, "Total pivot opportunities restored: %d\n", result.TotalRestored)
	fmt.Fprintf(p.out, "Total careers processed: %d\n", len(result.Careers))
	if !saved {
		fmt.Fprintln(p.out, "Dry run: no changes written")
	}
	fmt.Fprintln(p.out)

	fmt.Fprintln(p.out, "Per-career breakdown:")
	fmt.Fprintln(p.out, strings.Repeat("-", ruleWidth))
	for _, c := range result.Careers {
		if c.Restored > 0 {
			fmt.Fprintf(p.out, "%s: %d -> %d (+%d)\n", c.Name, c.Original, c.Total, c.Restored)
		}
	}

	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "Careers with 4+ pivot opportunities: %d\n", result.CareersWithAtLeast(4))
	fmt.Fprintf(p.out, "Careers with 3+ pivot opportunities: %d\n", result.CareersWithAtLeast(3))
}
