package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/career-pivots/internal/analysis"
	"github.com/jonathan/career-pivots/internal/enhance"
	"github.com/jonathan/career-pivots/internal/restore"
	"github.com/stretchr/testify/assert"
)

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	report := &analysis.Report{
		Threshold: 3,
		Careers: []analysis.CareerPivots{
			{Key: "software_engineering", TotalPivots: 1, Distribution: analysis.Distribution{{Index: 1, Count: 1}}, NeedsEnhancement: true},
			{Key: "biostatistician", TotalPivots: 4, Distribution: analysis.Distribution{{Index: 1, Count: 2}, {Index: 2, Count: 2}}},
		},
	}

	NewPrinter(&buf).PrintAnalysis(report)

	want := strings.Join([]string{
		"=== PIVOT OPPORTUNITIES ANALYSIS ===",
		"Total careers: 2",
		"Careers needing enhancement: 1",
		"",
		"=== CAREERS NEEDING ENHANCEMENT ===",
		"software_engineering: 1 pivots, branches: {1: 1}",
		"",
		"=== ALL CAREER PIVOT COUNTS ===",
		"biostatistician: 4 pivots, branches: {1: 2, 2: 2} [OK]",
		"software_engineering: 1 pivots, branches: {1: 1} [NEEDS ENHANCEMENT]",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPrintEnhancement(t *testing.T) {
	var buf bytes.Buffer
	result := &enhance.Result{
		Careers: []enhance.CareerResult{
			{Key: "product_manager", Name: "Product Manager", Pivots: 4},
			{Key: "data_scientist", Name: "Data Scientist", Pivots: 3},
		},
		TotalPivots: 7,
	}

	NewPrinter(&buf).PrintEnhancement(result, true)

	out := buf.String()
	assert.Contains(t, out, "Enhancing Product Manager...\nEnhancing Data Scientist...\n")
	assert.Contains(t, out, "Enhanced 2 careers\n")
	assert.Contains(t, out, "Enhancement complete!\n")
	assert.Contains(t, out, "Total pivot opportunities: 7\n")
	assert.Contains(t, out, "Average pivots per career: 3.5\n")
}

func TestPrintEnhancement_DryRun(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintEnhancement(&enhance.Result{}, false)

	assert.Contains(t, buf.String(), "Dry run: no changes written")
	assert.Contains(t, buf.String(), "Average pivots per career: 0.0")
}

func TestPrintRestoration(t *testing.T) {
	var buf bytes.Buffer
	result := &restore.Result{
		Careers: []restore.CareerStats{
			{Key: "software_engineering", Name: "Software Engineering", Original: 1, Restored: 2, Total: 3},
			{Key: "research_scientist", Name: "Research Scientist", Original: 4, Restored: 0, Total: 4},
		},
		TotalRestored: 2,
	}

	NewPrinter(&buf).PrintRestoration(result, true)

	out := buf.String()
	assert.Contains(t, out, "=== PIVOT OPPORTUNITIES RESTORATION SUMMARY ===\n")
	assert.Contains(t, out, "Total pivot opportunities restored: 2\n")
	assert.Contains(t, out, "Total careers processed: 2\n")
	assert.Contains(t, out, strings.Repeat("-", 60)+"\n")
	assert.Contains(t, out, "Software Engineering: 1 -> 3 (+2)\n")
	assert.NotContains(t, out, "Research Scientist:")
	assert.Contains(t, out, "Careers with 4+ pivot opportunities: 1\n")
	assert.Contains(t, out, "Careers with 3+ pivot opportunities: 2\n")
	assert.NotContains(t, out, "Dry run")
}

func TestPrinter_NilInputsPrintNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintAnalysis(nil)
	p.PrintEnhancement(nil, true)
	p.PrintRestoration(nil, true)
	assert.Empty(t, buf.String())
}
