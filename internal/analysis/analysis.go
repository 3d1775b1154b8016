// Package analysis counts pivot opportunities per career and flags careers
// with too few of them.
package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-pivots/internal/types"
)

// DefaultThreshold is the pivot count below which a career needs enhancement.
const DefaultThreshold = 3

// BranchCount is the number of pivots sharing one branchFromIndex
type BranchCount struct {
	Index int
	Count int
}

// Distribution lists branch counts in first-seen order
type Distribution []BranchCount

// String formats the distribution as "{1: 2, 3: 1}".
func (d Distribution) String() string {
	parts := make([]string, 0, len(d))
	for _, bc := range d {
		parts = append(parts, fmt.Sprintf("%d: %d", bc.Index, bc.Count))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// CareerPivots is the analysis of a single career
type CareerPivots struct {
	Key              string
	TotalPivots      int
	Distribution     Distribution
	NeedsEnhancement bool
}

// Report is the analysis of a whole document
type Report struct {
	Threshold int
	// Careers are in document order.
	Careers []CareerPivots
}

// NeedingEnhancement returns the careers below the threshold, in document order.
func (r *Report) NeedingEnhancement() []CareerPivots {
	var out []CareerPivots
	for _, c := range r.Careers {
		if c.NeedsEnhancement {
			out = append(out, c)
		}
	}
	return out
}

// SortedByKey returns all careers ordered by key.
func (r *Report) SortedByKey() []CareerPivots {
	sorted := make([]CareerPivots, len(r.Careers))
	copy(sorted, r.Careers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}

// Analyze tallies pivots and branch indices for every career in doc. A
// threshold of zero or less uses DefaultThreshold.
func Analyze(doc *types.Document, threshold int) *Report {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	keys := doc.CareerTimelines.Keys()
	report := &Report{Threshold: threshold, Careers: make([]CareerPivots, 0, len(keys))}

	for _, key := range keys {
		career, _ := doc.CareerTimelines.Get(key)
		report.Careers = append(report.Careers, analyzeCareer(key, career, threshold))
	}

	return report
}

func analyzeCareer(key string, career *types.Career, threshold int) CareerPivots {
	var dist Distribution
	position := make(map[int]int)

	for _, pivot := range career.PivotOpportunities {
		i, seen := position[pivot.BranchFromIndex]
		if !seen {
			position[pivot.BranchFromIndex] = len(dist)
			dist = append(dist, BranchCount{Index: pivot.BranchFromIndex, Count: 1})
			continue
		}
		dist[i].Count++
	}

	total := len(career.PivotOpportunities)
	return CareerPivots{
		Key:              key,
		TotalPivots:      total,
		Distribution:     dist,
		NeedsEnhancement: total < threshold,
	}
}
