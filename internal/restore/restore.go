// Package restore adds the mid-senior (index 2) and executive (index 3) pivots
// to careers that lack them, leaving existing pivots untouched.
package restore

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/career-pivots/internal/types"
)

const (
	// MidSeniorIndex is the branch index of the mid-senior pivot.
	MidSeniorIndex = 2
	// ExecutiveIndex is the branch index of the executive pivot.
	ExecutiveIndex = 3
	// fallbackExecutiveColor is used when only one palette color is available.
	fallbackExecutiveColor = "#F59E0B"
)

// Category keys are matched exactly against the career key.
var (
	techCareers = []string{
		"data_scientist", "software_engineering", "ai_ml_engineer", "devops_engineer",
		"cybersecurity_analyst", "bioinformatics_scientist", "digital_health_scientist",
		"biomedical_engineer", "systems_engineer", "electrical_engineer",
	}
	scienceCareers = []string{
		"r_and_d_scientist", "biostatistician", "process_development_scientist",
		"research_scientist", "environmental_scientist", "materials_scientist",
		"chemical_engineer", "mechanical_engineer",
	}
	businessCareers = []string{
		"product_manager", "management_consultant", "venture_capital_analyst",
		"business_development_manager", "market_analyst", "financial_analyst",
		"operations_manager", "program_management",
	}
)

// Labels are the branch names given to the two restored pivots
type Labels struct {
	MidSenior string
	Executive string
}

// LabelsFor returns the branch labels for a career key.
func LabelsFor(key string) Labels {
	switch {
	case slices.Contains(techCareers, key):
		return Labels{MidSenior: "Technical Leadership", Executive: "Executive Leadership"}
	case slices.Contains(scienceCareers, key):
		return Labels{MidSenior: "Research Management", Executive: "Innovation Leadership"}
	case slices.Contains(businessCareers, key):
		return Labels{MidSenior: "Strategy Leadership", Executive: "Executive Leadership"}
	default:
		return Labels{MidSenior: "Leadership Transition", Executive: "Executive Consulting"}
	}
}

// PickColors chooses the colors of the two restored pivots, preferring palette
// colors no existing pivot uses. Both may end up equal to an existing color.
func PickColors(existing []types.Pivot) (midSenior, executive string) {
	used := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		used[p.Color] = struct{}{}
	}

	available := make([]string, 0, len(types.Palette))
	for _, c := range types.Palette {
		if _, taken := used[c]; !taken {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		available = types.Palette
	}

	midSenior = available[0]
	executive = fallbackExecutiveColor
	if len(available) > 1 {
		executive = available[1]
	}
	return midSenior, executive
}

// MidSeniorPivot builds the index-2 pivot; its titles use the first word of
// the career name.
func MidSeniorPivot(careerName, label, color string) types.Pivot {
	word := careerName
	if fields := strings.Fields(careerName); len(fields) > 0 {
		word = fields[0]
	}

	return types.Pivot{
		BranchFromIndex:   MidSeniorIndex,
		BranchName:        label,
		Color:             color,
		TransitionSuccess: "75%",
		Stages: []types.Stage{
			stage(fmt.Sprintf("Senior %s Manager", word), "Sr Manager", "senior", 5.5, "$180k-$240k", next(2.5), true),
			stage(fmt.Sprintf("Lead %s Manager", word), "Lead Mgr", "lead", 8, "$240k-$320k", next(3), true),
			stage(fmt.Sprintf("Director of %s", word), "Director", "exec", 11, "$320k-$450k", nil, false),
		},
	}
}

// ExecutivePivot builds the index-3 pivot. Its stage titles are the same for
// every career.
func ExecutivePivot(label, color string) types.Pivot {
	return types.Pivot{
		BranchFromIndex:   ExecutiveIndex,
		BranchName:        label,
		Color:             color,
		TransitionSuccess: "65%",
		Stages: []types.Stage{
			stage("VP Technology Strategy", "VP Tech", "exec", 8.5, "$300k-$450k", next(3), false),
			stage("Chief Technology Officer", "CTO", "exec", 11.5, "$450k-$800k", next(3), false),
			stage("Executive Consultant", "Exec Consultant", "exec", 14.5, "$500k-$1000k", nil, true),
		},
	}
}

func stage(title, short, level string, years float64, salary string, timeToNext *float64, remote bool) types.Stage {
	return types.Stage{
		Title:           title,
		ShortTitle:      short,
		Level:           level,
		CumulativeYears: years,
		Salary:          salary,
		TimeToNext:      timeToNext,
		RemoteFriendly:  &remote,
	}
}

func next(years float64) *float64 {
	return &years
}

// CareerStats records the restoration of one career
type CareerStats struct {
	Key      string
	Name     string
	Original int
	Restored int
	Total    int
}

// Result summarizes a Restore run
type Result struct {
	Careers       []CareerStats
	TotalRestored int
}

// CareersWithAtLeast counts careers that end up with n or more pivots.
func (r *Result) CareersWithAtLeast(n int) int {
	count := 0
	for _, c := range r.Careers {
		if c.Total >= n {
			count++
		}
	}
	return count
}

// RestoreCareer appends the missing index-2 and index-3 pivots to career and
// returns how many were added.
func RestoreCareer(key string, career *types.Career) CareerStats {
	name := career.DisplayName(key)
	stats := CareerStats{Key: key, Name: name, Original: len(career.PivotOpportunities)}

	labels := LabelsFor(key)
	midColor, execColor := PickColors(career.PivotOpportunities)
	present := career.BranchIndices()

	if _, ok := present[MidSeniorIndex]; !ok {
		career.PivotOpportunities = append(career.PivotOpportunities, MidSeniorPivot(name, labels.MidSenior, midColor))
		stats.Restored++
	}
	if _, ok := present[ExecutiveIndex]; !ok {
		career.PivotOpportunities = append(career.PivotOpportunities, ExecutivePivot(labels.Executive, execColor))
		stats.Restored++
	}

	stats.Total = len(career.PivotOpportunities)
	return stats
}

// Restore runs RestoreCareer over every career of doc in document order.
func Restore(doc *types.Document) *Result {
	keys := doc.CareerTimelines.Keys()
	result := &Result{Careers: make([]CareerStats, 0, len(keys))}

	for _, key := range keys {
		career, _ := doc.CareerTimelines.Get(key)
		stats := RestoreCareer(key, career)
		result.Careers = append(result.Careers, stats)
		result.TotalRestored += stats.Restored
	}

	return result
}
