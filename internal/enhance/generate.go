package enhance

import (
	"fmt"

	"github.com/jonathan/career-pivots/internal/salary"
	"github.com/jonathan/career-pivots/internal/types"
)

const (
	// stageSpacingYears separates consecutive roles of a generated pivot.
	stageSpacingYears = 2
	// nonTerminalTimeToNext is the timeToNext of every role but the last.
	nonTerminalTimeToNext = 3.0
)

// GeneratedPivot is a pivot together with how each stage salary was derived
type GeneratedPivot struct {
	Pivot    types.Pivot
	Salaries []salary.Derivation
}

// ClampIndex limits index to the last valid position of a path of length n.
// It returns -1 for an empty path.
func ClampIndex(index, n int) int {
	if index >= n {
		return n - 1
	}
	return index
}

// GeneratePivot builds a pivot from tmpl branching off mainPath.
func GeneratePivot(tmpl Template, mainPath []types.Stage) (*GeneratedPivot, error) {
	index := ClampIndex(tmpl.Index, len(mainPath))
	if index < 0 {
		return nil, &GenerateError{Message: fmt.Sprintf("cannot branch %q from an empty main path", tmpl.Name)}
	}

	base := mainPath[index]
	remote := base.IsRemoteFriendly()

	generated := &GeneratedPivot{
		Pivot: types.Pivot{
			BranchFromIndex:   index,
			BranchName:        tmpl.Name,
			Color:             tmpl.Color,
			TransitionSuccess: tmpl.Success,
			Stages:            make([]types.Stage, 0, len(tmpl.Roles)),
		},
		Salaries: make([]salary.Derivation, 0, len(tmpl.Roles)),
	}

	for i, role := range tmpl.Roles {
		derived := salary.Derive(base.Salary, role.Salary)

		stage := types.Stage{
			Title:           role.Title,
			ShortTitle:      role.Short,
			Level:           role.Level,
			CumulativeYears: base.CumulativeYears + role.YearsOffset + float64(i*stageSpacingYears),
			Salary:          derived.Salary,
			RemoteFriendly:  &remote,
		}
		if i < len(tmpl.Roles)-1 {
			next := nonTerminalTimeToNext
			stage.TimeToNext = &next
		}

		generated.Pivot.Stages = append(generated.Pivot.Stages, stage)
		generated.Salaries = append(generated.Salaries, derived)
	}

	return generated, nil
}
