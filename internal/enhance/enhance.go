package enhance

import (
	"fmt"
	"io"

	"github.com/jonathan/career-pivots/internal/types"
	"github.com/sirupsen/logrus"
)

const (
	// ChangeLogNote is appended to the document change log after every run.
	ChangeLogNote = "Enhanced pivot opportunities: 3-4 pivots per career, senior/leadership level pivots added"
	// MaxPivotsPerCareer caps the templates used per archetype.
	MaxPivotsPerCareer = 4
	// MinMainPathStages is the path length below which a warning is logged.
	MinMainPathStages = 3
)

// CareerResult summarizes the regeneration of one career
type CareerResult struct {
	Key       string
	Name      string
	Archetype Archetype
	Pivots    int
	ShortPath bool
}

// Result summarizes an Enhance run
type Result struct {
	Careers     []CareerResult
	TotalPivots int
}

// AveragePivots returns the mean number of pivots per career.
func (r *Result) AveragePivots() float64 {
	if len(r.Careers) == 0 {
		return 0
	}
	return float64(r.TotalPivots) / float64(len(r.Careers))
}

// Enhancer replaces each career's pivots with ones generated from a catalog
type Enhancer struct {
	catalog *Catalog
	log     logrus.FieldLogger
}

// New creates an Enhancer. A nil logger discards output.
func New(catalog *Catalog, log logrus.FieldLogger) *Enhancer {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Enhancer{catalog: catalog, log: log}
}

// GenerateCareer builds the pivots for one career without modifying it.
func (e *Enhancer) GenerateCareer(key string, career *types.Career) ([]types.Pivot, *CareerResult, error) {
	name := career.DisplayName(key)
	archetype := Classify(name)
	log := e.log.WithFields(logrus.Fields{"career": key, "archetype": archetype})

	result := &CareerResult{Key: key, Name: name, Archetype: archetype}
	if len(career.MainPath) < MinMainPathStages {
		result.ShortPath = true
		log.Warnf("%s has less than %d main stages, using available stages", name, MinMainPathStages)
	}

	templates := e.catalog.Templates(archetype)
	if len(templates) > MaxPivotsPerCareer {
		templates = templates[:MaxPivotsPerCareer]
	}

	pivots := make([]types.Pivot, 0, len(templates))
	for _, tmpl := range templates {
		generated, err := GeneratePivot(tmpl, career.MainPath)
		if err != nil {
			return nil, nil, &GenerateError{Message: fmt.Sprintf("career %s", key), Cause: err}
		}
		for i, derived := range generated.Salaries {
			if derived.Err != nil {
				log.WithError(derived.Err).Debugf("salary for %q kept verbatim", generated.Pivot.Stages[i].Title)
			}
		}
		pivots = append(pivots, generated.Pivot)
	}

	result.Pivots = len(pivots)
	return pivots, result, nil
}

// Enhance regenerates the pivots of every career in doc and records the run
// in the document metadata with the given date. Nothing in doc changes when
// an error is returned.
func (e *Enhancer) Enhance(doc *types.Document, date string) (*Result, error) {
	keys := doc.CareerTimelines.Keys()
	generated := make([][]types.Pivot, 0, len(keys))
	result := &Result{Careers: make([]CareerResult, 0, len(keys))}

	for _, key := range keys {
		career, _ := doc.CareerTimelines.Get(key)
		e.log.WithField("career", key).Debugf("Enhancing %s...", career.DisplayName(key))

		pivots, careerResult, err := e.GenerateCareer(key, career)
		if err != nil {
			return nil, err
		}
		generated = append(generated, pivots)
		result.Careers = append(result.Careers, *careerResult)
		result.TotalPivots += len(pivots)
	}

	for i, key := range keys {
		career, _ := doc.CareerTimelines.Get(key)
		career.PivotOpportunities = generated[i]
	}

	metadata := doc.EnsureMetadata()
	metadata.LastUpdated = date
	metadata.AppendChange(ChangeLogNote)

	return result, nil
}
