// Package types provides type definitions for the career timeline document.
//
// Records decoded from a document keep the raw input so that fields the tools
// do not model survive a load/save unchanged. Stages and pivots read from input
// are written back as read; only records built in memory are encoded from their
// Go fields.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"

	"github.com/jonathan/career-pivots/internal/jsondoc"
)

// Palette holds the four branch colors used for UI rendering: red, purple, gold, teal.
var Palette = []string{"#DC2626", "#7C3AED", "#F59E0B", "#059669"}

// Stage is one position along a main path or a pivot branch
type Stage struct {
	Title           string   `json:"title"`
	ShortTitle      string   `json:"shortTitle"`
	Level           string   `json:"level"`
	CumulativeYears float64  `json:"cumulativeYears"`
	Salary          string   `json:"salary"`
	TimeToNext      *float64 `json:"timeToNext"`
	RemoteFriendly  *bool    `json:"remoteFriendly,omitempty"`

	raw json.RawMessage
}

// IsTerminal reports whether the stage ends its path.
func (s Stage) IsTerminal() bool {
	return s.TimeToNext == nil
}

// IsRemoteFriendly returns the remote flag, true when the field is absent.
func (s Stage) IsRemoteFriendly() bool {
	if s.RemoteFriendly == nil {
		return true
	}
	return *s.RemoteFriendly
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Stage) UnmarshalJSON(data []byte) error {
	type plain Stage
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Stage(p)
	s.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Stage) MarshalJSON() ([]byte, error) {
	if len(s.raw) > 0 {
		return s.raw, nil
	}
	type plain Stage
	return jsondoc.Marshal(plain(s))
}

// Pivot is an alternative branch diverging from the main path at BranchFromIndex
type Pivot struct {
	BranchFromIndex   int     `json:"branchFromIndex"`
	BranchName        string  `json:"branchName"`
	Color             string  `json:"color"`
	TransitionSuccess string  `json:"transitionSuccess"`
	Stages            []Stage `json:"stages"`

	raw json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pivot) UnmarshalJSON(data []byte) error {
	type plain Pivot
	var pl plain
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	*p = Pivot(pl)
	p.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Pivot) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	type plain Pivot
	pl := plain(p)
	if pl.Stages == nil {
		pl.Stages = []Stage{}
	}
	return jsondoc.Marshal(pl)
}

// Career is a single career timeline: its baseline path and the branches off it
type Career struct {
	Name               string   `json:"name"`
	MainPath           []Stage  `json:"main_path"`
	PivotOpportunities []Pivot  `json:"pivot_opportunities"`
	TargetIndustries   []string `json:"targetIndustries,omitempty"`

	fields *jsondoc.Object
}

// DisplayName returns the career name, or key when the record has none.
func (c *Career) DisplayName(key string) string {
	if c.Name == "" {
		return key
	}
	return c.Name
}

// BranchIndices returns the set of branchFromIndex values in use.
func (c *Career) BranchIndices() map[int]struct{} {
	indices := make(map[int]struct{}, len(c.PivotOpportunities))
	for _, p := range c.PivotOpportunities {
		indices[p.BranchFromIndex] = struct{}{}
	}
	return indices
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Career) UnmarshalJSON(data []byte) error {
	type plain Career
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	fields, err := jsondoc.Parse(data)
	if err != nil {
		return err
	}
	*c = Career(p)
	c.fields = fields
	return nil
}

// MarshalJSON writes the career back in its original member order. Only
// pivot_opportunities is taken from the Go fields of a decoded career.
func (c Career) MarshalJSON() ([]byte, error) {
	if c.fields == nil {
		type plain Career
		p := plain(c)
		if p.MainPath == nil {
			p.MainPath = []Stage{}
		}
		if p.PivotOpportunities == nil {
			p.PivotOpportunities = []Pivot{}
		}
		return jsondoc.Marshal(p)
	}

	out := c.fields.Clone()
	if c.PivotOpportunities != nil || out.Has("pivot_opportunities") {
		pivots := c.PivotOpportunities
		if pivots == nil {
			pivots = []Pivot{}
		}
		if err := out.Set("pivot_opportunities", pivots); err != nil {
			return nil, err
		}
	}
	return out.MarshalJSON()
}

// Timelines maps career keys to careers, keeping document order
type Timelines struct {
	keys    []string
	careers map[string]*Career
}

// Len returns the number of careers.
func (t *Timelines) Len() int {
	return len(t.keys)
}

// Keys returns the career keys in document order.
func (t *Timelines) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Get returns the career stored under key.
func (t *Timelines) Get(key string) (*Career, bool) {
	c, ok := t.careers[key]
	return c, ok
}

// Set stores career under key, appending the key when it is new.
func (t *Timelines) Set(key string, career *Career) {
	if t.careers == nil {
		t.careers = make(map[string]*Career)
	}
	if _, exists := t.careers[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.careers[key] = career
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timelines) UnmarshalJSON(data []byte) error {
	if jsondoc.IsNull(data) {
		return nil
	}
	obj, err := jsondoc.Parse(data)
	if err != nil {
		return err
	}
	*t = Timelines{}
	for _, key := range obj.Keys() {
		raw, _ := obj.Get(key)
		var career Career
		if err := json.Unmarshal(raw, &career); err != nil {
			return &DecodeError{Field: "career_timelines." + key, Cause: err}
		}
		t.Set(key, &career)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timelines) MarshalJSON() ([]byte, error) {
	out := &jsondoc.Object{}
	for _, key := range t.keys {
		if err := out.Set(key, t.careers[key]); err != nil {
			return nil, err
		}
	}
	return out.MarshalJSON()
}

// Metadata carries free-form document metadata plus the fields the tools update
type Metadata struct {
	LastUpdated string   `json:"lastUpdated,omitempty"`
	ChangeLog   []string `json:"changeLog,omitempty"`

	fields *jsondoc.Object
}

// AppendChange adds note to the end of the change log.
func (m *Metadata) AppendChange(note string) {
	m.ChangeLog = append(m.ChangeLog, note)
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	type plain Metadata
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	fields, err := jsondoc.Parse(data)
	if err != nil {
		return err
	}
	*m = Metadata(p)
	m.fields = fields
	return nil
}

// MarshalJSON implements json.Marshaler.
func (m Metadata) MarshalJSON() ([]byte, error) {
	out := m.fields.Clone()
	if m.LastUpdated != "" || out.Has("lastUpdated") {
		if err := out.Set("lastUpdated", m.LastUpdated); err != nil {
			return nil, err
		}
	}
	if m.ChangeLog != nil || out.Has("changeLog") {
		changes := m.ChangeLog
		if changes == nil {
			changes = []string{}
		}
		if err := out.Set("changeLog", changes); err != nil {
			return nil, err
		}
	}
	return out.MarshalJSON()
}

// Document is the root of a career timeline file
type Document struct {
	CareerTimelines Timelines `json:"career_timelines"`
	Metadata        *Metadata `json:"metadata,omitempty"`

	fields *jsondoc.Object
}

// EnsureMetadata returns the document metadata, creating it when absent.
func (d *Document) EnsureMetadata() *Metadata {
	if d.Metadata == nil {
		d.Metadata = &Metadata{}
	}
	return d.Metadata
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	fields, err := jsondoc.Parse(data)
	if err != nil {
		return err
	}
	*d = Document(p)
	d.fields = fields
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	out := d.fields.Clone()
	if err := out.Set("career_timelines", d.CareerTimelines); err != nil {
		return nil, err
	}
	if d.Metadata != nil {
		if err := out.Set("metadata", d.Metadata); err != nil {
			return nil, err
		}
	}
	return out.MarshalJSON()
}
