// Package salary converts between the string salary encoding used in career
// documents ("$120k-$150k", "+$20k-$40k") and numeric ranges.
package salary

import (
	"fmt"
	"strconv"
	"strings"
)

// EquityPrefix marks salary strings that carry no numeric range.
const EquityPrefix = "Equity"

// Range is a salary range in whole dollars
type Range struct {
	Min int
	Max int
}

// Add returns the component-wise sum of r and d.
func (r Range) Add(d Range) Range {
	return Range{Min: r.Min + d.Min, Max: r.Max + d.Max}
}

// String formats the range in thousands, e.g. "$120k-$190k".
func (r Range) String() string {
	return fmt.Sprintf("$%dk-$%dk", r.Min/1000, r.Max/1000)
}

// ParseRange parses a "$120k-$150k" range. Both bounds must be present.
func ParseRange(s string) (Range, error) {
	return parseBounds(s, "$")
}

// ParseDelta parses an additive "+$20k-$40k" delta.
func ParseDelta(s string) (Range, error) {
	if !IsAdditive(s) {
		return Range{}, &ParseError{Input: s, Message: "delta is not additive"}
	}
	return parseBounds(s, "+$")
}

// IsEquity reports whether s is an equity marker rather than a range.
func IsEquity(s string) bool {
	return strings.HasPrefix(s, EquityPrefix)
}

// IsAdditive reports whether s is written as a "+" delta.
func IsAdditive(s string) bool {
	return strings.Contains(s, "+") && !IsEquity(s)
}

func parseBounds(s, strip string) (Range, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return Range{}, &ParseError{Input: s, Message: fmt.Sprintf("expected 2 bounds, got %d", len(parts))}
	}

	bounds := make([]int, 0, 2)
	for _, part := range parts {
		value, err := parseAmount(part, strip)
		if err != nil {
			return Range{}, &ParseError{Input: s, Message: "invalid bound", Cause: err}
		}
		bounds = append(bounds, value)
	}

	return Range{Min: bounds[0], Max: bounds[1]}, nil
}

// parseAmount turns "$120k" into 120000.
func parseAmount(s, strip string) (int, error) {
	cleaned := s
	for _, r := range strip {
		cleaned = strings.ReplaceAll(cleaned, string(r), "")
	}
	cleaned = strings.ReplaceAll(cleaned, "k", "000")
	return strconv.Atoi(strings.TrimSpace(cleaned))
}
