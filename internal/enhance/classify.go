package enhance

import "strings"

// Archetype is a coarse career classification that selects a template set
type Archetype string

const (
	Tech     Archetype = "tech"
	Science  Archetype = "science"
	Business Archetype = "business"
)

// Keyword lists are checked in this order; the first hit wins.
var (
	techKeywords    = []string{"engineer", "developer", "devops", "software", "ai", "ml", "data scientist", "cybersecurity"}
	scienceKeywords = []string{"scientist", "research", "bioinformatics", "biostatistician", "clinical", "medical"}
)

// Classify maps a career name to an archetype by case-insensitive substring
// match. Business is the fallback.
func Classify(name string) Archetype {
	lower := strings.ToLower(name)

	if containsAny(lower, techKeywords) {
		return Tech
	}
	if containsAny(lower, scienceKeywords) {
		return Science
	}
	return Business
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
