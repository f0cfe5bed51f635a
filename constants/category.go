package constants

import (
	"strings"
)

type Category string

const (
	Document Category = "document"
	Data     Category = "data"
	Report   Category = "report"
	Personal Category = "personal"
	Work     Category = "work"
	Images   Category = "images"
	Other    Category = "other"
)

var allCategories = []Category{
	Document,
	Data,
	Report,
	Personal,
	Work,
	Images,
	Other,
}

// AllCategories returns the fixed category set in declaration order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps an arbitrary category string (typically LLM output)
// onto the fixed set. Unknown or empty input coerces to Other.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"documents": Document,
		"doc":       Document,
		"text":      Document,
		"reports":   Report,
		"image":     Images,
		"photo":     Images,
		"photos":    Images,
		"picture":   Images,
		"dataset":   Data,
		"tabular":   Data,
		"business":  Work,
		"private":   Personal,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range allCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}

	return Other, false
}
