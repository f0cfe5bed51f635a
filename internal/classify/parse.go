package classify

import (
	"encoding/json"

	"github.com/joseph-ayodele/file-agent/constants"
)

const degradedSummaryChars = 100

// ParseResponse turns the model's raw text into a Classification. It never
// fails: output that is not strict JSON, or that does not survive sanitize
// plus schema validation, yields a degraded record flagged for manual
// review. The second return reports whether the response was degraded.
func ParseResponse(raw string) (Classification, bool) {
	var probe map[string]any
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return degradedClassification(raw), true
	}

	cleaned, _, err := SanitizeClassification([]byte(raw))
	if err != nil {
		return degradedClassification(raw), true
	}
	if err := ValidateJSONAgainstSchema(BuildClassificationJSONSchema(), cleaned); err != nil {
		return degradedClassification(raw), true
	}

	var c Classification
	if err := json.Unmarshal(cleaned, &c); err != nil {
		return degradedClassification(raw), true
	}
	return c, false
}

func degradedClassification(raw string) Classification {
	summary := raw
	if len(summary) > degradedSummaryChars {
		summary = summary[:degradedSummaryChars] + "..."
	}
	return Classification{
		Category:     constants.Other,
		Summary:      summary,
		Tags:         []string{"parsed_response"},
		Priority:     constants.PriorityMedium,
		ActionNeeded: "Review AI response parsing",
	}
}
