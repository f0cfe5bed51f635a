package classify

import (
	"github.com/joseph-ayodele/file-agent/constants"
)

// BuildClassificationJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map. We use it locally to validate the model's output before
// accepting a classification.
func BuildClassificationJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"category": map[string]any{
				"type": "string",
				"enum": constants.AsStringSlice(),
			},
			"summary": map[string]any{"type": "string"},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"priority": map[string]any{
				"type": "string",
				"enum": constants.AllPriorities(),
			},
			"action_needed": map[string]any{"type": "string"},
		},
		"required": []string{"category", "summary", "tags", "priority", "action_needed"},
	}
}
