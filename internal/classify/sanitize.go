package classify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joseph-ayodele/file-agent/constants"
)

// SanitizeClassification repairs the common shape defects in model output so
// the document can still validate: category is canonicalized onto the fixed
// enum (unknown strings coerce to "other"), priority is clamped to the enum,
// and a scalar or mixed-type "tags" value is coerced into a string list.
// Missing required fields are left alone so validation can reject them.
func SanitizeClassification(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var changed []string

	if v, ok := m["category"].(string); ok {
		cat, exact := constants.Canonicalize(v)
		m["category"] = string(cat)
		if !exact || v != string(cat) {
			changed = append(changed, "category")
		}
	}

	if v, ok := m["priority"].(string); ok {
		p := strings.ToLower(strings.TrimSpace(v))
		switch constants.Priority(p) {
		case constants.PriorityHigh, constants.PriorityMedium, constants.PriorityLow:
			m["priority"] = p
		default:
			m["priority"] = string(constants.PriorityMedium)
			changed = append(changed, "priority")
		}
		if p != v {
			changed = append(changed, "priority")
		}
	}

	if v, ok := m["tags"]; ok {
		switch t := v.(type) {
		case string:
			m["tags"] = []any{t}
			changed = append(changed, "tags")
		case []any:
			tags := make([]any, 0, len(t))
			coerced := false
			for _, item := range t {
				if s, ok := item.(string); ok {
					tags = append(tags, s)
				} else {
					tags = append(tags, fmt.Sprintf("%v", item))
					coerced = true
				}
			}
			m["tags"] = tags
			if coerced {
				changed = append(changed, "tags")
			}
		case nil:
			m["tags"] = []any{}
			changed = append(changed, "tags")
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, changed, nil
}
