package classify

import (
	"context"

	"github.com/joseph-ayodele/file-agent/constants"
)

// Classification is the normalized shape we want from the LLM.
type Classification struct {
	Category     constants.Category `json:"category"`
	Summary      string             `json:"summary"`
	Tags         []string           `json:"tags"`
	Priority     constants.Priority `json:"priority"`
	ActionNeeded string             `json:"action_needed"`
	Note         string             `json:"note,omitempty"` // set only when a fallback classification was used
}

// Prompt is one classification request: a system instruction plus the
// user message embedding the content excerpt.
type Prompt struct {
	System string
	User   string
}

// RawClassifier is the narrow remote-capability interface the classifier
// depends on. It returns the model's raw text response; all parsing and
// repair happens on this side of the boundary.
type RawClassifier interface {
	ClassifyRaw(ctx context.Context, p Prompt) (string, error)
}
