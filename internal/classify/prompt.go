package classify

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/file-agent/constants"
	"github.com/joseph-ayodele/file-agent/internal/extract"
)

const systemPrompt = "You are a helpful file organization assistant. Always respond with valid JSON."

// BuildPrompt composes the classification request for one extracted file.
// Content is truncated to maxContentChars to bound request size and cost.
func BuildPrompt(ec extract.ExtractedContent, maxContentChars int) Prompt {
	if maxContentChars <= 0 {
		maxContentChars = 1000
	}
	excerpt := ec.Content
	truncated := false
	if len(excerpt) > maxContentChars {
		excerpt = excerpt[:maxContentChars]
		truncated = true
	}

	var b strings.Builder
	b.WriteString("Analyze this file and provide insights:\n\n")
	fmt.Fprintf(&b, "File: %s (%s)\n", ec.FileName, ec.FileType)
	b.WriteString("Content: ")
	b.WriteString(excerpt)
	if truncated {
		b.WriteString("...")
	}
	b.WriteString("\n\nPlease respond with a JSON object containing:\n")
	fmt.Fprintf(&b, "1. \"category\": One of [%s]\n", strings.Join(constants.AsStringSlice(), ", "))
	b.WriteString("2. \"summary\": Brief 2-sentence summary\n")
	b.WriteString("3. \"tags\": List of 3-5 relevant keywords\n")
	fmt.Fprintf(&b, "4. \"priority\": One of [%s]\n", strings.Join(constants.AllPriorities(), ", "))
	b.WriteString("5. \"action_needed\": Brief suggestion for what to do with this file\n\n")
	b.WriteString("Focus on being practical and helpful.")

	return Prompt{System: systemPrompt, User: b.String()}
}
