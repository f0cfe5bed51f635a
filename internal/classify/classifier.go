// Package classify turns extracted file content into a Classification,
// delegating to a remote text-understanding capability and falling back to a
// deterministic type-based rule when that capability is unusable.
package classify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joseph-ayodele/file-agent/internal/extract"
)

// Classifier coordinates the remote call, response repair, and fallback.
type Classifier struct {
	raw             RawClassifier
	logger          *slog.Logger
	maxContentChars int
}

// NewClassifier builds a Classifier. raw may be nil when no classification
// service is configured; every file then takes the fallback path.
func NewClassifier(raw RawClassifier, maxContentChars int, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	if maxContentChars <= 0 {
		maxContentChars = 1000
	}
	return &Classifier{raw: raw, logger: logger, maxContentChars: maxContentChars}
}

// Classify never fails: every path yields a usable Classification.
func (c *Classifier) Classify(ctx context.Context, ec extract.ExtractedContent) Classification {
	if strings.TrimSpace(ec.Content) == "" {
		c.logger.Info("classify.fallback", "file", ec.FileName, "reason", "no content extracted")
		return DefaultForType(ec.FileName, ec.FileType, "no content extracted")
	}
	if c.raw == nil {
		c.logger.Info("classify.fallback", "file", ec.FileName, "reason", "no classification service configured")
		return DefaultForType(ec.FileName, ec.FileType, "no classification service configured")
	}

	prompt := BuildPrompt(ec, c.maxContentChars)
	raw, err := c.raw.ClassifyRaw(ctx, prompt)
	if err != nil {
		c.logger.Warn("classify.llm.failed", "file", ec.FileName, "error", err)
		return DefaultForType(ec.FileName, ec.FileType, err.Error())
	}

	result, degraded := ParseResponse(raw)
	if degraded {
		c.logger.Warn("classify.llm.degraded", "file", ec.FileName, "raw_len", len(raw))
	} else {
		c.logger.Info("classify.llm.ok", "file", ec.FileName, "category", result.Category, "priority", result.Priority)
	}
	return result
}
