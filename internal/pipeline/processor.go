// Package pipeline coordinates extraction, classification, and organization
// into a per-file sequence, driven for one file, a whole directory, or a
// stream of creation events.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/file-agent/constants"
	"github.com/joseph-ayodele/file-agent/internal/classify"
	"github.com/joseph-ayodele/file-agent/internal/extract"
	"github.com/joseph-ayodele/file-agent/internal/organize"
)

// Processor runs the detect → extract → classify → relocate sequence.
// Processing is strictly sequential: one file completes before the next
// begins.
type Processor struct {
	logger      *slog.Logger
	extractor   *extract.Extractor
	classifier  *classify.Classifier
	organizer   *organize.Organizer
	settleDelay time.Duration
	batchDelay  time.Duration
}

func NewProcessor(
	logger *slog.Logger,
	extractor *extract.Extractor,
	classifier *classify.Classifier,
	organizer *organize.Organizer,
	settleDelay time.Duration,
	batchDelay time.Duration,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:      logger,
		extractor:   extractor,
		classifier:  classifier,
		organizer:   organizer,
		settleDelay: settleDelay,
		batchDelay:  batchDelay,
	}
}

// ProcessFile runs one file through the pipeline and returns its terminal
// state. Failures are isolated to the file: nothing escapes as an error.
func (p *Processor) ProcessFile(ctx context.Context, path string) constants.FileStatus {
	name := filepath.Base(path)
	p.logger.Info("pipeline.file.start", "file", name)

	if !p.extractor.CanProcess(path) {
		p.logger.Info("pipeline.file.skipped", "file", name, "ext", filepath.Ext(path))
		return constants.StatusSkipped
	}

	content := p.extractor.Extract(path)
	if content.Error != "" {
		p.logger.Warn("pipeline.extract.failed", "file", name, "error", content.Error)
		return constants.StatusExtractionFailed
	}
	p.logger.Info("pipeline.extract.ok", "file", name, "content_len", len(content.Content))

	classification := p.classifier.Classify(ctx, content)
	p.logger.Info("pipeline.classify.ok",
		"file", name,
		"category", classification.Category,
		"priority", classification.Priority,
		"fallback", classification.Note != "",
	)

	result := p.organizer.Organize(path, classification)
	if result.Status != "success" {
		p.logger.Warn("pipeline.organize.failed", "file", name, "error", result.Error)
		return constants.StatusOrganizeFailed
	}
	p.logger.Info("pipeline.organize.ok", "file", name, "dest", result.NewPath)
	return constants.StatusOrganized
}

// Organizer exposes the underlying organizer for report generation.
func (p *Processor) Organizer() *organize.Organizer {
	return p.organizer
}
