package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ProcessDirectory runs every regular file currently in dir (non-recursive)
// through the pipeline in name order, pausing between files, then generates
// one report. Per-file failures never abort the batch.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	if len(files) == 0 {
		p.logger.Info("pipeline.batch.empty", "dir", dir)
		return fmt.Sprintf("No files found in %s", dir), nil
	}
	p.logger.Info("pipeline.batch.start", "dir", dir, "files", len(files))

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		p.ProcessFile(ctx, path)
		if i < len(files)-1 && p.batchDelay > 0 {
			if err := sleepCtx(ctx, p.batchDelay); err != nil {
				return "", err
			}
		}
	}

	summary, err := p.organizer.GenerateReport()
	if err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}
	return summary, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
