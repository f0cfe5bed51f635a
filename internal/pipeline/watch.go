package pipeline

import (
	"context"
	"fmt"

	"github.com/joseph-ayodele/file-agent/internal/watch"
)

// Watch processes new files as creation events arrive in dir, until ctx is
// cancelled. An in-flight file always runs to completion; cancellation only
// stops the acceptance of further events. No automatic end-of-run report is
// generated. Callers wanting pre-existing files handled drain the directory
// with ProcessDirectory first.
func (p *Processor) Watch(ctx context.Context, dir string) error {
	events, errs, err := watch.Start(ctx, watch.Config{Dir: dir}, p.logger)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	p.logger.Info("pipeline.watch.started", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline.watch.stopped", "dir", dir)
			return nil
		case path, ok := <-events:
			if !ok {
				return nil
			}
			p.logger.Info("pipeline.watch.detected", "file", path)
			// let the writer finish flushing before extraction begins
			if p.settleDelay > 0 {
				if err := sleepCtx(ctx, p.settleDelay); err != nil {
					return nil
				}
			}
			p.ProcessFile(ctx, path)
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			p.logger.Warn("pipeline.watch.error", "error", err)
		}
	}
}
