// Package watch delivers file-creation events for a single directory.
package watch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/joseph-ayodele/file-agent/constants"
)

type Config struct {
	Dir         string              // directory to watch (non-recursive)
	AllowedExts map[string]struct{} // defaults to the supported extraction set
}

// Start watches cfg.Dir and emits paths of newly created files with an
// allowed extension until ctx is cancelled. The returned channels are closed
// when the watcher shuts down.
func Start(ctx context.Context, cfg Config, logger *slog.Logger) (<-chan string, <-chan error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Dir == "" {
		return nil, nil, errors.New("no directory provided")
	}
	if cfg.AllowedExts == nil {
		cfg.AllowedExts = constants.SupportedExtensions
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("failed to create fsnotify watcher", "error", err)
		return nil, nil, err
	}
	if err := w.Add(cfg.Dir); err != nil {
		logger.Error("failed to watch directory", "dir", cfg.Dir, "error", err)
		_ = w.Close()
		return nil, nil, err
	}

	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() {
			if err := w.Close(); err != nil {
				logger.Warn("watcher close error", "error", err)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if e.Op&fsnotify.Create == 0 {
					continue
				}
				if !allowed(e.Name, cfg.AllowedExts) {
					continue
				}
				if isDir(e.Name) {
					continue
				}
				select {
				case evCh <- e.Name:
				default:
					logger.Warn("watcher event dropped, channel full", "path", e.Name)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Error("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}

func allowed(path string, exts map[string]struct{}) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := exts[ext]
	return ok
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
