// Package organize moves classified files into category directories and
// accumulates the run-scoped processing log reports are generated from.
package organize

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joseph-ayodele/file-agent/constants"
	"github.com/joseph-ayodele/file-agent/internal/classify"
)

const reportsDir = "reports"

// OrganizationResult records one move attempt.
type OrganizationResult struct {
	OriginalPath string `json:"original_path"`
	NewPath      string `json:"new_path,omitempty"`
	Category     string `json:"category"`
	Timestamp    string `json:"timestamp"`
	Status       string `json:"status"` // "success" | "failed"
	Error        string `json:"error,omitempty"`
}

// LogEntry pairs a file's classification with its organization outcome.
type LogEntry struct {
	File         string                  `json:"file"`
	Analysis     classify.Classification `json:"analysis"`
	Organization OrganizationResult      `json:"organization"`
}

// Organizer owns the output directory tree and the append-only log for the
// lifetime of one run. It is used from a single goroutine.
type Organizer struct {
	outputDir string
	logger    *slog.Logger
	log       []LogEntry
}

// NewOrganizer eagerly creates the output root, one directory per category,
// and the reports directory. Safe to call against an existing tree.
func NewOrganizer(outputDir string, logger *slog.Logger) (*Organizer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, cat := range constants.AllCategories() {
		if err := os.MkdirAll(filepath.Join(outputDir, string(cat)), 0o755); err != nil {
			return nil, fmt.Errorf("create category dir %s: %w", cat, err)
		}
	}
	if err := os.MkdirAll(filepath.Join(outputDir, reportsDir), 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	return &Organizer{outputDir: outputDir, logger: logger}, nil
}

// Organize moves sourcePath into the directory named by the classification's
// category. Name collisions get a deterministic numeric suffix; nothing is
// ever overwritten. A log entry is appended only for successful moves, and a
// failed move leaves the source file in place.
func (o *Organizer) Organize(sourcePath string, c classify.Classification) OrganizationResult {
	category, _ := constants.Canonicalize(string(c.Category))

	destDir := filepath.Join(o.outputDir, string(category))
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return o.failed(sourcePath, category, err)
	}

	destPath := resolveCollision(destDir, filepath.Base(sourcePath))
	if err := moveFile(sourcePath, destPath); err != nil {
		o.logger.Error("organize.move.failed", "file", filepath.Base(sourcePath), "error", err)
		return o.failed(sourcePath, category, err)
	}

	result := OrganizationResult{
		OriginalPath: sourcePath,
		NewPath:      destPath,
		Category:     string(category),
		Timestamp:    time.Now().Format(time.RFC3339),
		Status:       "success",
	}
	o.log = append(o.log, LogEntry{
		File:         filepath.Base(sourcePath),
		Analysis:     c,
		Organization: result,
	})
	o.logger.Info("organize.move.ok", "file", filepath.Base(sourcePath), "category", category, "dest", destPath)
	return result
}

// Log returns a copy of the run-scoped processing log.
func (o *Organizer) Log() []LogEntry {
	out := make([]LogEntry, len(o.log))
	copy(out, o.log)
	return out
}

func (o *Organizer) failed(sourcePath string, category constants.Category, err error) OrganizationResult {
	return OrganizationResult{
		OriginalPath: sourcePath,
		Category:     string(category),
		Timestamp:    time.Now().Format(time.RFC3339),
		Status:       "failed",
		Error:        err.Error(),
	}
}

// resolveCollision returns name, name_1, name_2, ... until a free path is
// found in dir.
func resolveCollision(dir, name string) string {
	dest := filepath.Join(dir, name)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			return dest
		}
		dest = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}
}

// moveFile renames src to dst, falling back to copy+remove when the two
// paths sit on different devices.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		return copyAndRemove(src, dst)
	}
	return err
}

func copyAndRemove(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return os.Remove(src)
}
