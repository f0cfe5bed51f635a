// Package extract converts raw file bytes of a known format into normalized
// text plus structured metadata.
package extract

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/file-agent/constants"
)

// ExtractedContent is the normalized record produced for one file.
// An empty Content is meaningful: it signals "nothing extracted".
// A non-empty Error means extraction failed and Content/Metadata are
// unreliable.
type ExtractedContent struct {
	FilePath  string         `json:"file_path"`
	FileName  string         `json:"file_name"`
	FileType  string         `json:"file_type"` // lowercased extension including the dot, e.g. ".pdf"
	SizeBytes int64          `json:"size_bytes"`
	Content   string         `json:"content"`
	Metadata  map[string]any `json:"metadata"`
	Error     string         `json:"error,omitempty"`
}

// Extractor dispatches per-type content extraction by file extension.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// CanProcess reports whether the file's extension is in the supported set.
func (e *Extractor) CanProcess(path string) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := constants.SupportedExtensions[ext]
	return ok
}

// Extract reads path and returns a populated ExtractedContent. It never
// returns a Go error: any decoding failure surfaces in the Error field with
// Content and Metadata left at their defaults.
func (e *Extractor) Extract(path string) ExtractedContent {
	ext := strings.ToLower(filepath.Ext(path))
	result := ExtractedContent{
		FilePath: path,
		FileName: filepath.Base(path),
		FileType: ext,
		Metadata: map[string]any{},
	}

	info, err := os.Stat(path)
	if err != nil {
		result.Error = err.Error()
		e.logger.Warn("extract.stat_failed", "file", result.FileName, "error", err)
		return result
	}
	result.SizeBytes = info.Size()

	var content string
	var metadata map[string]any

	switch ext {
	case ".txt":
		content, err = readTextFile(path)
	case ".pdf":
		content, err = readPDFFile(path)
	case ".docx":
		content, err = readDocxFile(path)
	case ".csv":
		content, metadata, err = readCSVFile(path)
	case ".xlsx":
		content, metadata, err = readXLSXFile(path)
	case ".json":
		content, err = readJSONFile(path)
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp":
		content, metadata = readImageFile(path, result.FileName, result.SizeBytes)
	default:
		result.Error = "unsupported file type: " + ext
		return result
	}

	if err != nil {
		result.Error = err.Error()
		e.logger.Warn("extract.failed", "file", result.FileName, "type", ext, "error", err)
		return result
	}

	result.Content = content
	if metadata != nil {
		result.Metadata = metadata
	}
	e.logger.Debug("extract.ok", "file", result.FileName, "type", ext, "content_len", len(content))
	return result
}

func readTextFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &invalidEncodingError{path: path}
	}
	return string(raw), nil
}

type invalidEncodingError struct {
	path string
}

func (e *invalidEncodingError) Error() string {
	return "file is not valid UTF-8 text: " + filepath.Base(e.path)
}

// readJSONFile parses the document and echoes it back pretty-printed, so the
// classifier sees a stable text rendering of the structured data.
func readJSONFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", err
	}
	pretty, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(pretty), nil
}
