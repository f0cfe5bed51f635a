package organize

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const noFilesMessage = "No files processed yet."

// Report is the persisted shape of one report generation.
type Report struct {
	Timestamp  string         `json:"timestamp"`
	TotalFiles int            `json:"total_files"`
	Categories map[string]int `json:"categories"`
	Files      []LogEntry     `json:"files"`
}

// GenerateReport writes a timestamped JSON report under reports/ and returns
// a human-readable summary. An empty log returns the fixed no-files message
// and writes nothing.
func (o *Organizer) GenerateReport() (string, error) {
	if len(o.log) == 0 {
		return noFilesMessage, nil
	}

	now := time.Now()
	report := Report{
		Timestamp:  now.Format(time.RFC3339),
		TotalFiles: len(o.log),
		Categories: map[string]int{},
		Files:      o.Log(),
	}
	for _, entry := range o.log {
		report.Categories[entry.Organization.Category]++
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	reportPath := filepath.Join(o.outputDir, reportsDir,
		fmt.Sprintf("processing_report_%s.json", now.Format("20060102_150405")))
	if err := os.WriteFile(reportPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	o.logger.Info("report.written", "path", reportPath, "total_files", report.TotalFiles)

	var sb strings.Builder
	sb.WriteString("\nFILE PROCESSING REPORT\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Total Files Processed: %d\n\n", report.TotalFiles)
	sb.WriteString("Files by Category:\n")
	for _, category := range sortedCategories(report.Categories) {
		fmt.Fprintf(&sb, "  %s: %d files\n", category, report.Categories[category])
	}
	fmt.Fprintf(&sb, "\nDetailed report saved to: %s", reportPath)

	return sb.String(), nil
}

func sortedCategories(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
