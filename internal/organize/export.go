package organize

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the processing log as a spreadsheet under reports/ and
// returns its path. An empty log is an error; callers gate on having
// processed something first.
func (o *Organizer) ExportXLSX() (string, error) {
	if len(o.log) == 0 {
		return "", fmt.Errorf("nothing to export: %s", noFilesMessage)
	}

	f := excelize.NewFile()
	const sheet = "Processed Files"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", err
	}

	headers := []string{
		"File",
		"Category",
		"Priority",
		"Summary",
		"Tags",
		"Action Needed",
		"New Path",
		"Timestamp",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, entry := range o.log {
		values := []any{
			entry.File,
			entry.Analysis.Category,
			entry.Analysis.Priority,
			entry.Analysis.Summary,
			strings.Join(entry.Analysis.Tags, ", "),
			entry.Analysis.ActionNeeded,
			entry.Organization.NewPath,
			entry.Organization.Timestamp,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	path := filepath.Join(o.outputDir, reportsDir,
		fmt.Sprintf("processing_report_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save xlsx report: %w", err)
	}
	o.logger.Info("report.xlsx.written", "path", path, "rows", len(o.log))
	return path, nil
}
