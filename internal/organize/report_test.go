package organize

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/file-agent/constants"
)

func TestGenerateReportEmptyLog(t *testing.T) {
	o, _, outDir := newTestOrganizer(t)

	summary, err := o.GenerateReport()
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if summary != "No files processed yet." {
		t.Fatalf("unexpected summary: %q", summary)
	}

	entries, err := os.ReadDir(filepath.Join(outDir, "reports"))
	if err != nil {
		t.Fatalf("read reports dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("empty log must not write a report, found %d files", len(entries))
	}
}

func TestGenerateReportInvariants(t *testing.T) {
	o, inDir, outDir := newTestOrganizer(t)

	o.Organize(writeSource(t, inDir, "a.png"), imageClassification())
	o.Organize(writeSource(t, inDir, "b.png"), imageClassification())
	doc := imageClassification()
	doc.Category = constants.Document
	o.Organize(writeSource(t, inDir, "c.pdf"), doc)

	summary, err := o.GenerateReport()
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if !strings.Contains(summary, "Total Files Processed: 3") {
		t.Fatalf("summary missing total: %q", summary)
	}
	if !strings.Contains(summary, "images: 2 files") {
		t.Fatalf("summary missing category breakdown: %q", summary)
	}

	entries, err := os.ReadDir(filepath.Join(outDir, "reports"))
	if err != nil {
		t.Fatalf("read reports dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one report file, got %d", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "processing_report_") || !strings.HasSuffix(name, ".json") {
		t.Fatalf("unexpected report file name: %q", name)
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "reports", name))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.TotalFiles != len(report.Files) {
		t.Fatalf("total_files (%d) != len(files) (%d)", report.TotalFiles, len(report.Files))
	}
	sum := 0
	for _, n := range report.Categories {
		sum += n
	}
	if sum != report.TotalFiles {
		t.Fatalf("category counts sum to %d, want %d", sum, report.TotalFiles)
	}
	if report.Categories["images"] != 2 || report.Categories["document"] != 1 {
		t.Fatalf("unexpected category counts: %v", report.Categories)
	}
}

func TestExportXLSX(t *testing.T) {
	o, inDir, _ := newTestOrganizer(t)

	o.Organize(writeSource(t, inDir, "a.png"), imageClassification())
	o.Organize(writeSource(t, inDir, "b.png"), imageClassification())

	path, err := o.ExportXLSX()
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open exported xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Processed Files")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "File" {
		t.Fatalf("unexpected header row: %v", rows[0])
	}
	if rows[1][1] != "images" {
		t.Fatalf("expected category column, got %v", rows[1])
	}
}

func TestExportXLSXEmptyLogFails(t *testing.T) {
	o, _, _ := newTestOrganizer(t)
	if _, err := o.ExportXLSX(); err == nil {
		t.Fatal("expected error for empty log")
	}
}
