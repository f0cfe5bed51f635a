// Package samples writes a small set of demonstration input files.
package samples

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const sampleNotes = `Meeting Notes - Project Alpha
Date: 2024-06-05

Key Discussion Points:
- Budget approval needed for Q3
- Team expansion plans
- New client requirements

Action Items:
- Follow up with finance team
- Schedule client meeting
- Review project timeline
`

// Create writes a demo .txt, .csv, and .json file into inputDir, creating
// the directory if needed. Returns the paths written.
func Create(inputDir string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create input dir: %w", err)
	}

	var written []string

	txtPath := filepath.Join(inputDir, "test_document.txt")
	if err := os.WriteFile(txtPath, []byte(sampleNotes), 0o644); err != nil {
		return written, fmt.Errorf("write sample text: %w", err)
	}
	written = append(written, txtPath)

	csvPath := filepath.Join(inputDir, "employee_data.csv")
	if err := writeSampleCSV(csvPath); err != nil {
		return written, fmt.Errorf("write sample csv: %w", err)
	}
	written = append(written, csvPath)

	jsonPath := filepath.Join(inputDir, "project_config.json")
	if err := writeSampleJSON(jsonPath); err != nil {
		return written, fmt.Errorf("write sample json: %w", err)
	}
	written = append(written, jsonPath)

	logger.Info("samples.created", "dir", inputDir, "count", len(written))
	return written, nil
}

func writeSampleCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	records := [][]string{
		{"Name", "Department", "Salary"},
		{"Alice", "Engineering", "85000"},
		{"Bob", "Marketing", "65000"},
		{"Charlie", "Sales", "70000"},
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writeSampleJSON(path string) error {
	payload := map[string]any{
		"project": "Alpha",
		"quarter": "Q3",
		"stakeholders": []string{
			"finance",
			"engineering",
			"sales",
		},
		"budget_approved": false,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
