package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const previewRows = 5

// readCSVFile parses tabular data and returns a human-readable summary plus
// rows/columns/data_types metadata. The first record is treated as a header.
func readCSVFile(path string) (string, map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return "", nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil, errors.New("csv file is empty")
	}

	content, metadata := summarizeTable("CSV", records)
	return content, metadata, nil
}

// readXLSXFile mirrors readCSVFile for spreadsheets, reading the first sheet.
func readXLSXFile(path string) (string, map[string]any, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, errors.New("xlsx has no sheets")
	}
	sheet := sheets[0]
	records, err := f.GetRows(sheet)
	if err != nil {
		return "", nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return "", nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	content, metadata := summarizeTable("XLSX", records)
	metadata["sheet"] = sheet
	return content, metadata, nil
}

func summarizeTable(kind string, records [][]string) (string, map[string]any) {
	header := records[0]
	rows := records[1:]

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s file with %d rows and %d columns.\n", kind, len(rows), len(header))
	fmt.Fprintf(&sb, "Columns: %s\n", strings.Join(header, ", "))
	sb.WriteString("First few rows:\n")
	sb.WriteString(strings.Join(header, "\t"))
	for i, row := range rows {
		if i >= previewRows {
			break
		}
		sb.WriteString("\n")
		sb.WriteString(strings.Join(row, "\t"))
	}

	columns := make([]string, len(header))
	copy(columns, header)
	metadata := map[string]any{
		"rows":       len(rows),
		"columns":    columns,
		"data_types": inferColumnTypes(header, rows),
	}
	return sb.String(), metadata
}

// inferColumnTypes assigns each column the narrowest type that fits every
// non-empty value: integer, float, boolean, or string.
func inferColumnTypes(header []string, rows [][]string) map[string]string {
	types := make(map[string]string, len(header))
	for i, name := range header {
		types[name] = inferColumnType(i, rows)
	}
	return types
}

func inferColumnType(col int, rows [][]string) string {
	seen := false
	isInt, isFloat, isBool := true, true, true
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[col])
		if v == "" {
			continue
		}
		seen = true
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			isFloat = false
		}
		if _, err := strconv.ParseBool(v); err != nil {
			isBool = false
		}
	}
	switch {
	case !seen:
		return "string"
	case isInt:
		return "integer"
	case isFloat:
		return "float"
	case isBool:
		return "boolean"
	default:
		return "string"
	}
}
