package extract

import (
	"archive/zip"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCanProcess(t *testing.T) {
	e := NewExtractor(nil)

	supported := []string{
		"a.txt", "b.PDF", "c.docx", "d.csv", "e.xlsx", "f.json",
		"g.jpg", "h.jpeg", "i.png", "j.gif", "k.bmp",
	}
	for _, name := range supported {
		if !e.CanProcess(name) {
			t.Fatalf("expected %q to be processable", name)
		}
	}

	unsupported := []string{"a.exe", "b.zip", "c.mp4", "noext", "d.tar.gz"}
	for _, name := range unsupported {
		if e.CanProcess(name) {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}

func TestExtractEmptyTextFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.txt", nil)

	ec := NewExtractor(nil).Extract(path)
	if ec.Error != "" {
		t.Fatalf("unexpected error: %s", ec.Error)
	}
	if ec.Content != "" {
		t.Fatalf("expected empty content, got %q", ec.Content)
	}
	if ec.FileType != ".txt" {
		t.Fatalf("expected .txt file type, got %q", ec.FileType)
	}
}

func TestExtractTextFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", []byte("meeting notes\nbudget approval"))

	ec := NewExtractor(nil).Extract(path)
	if ec.Error != "" {
		t.Fatalf("unexpected error: %s", ec.Error)
	}
	if ec.Content != "meeting notes\nbudget approval" {
		t.Fatalf("unexpected content: %q", ec.Content)
	}
	if ec.SizeBytes == 0 {
		t.Fatal("expected non-zero size")
	}
}

func TestExtractInvalidUTF8Fails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "binary.txt", []byte{0xff, 0xfe, 0xfd})

	ec := NewExtractor(nil).Extract(path)
	if ec.Error == "" {
		t.Fatal("expected extraction error for invalid UTF-8")
	}
	if ec.Content != "" {
		t.Fatalf("content should stay at default, got %q", ec.Content)
	}
}

func TestExtractMissingFile(t *testing.T) {
	ec := NewExtractor(nil).Extract(filepath.Join(t.TempDir(), "gone.txt"))
	if ec.Error == "" {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractCSVMetadata(t *testing.T) {
	dir := t.TempDir()
	csv := "Name,Department,Salary\nAlice,Engineering,85000\nBob,Marketing,65000\nCharlie,Sales,70000\n"
	path := writeFile(t, dir, "employees.csv", []byte(csv))

	ec := NewExtractor(nil).Extract(path)
	if ec.Error != "" {
		t.Fatalf("unexpected error: %s", ec.Error)
	}
	if rows := ec.Metadata["rows"]; rows != 3 {
		t.Fatalf("expected rows=3, got %v", rows)
	}
	columns, ok := ec.Metadata["columns"].([]string)
	if !ok || len(columns) != 3 {
		t.Fatalf("expected 3 columns, got %v", ec.Metadata["columns"])
	}
	types, ok := ec.Metadata["data_types"].(map[string]string)
	if !ok {
		t.Fatalf("expected data_types map, got %T", ec.Metadata["data_types"])
	}
	if types["Salary"] != "integer" {
		t.Fatalf("expected Salary to infer integer, got %q", types["Salary"])
	}
	if types["Name"] != "string" {
		t.Fatalf("expected Name to infer string, got %q", types["Name"])
	}
	if !strings.Contains(ec.Content, "3 rows and 3 columns") {
		t.Fatalf("content missing shape summary: %q", ec.Content)
	}
	if !strings.Contains(ec.Content, "Alice") {
		t.Fatalf("content missing row preview: %q", ec.Content)
	}
}

func TestExtractXLSXMetadata(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"Name", "Score"},
		{"Alice", 10},
		{"Bob", 12.5},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}

	ec := NewExtractor(nil).Extract(path)
	if ec.Error != "" {
		t.Fatalf("unexpected error: %s", ec.Error)
	}
	if rows := ec.Metadata["rows"]; rows != 2 {
		t.Fatalf("expected rows=2, got %v", rows)
	}
	columns, ok := ec.Metadata["columns"].([]string)
	if !ok || len(columns) != 2 {
		t.Fatalf("expected 2 columns, got %v", ec.Metadata["columns"])
	}
	if ec.Metadata["sheet"] != "Sheet1" {
		t.Fatalf("expected sheet name, got %v", ec.Metadata["sheet"])
	}
}

func TestExtractJSONPrettyPrints(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", []byte(`{"b":1,"a":"x"}`))

	ec := NewExtractor(nil).Extract(path)
	if ec.Error != "" {
		t.Fatalf("unexpected error: %s", ec.Error)
	}
	if !strings.Contains(ec.Content, "  \"a\": \"x\"") {
		t.Fatalf("expected indented echo, got %q", ec.Content)
	}
	if len(ec.Metadata) != 0 {
		t.Fatalf("json extraction should not add metadata, got %v", ec.Metadata)
	}
}

func TestExtractMalformedJSONFails(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.json", []byte(`{"a":`))

	ec := NewExtractor(nil).Extract(path)
	if ec.Error == "" {
		t.Fatal("expected error for malformed json")
	}
}

func TestExtractPNGMetadata(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 10, 6))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close png: %v", err)
	}

	ec := NewExtractor(nil).Extract(path)
	if ec.Error != "" {
		t.Fatalf("unexpected error: %s", ec.Error)
	}
	if ec.Metadata["width"] != 10 || ec.Metadata["height"] != 6 {
		t.Fatalf("unexpected dimensions: %v x %v", ec.Metadata["width"], ec.Metadata["height"])
	}
	if ec.Metadata["format"] != "PNG" {
		t.Fatalf("expected PNG format, got %v", ec.Metadata["format"])
	}
	if !strings.Contains(ec.Content, "10x6 pixels") {
		t.Fatalf("content missing dimensions: %q", ec.Content)
	}
}

func TestExtractUnrecognizedImageDegradesToBasicInfo(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fake.png", []byte("this is not an image"))

	ec := NewExtractor(nil).Extract(path)
	if ec.Error != "" {
		t.Fatalf("basic-info path must not set the outer error, got %s", ec.Error)
	}
	if ec.Metadata["basic_info"] != true {
		t.Fatalf("expected basic_info metadata, got %v", ec.Metadata)
	}
	if !strings.Contains(ec.Content, "fake.png") {
		t.Fatalf("content should name the file: %q", ec.Content)
	}
}

func TestExtractCorruptImageRecordsInlineError(t *testing.T) {
	dir := t.TempDir()
	// valid PNG signature followed by garbage so the decoder is selected but fails
	corrupt := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, []byte("garbage")...)
	path := writeFile(t, dir, "corrupt.png", corrupt)

	ec := NewExtractor(nil).Extract(path)
	if ec.Error != "" {
		t.Fatalf("partial-success path must not set the outer error, got %s", ec.Error)
	}
	if _, ok := ec.Metadata["error"]; !ok {
		t.Fatalf("expected inline error metadata, got %v", ec.Metadata)
	}
	if !strings.Contains(ec.Content, "Error reading metadata") {
		t.Fatalf("content should mention the failure: %q", ec.Content)
	}
}

func TestExtractDocxParagraphs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "memo.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	zw := zip.NewWriter(f)
	doc, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	body := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Hello</w:t></w:r></w:p>
    <w:p><w:r><w:t>World</w:t></w:r></w:p>
  </w:body>
</w:document>`
	if _, err := doc.Write([]byte(body)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	ec := NewExtractor(nil).Extract(path)
	if ec.Error != "" {
		t.Fatalf("unexpected error: %s", ec.Error)
	}
	if !strings.Contains(ec.Content, "Hello\n") || !strings.Contains(ec.Content, "World\n") {
		t.Fatalf("expected newline-joined paragraphs, got %q", ec.Content)
	}
}

func TestExtractDocxWithoutDocumentXMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "odd.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	zw := zip.NewWriter(f)
	if _, err := zw.Create("unrelated.txt"); err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	ec := NewExtractor(nil).Extract(path)
	if ec.Error == "" {
		t.Fatal("expected error for docx without document body")
	}
}
