package parser

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/resistlong-go/pkg/resistlong/models"
	"github.com/xuri/excelize/v2"
)

func TestReadGrid(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "C1", "Header3")
	f.SetCellValue(sheetName, "A3", 100)
	f.SetCellValue(sheetName, "B3", 200.5)

	// Save to temp file
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ReadGrid(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Header1" || rows[0][2] != "Header3" {
		t.Errorf("Unexpected header row %q", rows[0])
	}
	if len(rows[1]) != 0 {
		t.Errorf("Expected empty second row, got %q", rows[1])
	}
	if rows[2][0] != "100" || rows[2][1] != "200.5" {
		t.Errorf("Expected raw numbers, got %q", rows[2])
	}
}

func TestReadGridUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadGrid(f, "Nope"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"123", models.Value{Number: 123, Valid: true, Raw: "123"}},
		{"123.45", models.Value{Number: 123.45, Valid: true, Raw: "123.45"}},
		{"-100", models.Value{Number: -100, Valid: true, Raw: "-100"}},
		{" 7 ", models.Value{Number: 7, Valid: true, Raw: " 7 "}},
		{"0", models.Value{Number: 0, Valid: true, Raw: "0"}},
		{"1e3", models.Value{Number: 1000, Valid: true, Raw: "1e3"}},
		{"<5", models.Value{Raw: "<5"}},
		{"NaN", models.Value{Raw: "NaN"}},
		{"Inf", models.Value{Raw: "Inf"}},
		{"", models.Value{}},
		{"   ", models.Value{Raw: "   "}},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if result != tt.expected {
			t.Errorf("ParseValue(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}
