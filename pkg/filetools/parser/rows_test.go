package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetSheetRow(sheetName, "A1", &[]interface{}{"name", "date", "path", "value", "translation"})
	f.SetSheetRow(sheetName, "A2", &[]interface{}{"img1.png", "2024-01-01", "/global/en/img1.png", "fallback", "localized"})
	f.SetSheetRow(sheetName, "A3", &[]interface{}{"img2.png", "2024-02-01", "/global/en/img2.png", 42})

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, headers, err := ExtractRows(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	if len(headers) != 5 {
		t.Errorf("Expected 5 headers, got %d", len(headers))
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	// Every header becomes a key, even when the cell is missing.
	if rows[1].Len() != 5 {
		t.Errorf("Expected 5 keys in row 2, got %d", rows[1].Len())
	}
	if v, _ := rows[1].Get("translation"); v != "" {
		t.Errorf("Expected empty translation, got %v", v)
	}
	if v, _ := rows[1].Get("value"); v != int64(42) {
		t.Errorf("Expected int64(42), got %v (type: %T)", v, v)
	}
	if v, _ := rows[0].ValueAt(2); v != "/global/en/img1.png" {
		t.Errorf("Expected path in position 2, got %v", v)
	}
}

func TestExtractRowsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, _, err := ExtractRows(f, "Nope"); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestRowsFromGrid(t *testing.T) {
	headers := []string{"A", "", "B", "A"}
	data := [][]interface{}{
		{int64(1), "skipped", "x", "last"},
		{},
	}

	rows := rowsFromGrid(headers, data)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	keys := rows[0].Keys()
	if len(keys) != 2 || keys[0] != "A" || keys[1] != "B" {
		t.Errorf("Unexpected keys %v", keys)
	}
	if v, _ := rows[0].Get("A"); v != "last" {
		t.Errorf("Expected repeated header to take last value, got %v", v)
	}
	if rows[1].Len() != 2 {
		t.Errorf("Expected blank row to carry every header, got %d keys", rows[1].Len())
	}
	if v, _ := rows[1].Get("B"); v != "" {
		t.Errorf("Expected missing cell to decode as empty string, got %v", v)
	}
}

func TestExtractRowsKeepsTextCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetSheetRow(sheetName, "A1", &[]interface{}{"NAME", "DATE", "PATH", "VALUE", "A", "B", "C", "D"})
	f.SetSheetRow(sheetName, "A2", &[]interface{}{"007", "2024-01-01", "/global/en/x", "nan", "inf", "Infinity", 1.5, true})

	rows, _, err := ExtractRows(f, sheetName)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}

	expected := map[string]interface{}{
		"NAME":  "007",
		"DATE":  "2024-01-01",
		"PATH":  "/global/en/x",
		"VALUE": "nan",
		"A":     "inf",
		"B":     "Infinity",
		"C":     1.5,
		"D":     true,
	}
	for key, want := range expected {
		got, ok := rows[0].Get(key)
		if !ok {
			t.Errorf("Missing key %q", key)
			continue
		}
		if got != want {
			t.Errorf("%s = %v (type: %T), expected %v (type: %T)", key, got, got, want, want)
		}
	}
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		name     string
		cellType excelize.CellType
		display  string
		stored   string
		expected interface{}
	}{
		{"integer", excelize.CellTypeUnset, "123", "123", int64(123)},
		{"negative integer", excelize.CellTypeNumber, "-100", "-100", int64(-100)},
		{"decimal", excelize.CellTypeUnset, "123.45", "123.45", 123.45},
		{"formatted number uses stored value", excelize.CellTypeUnset, "1,234.50", "1234.5", 1234.5},
		{"whole float", excelize.CellTypeNumber, "2", "2.0", int64(2)},
		{"huge number stays float", excelize.CellTypeNumber, "1E+20", "1e20", 1e20},
		{"leading zeros text", excelize.CellTypeSharedString, "007", "007", "007"},
		{"nan text", excelize.CellTypeInlineString, "nan", "nan", "nan"},
		{"nan in numeric cell", excelize.CellTypeNumber, "NaN", "NaN", "NaN"},
		{"inf in numeric cell", excelize.CellTypeUnset, "+Inf", "+Inf", "+Inf"},
		{"formula text", excelize.CellTypeFormula, "ok", "ok", "ok"},
		{"bool true", excelize.CellTypeBool, "TRUE", "1", true},
		{"bool false", excelize.CellTypeBool, "FALSE", "0", false},
		{"path", excelize.CellTypeSharedString, "/global/en", "/global/en", "/global/en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellValue(tt.cellType, tt.display, tt.stored); got != tt.expected {
				t.Errorf("cellValue() = %v (type: %T), expected %v (type: %T)", got, got, tt.expected, tt.expected)
			}
		})
	}
}

func TestDistinctHeaders(t *testing.T) {
	got := distinctHeaders([]string{"NAME", "", "PATH", "NAME", "VALUE"})
	expected := []string{"NAME", "PATH", "VALUE"}

	if len(got) != len(expected) {
		t.Fatalf("distinctHeaders = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("distinctHeaders[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}
}
