package xlsx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

func writeTempWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("Failed to build cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("Failed to write row %d: %v", i, err)
		}
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

func TestLoadBOM(t *testing.T) {
	path := writeTempWorkbook(t, [][]interface{}{
		{"Part Number", "Description", "Quantity", "Category"},
		{"CON-001", "Deutsch DT connector", 4, "Connector"},
		{"WIR-018", "FLRY-B wire", 120, ""},
	})

	loader := NewLoader(nil)
	items, err := loader.LoadBOM(path)
	if err != nil {
		t.Fatalf("Expected load to succeed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 BOM items, got %d", len(items))
	}
	if items[0].PartNumber != "CON-001" || items[0].Quantity != 4 {
		t.Errorf("Expected first item preserved, got %+v", items[0])
	}
	if items[1].Category != entities.CategoryWire {
		t.Errorf("Expected Wire category inferred, got %s", items[1].Category)
	}
}

func TestLoadWireCutList(t *testing.T) {
	path := writeTempWorkbook(t, [][]interface{}{
		{"Wire ID", "From Point", "To Point", "Length", "Wire Gauge", "Color", "Quantity"},
		{"W001", "X1", "X2", 450, "0.75", "RD", 2},
	})

	loader := NewLoader(nil)
	items, err := loader.LoadWireCutList(path)
	if err != nil {
		t.Fatalf("Expected load to succeed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 wire item, got %d", len(items))
	}
	if items[0].WireID != "W001" || items[0].Length != 450 || items[0].Quantity != 2 {
		t.Errorf("Expected wire data preserved, got %+v", items[0])
	}
}

func TestLoadBOM_MissingFile(t *testing.T) {
	loader := NewLoader(nil)
	if _, err := loader.LoadBOM(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("Expected load of missing file to fail")
	}
}

func TestLoadBOM_HeaderOnly(t *testing.T) {
	path := writeTempWorkbook(t, [][]interface{}{
		{"Part Number", "Description", "Quantity"},
	})

	loader := NewLoader(nil)
	_, err := loader.LoadBOM(path)
	if err == nil {
		t.Error("Expected load with no data rows to fail")
	}
	if err != nil && !strings.Contains(err.Error(), "header row") {
		t.Errorf("Expected header-row error, got %v", err)
	}
}
