package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp CSV: %v", err)
	}
	return path
}

func TestLoadBOM(t *testing.T) {
	path := writeTempCSV(t, `Part Number,Description,Quantity,Category,Length,Gauge
CON-001,Deutsch DT 12-way connector,4,Connector,,
WIR-018,FLRY-B wire,120,,2500,0.75
,Unknown line,,,,
`)

	loader := NewLoader(nil)
	items, err := loader.LoadBOM(path)
	if err != nil {
		t.Fatalf("Expected load to succeed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected 3 BOM items, got %d", len(items))
	}

	if items[0].PartNumber != "CON-001" || items[0].Category != entities.CategoryConnector {
		t.Errorf("Expected explicit part data preserved, got %+v", items[0])
	}
	if items[0].Quantity != 4 {
		t.Errorf("Expected quantity 4, got %d", items[0].Quantity)
	}

	// Missing category is inferred from the description.
	if items[1].Category != entities.CategoryWire {
		t.Errorf("Expected Wire category inferred, got %s", items[1].Category)
	}
	if items[1].Length != 2500 {
		t.Errorf("Expected length 2500, got %g", items[1].Length)
	}

	// Missing part number and quantity get defaults.
	if items[2].PartNumber != "AUTO-3" {
		t.Errorf("Expected synthesized part number AUTO-3, got %s", items[2].PartNumber)
	}
	if items[2].Quantity != 1 {
		t.Errorf("Expected default quantity 1, got %d", items[2].Quantity)
	}
}

func TestLoadBOM_RequiresDataRows(t *testing.T) {
	path := writeTempCSV(t, "Part Number,Description,Quantity\n")

	loader := NewLoader(nil)
	if _, err := loader.LoadBOM(path); err == nil {
		t.Error("Expected load with no data rows to fail")
	}
}

func TestLoadBOM_SkipsEmptyRows(t *testing.T) {
	path := writeTempCSV(t, `Part Number,Description,Quantity
CON-001,Connector,4
,,
WIR-001,Wire,10
`)

	loader := NewLoader(nil)
	items, err := loader.LoadBOM(path)
	if err != nil {
		t.Fatalf("Expected load to succeed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("Expected empty row skipped, got %d items", len(items))
	}
}

func TestLoadWireCutList(t *testing.T) {
	path := writeTempCSV(t, `Wire ID,From Point,To Point,Length,Wire Gauge,Color,Quantity
W001,X1,SPLICE-A,450,0.75,RD,2
,X2,X3,300,1.5,BK,
`)

	loader := NewLoader(nil)
	items, err := loader.LoadWireCutList(path)
	if err != nil {
		t.Fatalf("Expected load to succeed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 wire items, got %d", len(items))
	}

	if items[0].WireID != "W001" || items[0].Length != 450 || items[0].Quantity != 2 {
		t.Errorf("Expected explicit wire data preserved, got %+v", items[0])
	}
	if items[0].FromPoint != "X1" || items[0].ToPoint != "SPLICE-A" {
		t.Errorf("Expected endpoints preserved, got %+v", items[0])
	}

	// Missing wire id and quantity get defaults.
	if items[1].WireID != "W2" {
		t.Errorf("Expected synthesized wire id W2, got %s", items[1].WireID)
	}
	if items[1].Quantity != 1 {
		t.Errorf("Expected default quantity 1, got %d", items[1].Quantity)
	}
}

func TestLoadWireCutList_PositionalFallback(t *testing.T) {
	// Unrecognizable headers fall back to the template column order.
	path := writeTempCSV(t, `a,b,c,d,e,f,g
W001,X1,X2,450,0.75,RD,2
`)

	loader := NewLoader(nil)
	items, err := loader.LoadWireCutList(path)
	if err != nil {
		t.Fatalf("Expected load to succeed: %v", err)
	}
	if items[0].WireID != "W001" || items[0].Length != 450 || items[0].Quantity != 2 {
		t.Errorf("Expected positional columns parsed, got %+v", items[0])
	}
}

func TestLoadWireCutList_RejectsShortRows(t *testing.T) {
	path := writeTempCSV(t, `Wire ID,From Point,To Point,Length,Wire Gauge
W001,X1,X2
`)

	loader := NewLoader(nil)
	if _, err := loader.LoadWireCutList(path); err == nil {
		t.Error("Expected load with short rows to fail")
	}
}

func TestCategorizeDescription(t *testing.T) {
	testCases := []struct {
		description string
		want        entities.Category
	}{
		{"FLRY-B automotive wire 0.75mm", entities.CategoryWire},
		{"Battery CABLE 35mm", entities.CategoryWire},
		{"Deutsch DT connector", entities.CategoryConnector},
		{"2-pin plug housing", entities.CategoryConnector},
		{"Ring terminal M6", entities.CategoryTerminal},
		{"Open barrel crimp", entities.CategoryTerminal},
		{"Corrugated tube NW10", entities.CategoryProtection},
		{"Braided sleeve 12mm", entities.CategoryProtection},
		{"Cloth tape 19mm", entities.CategoryProtection},
		{"Edge clip 8mm", entities.CategoryHardware},
		{"Nylon tie 200mm", entities.CategoryHardware},
		// Wire keywords win over later categories.
		{"Cable tie 200mm", entities.CategoryWire},
		{"Fuse 10A", entities.CategoryOther},
		{"", entities.CategoryOther},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := CategorizeDescription(tc.description); got != tc.want {
				t.Errorf("Expected %s for %q, got %s", tc.want, tc.description, got)
			}
		})
	}
}
