package expansion

import (
	"testing"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

func TestRecalculateQuantities(t *testing.T) {
	ops := []entities.Operation{
		{ID: "op-1", Name: "Connector Insertion", BOMCategory: entities.CategoryConnector, Quantity: 99},
		{ID: "op-2", Name: "Custom Step", Quantity: 5},
	}

	result := RecalculateQuantities(ops, connectorBOM())

	if len(result) != 2 {
		t.Fatalf("Expected 2 operations, got %d", len(result))
	}
	if result[0].Quantity != 10 {
		t.Errorf("Expected re-resolved quantity 10, got %d", result[0].Quantity)
	}
	if result[1].Quantity != 5 {
		t.Errorf("Expected own quantity 5 kept, got %d", result[1].Quantity)
	}
	if ops[0].Quantity != 99 {
		t.Errorf("Expected input untouched, got %d", ops[0].Quantity)
	}
}

func TestSplitByBOM(t *testing.T) {
	bom := connectorBOM()

	t.Run("no affinity unchanged", func(t *testing.T) {
		ops := []entities.Operation{{ID: "op-1", Name: "Custom", Quantity: 5}}
		result := SplitByBOM(ops, bom)
		if len(result) != 1 || result[0].Quantity != 5 {
			t.Errorf("Expected operation unchanged, got %+v", result)
		}
	})

	t.Run("zero matches unchanged", func(t *testing.T) {
		ops := []entities.Operation{{ID: "op-1", Name: "Crimp", BOMCategory: entities.CategoryTerminal, Quantity: 2}}
		result := SplitByBOM(ops, bom)
		if len(result) != 1 || result[0].Quantity != 2 || result[0].ID != "op-1" {
			t.Errorf("Expected operation unchanged, got %+v", result)
		}
	})

	t.Run("single match overwrites quantity", func(t *testing.T) {
		ops := []entities.Operation{{ID: "op-1", Name: "Wire Cutting", BOMCategory: entities.CategoryWire, Quantity: 1}}
		result := SplitByBOM(ops, bom)
		if len(result) != 1 {
			t.Fatalf("Expected 1 operation, got %d", len(result))
		}
		if result[0].Quantity != 20 {
			t.Errorf("Expected quantity 20 from the single wire line, got %d", result[0].Quantity)
		}
		if result[0].Name != "Wire Cutting" {
			t.Errorf("Expected unsuffixed name, got %s", result[0].Name)
		}
	})

	t.Run("multiple matches clone per line", func(t *testing.T) {
		ops := []entities.Operation{{ID: "op-1", Name: "Connector Insertion", BOMCategory: entities.CategoryConnector}}
		result := SplitByBOM(ops, bom)
		if len(result) != 2 {
			t.Fatalf("Expected 2 clones, got %d", len(result))
		}
		if result[0].ID != "op-1-split-0" || result[1].ID != "op-1-split-1" {
			t.Errorf("Expected split ids, got %s and %s", result[0].ID, result[1].ID)
		}
		if result[0].Name != "Connector Insertion (CON-A)" {
			t.Errorf("Expected name suffixed with CON-A, got %s", result[0].Name)
		}
		if result[0].Quantity != 4 || result[1].Quantity != 6 {
			t.Errorf("Expected line quantities 4 and 6, got %d and %d",
				result[0].Quantity, result[1].Quantity)
		}
	})

	t.Run("All category splits across every line", func(t *testing.T) {
		ops := []entities.Operation{{ID: "op-1", Name: "Packaging", BOMCategory: entities.CategoryAll}}
		result := SplitByBOM(ops, bom)
		if len(result) != 3 {
			t.Fatalf("Expected 3 clones, got %d", len(result))
		}
	})
}
