package expansion

import (
	"testing"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

func previewTemplateOps() []entities.Operation {
	return []entities.Operation{
		{Name: "Connector Insertion", BOMCategory: entities.CategoryConnector},
		{Name: "Terminal Locking", BOMCategory: entities.CategoryConnector},
		{Name: "Wire Cutting", BOMCategory: entities.CategoryWire},
		{Name: "Visual Inspection"},
	}
}

func TestPreviewExpansion_FlagsOff(t *testing.T) {
	ops := previewTemplateOps()
	ops[3].Quantity = 4

	preview := PreviewExpansion(ops, connectorBOM(), false, false)

	if preview.TotalOperations != 4 {
		t.Errorf("Expected 4 operations, got %d", preview.TotalOperations)
	}
	if preview.TotalQuantity != 7 {
		t.Errorf("Expected total quantity 7, got %d", preview.TotalQuantity)
	}
	if len(preview.Breakdown) != 0 {
		t.Errorf("Expected no breakdown when flags are off, got %d groups", len(preview.Breakdown))
	}
}

func TestPreviewExpansion_MatchesExpansion(t *testing.T) {
	ops := previewTemplateOps()
	bom := connectorBOM()

	for _, flags := range []struct {
		name                     string
		autoRepeat, autoQuantity bool
	}{
		{"repeat and quantity", true, true},
		{"repeat only", true, false},
		{"quantity only", false, true},
	} {
		t.Run(flags.name, func(t *testing.T) {
			preview := PreviewExpansion(ops, bom, flags.autoRepeat, flags.autoQuantity)
			expanded := ExpandForBOM(ops, bom, flags.autoRepeat, flags.autoQuantity)

			if preview.TotalOperations != len(expanded) {
				t.Errorf("Expected preview count %d to match expansion, got %d",
					len(expanded), preview.TotalOperations)
			}

			var qty entities.Quantity
			for _, op := range expanded {
				qty += op.EffectiveQuantity()
			}
			if preview.TotalQuantity != qty {
				t.Errorf("Expected preview quantity %d to match expansion, got %d",
					qty, preview.TotalQuantity)
			}
		})
	}
}

func TestPreviewExpansion_Breakdown(t *testing.T) {
	preview := PreviewExpansion(previewTemplateOps(), connectorBOM(), true, true)

	if len(preview.Breakdown) != 3 {
		t.Fatalf("Expected 3 category groups, got %d", len(preview.Breakdown))
	}

	connector := preview.Breakdown[0]
	if connector.Category != entities.CategoryConnector {
		t.Errorf("Expected Connector group first, got %s", connector.Category)
	}
	if connector.UniqueParts != 2 {
		t.Errorf("Expected 2 unique connector parts, got %d", connector.UniqueParts)
	}
	if connector.BaseOperations != 2 || connector.Operations != 4 {
		t.Errorf("Expected 2 base operations expanding to 4, got %d and %d",
			connector.BaseOperations, connector.Operations)
	}

	// Unset BOM category groups under All.
	all := preview.Breakdown[2]
	if all.Category != entities.CategoryAll {
		t.Errorf("Expected All group last, got %s", all.Category)
	}
	if all.Operations != 1 {
		t.Errorf("Expected 1 operation in All group, got %d", all.Operations)
	}
}
