package services

import (
	"testing"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

func TestEstimateSpecs_Counts(t *testing.T) {
	bom := []entities.BOMItem{
		{PartNumber: "CON-001", Quantity: 4, Category: entities.CategoryConnector},
		{PartNumber: "CON-002", Quantity: 8, Category: entities.CategoryConnector},
		{PartNumber: "WIR-001", Quantity: 120, Category: entities.CategoryWire},
	}
	wires := []entities.WireCutItem{
		{WireID: "W001", FromPoint: "X1", ToPoint: "SPLICE-A", Length: 450, Quantity: 2},
		{WireID: "W002", FromPoint: "X1", ToPoint: "X3", Length: 300, Quantity: 1},
		{WireID: "W003", FromPoint: "X2", ToPoint: "X4", Length: 200, Quantity: 3},
	}

	patch := EstimateSpecs(bom, wires)

	if patch.WireCount != 6 {
		t.Errorf("Expected wire count 6, got %d", patch.WireCount)
	}
	if patch.ConnectorCount != 12 {
		t.Errorf("Expected connector count 12, got %d", patch.ConnectorCount)
	}
	// Two distinct origins, one is the root.
	if patch.EstimatedBranches != 1 {
		t.Errorf("Expected 1 branch, got %d", patch.EstimatedBranches)
	}
	if patch.EstimatedSplices != 1 {
		t.Errorf("Expected 1 splice, got %d", patch.EstimatedSplices)
	}
	if patch.TotalLength != 450*2+300+200*3 {
		t.Errorf("Expected total length 1800, got %g", patch.TotalLength)
	}
}

func TestEstimateSpecs_EmptyInputs(t *testing.T) {
	patch := EstimateSpecs(nil, nil)

	if patch.WireCount != 0 || patch.ConnectorCount != 0 {
		t.Errorf("Expected zero counts, got wires=%d connectors=%d", patch.WireCount, patch.ConnectorCount)
	}
	if patch.EstimatedBranches != 0 {
		t.Errorf("Expected 0 branches for empty wire list, got %d", patch.EstimatedBranches)
	}
	if patch.Complexity != entities.ComplexitySimple {
		t.Errorf("Expected Simple complexity, got %s", patch.Complexity)
	}
}

func TestEstimateSpecs_ComplexityLadder(t *testing.T) {
	testCases := []struct {
		name       string
		wires      int
		connectors int
		branches   int
		want       entities.ComplexityLevel
	}{
		{"all at simple thresholds", 50, 10, 5, entities.ComplexitySimple},
		{"wires just over medium", 51, 0, 0, entities.ComplexityMedium},
		{"connectors just over medium", 0, 11, 0, entities.ComplexityMedium},
		{"branches just over medium", 0, 0, 6, entities.ComplexityMedium},
		{"wires just over complex", 101, 0, 0, entities.ComplexityComplex},
		{"connectors just over complex", 0, 21, 0, entities.ComplexityComplex},
		{"wires just over very complex", 201, 0, 0, entities.ComplexityVeryComplex},
		{"connectors just over very complex", 0, 41, 0, entities.ComplexityVeryComplex},
		{"branches just over very complex", 0, 0, 21, entities.ComplexityVeryComplex},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyComplexity(tc.wires, tc.connectors, tc.branches); got != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestSpecPatch_ApplyTo_StickyDefaults(t *testing.T) {
	prev := entities.HarnessSpecs{
		TotalWires:      80,
		TotalConnectors: 15,
		TotalBranches:   4,
		TotalSplices:    2,
		HarnessLength:   5000,
		ComplexityLevel: entities.ComplexityMedium,
	}

	// An all-zero patch must not clobber user-entered values.
	next := SpecPatch{}.ApplyTo(prev)
	if next != prev {
		t.Errorf("Expected empty patch to leave specs unchanged, got %+v", next)
	}

	// A partial patch overwrites only its non-zero fields.
	next = SpecPatch{WireCount: 120, Complexity: entities.ComplexityComplex}.ApplyTo(prev)
	if next.TotalWires != 120 {
		t.Errorf("Expected wires 120, got %d", next.TotalWires)
	}
	if next.TotalConnectors != 15 {
		t.Errorf("Expected connectors untouched at 15, got %d", next.TotalConnectors)
	}
	if next.ComplexityLevel != entities.ComplexityComplex {
		t.Errorf("Expected complexity Complex, got %s", next.ComplexityLevel)
	}
}

func TestSpecPatch_ApplyTo_ComplexityNeedsEvidence(t *testing.T) {
	prev := entities.HarnessSpecs{ComplexityLevel: entities.ComplexityComplex}

	// Branch-only evidence must not downgrade the complexity tier.
	next := SpecPatch{EstimatedBranches: 3, Complexity: entities.ComplexitySimple}.ApplyTo(prev)
	if next.ComplexityLevel != entities.ComplexityComplex {
		t.Errorf("Expected complexity to stay Complex, got %s", next.ComplexityLevel)
	}
	if next.TotalBranches != 3 {
		t.Errorf("Expected branches 3, got %d", next.TotalBranches)
	}
}

func TestEstimateSpecs_Idempotent(t *testing.T) {
	bom := []entities.BOMItem{{PartNumber: "CON-001", Quantity: 4, Category: entities.CategoryConnector}}
	wires := []entities.WireCutItem{{WireID: "W001", FromPoint: "X1", ToPoint: "X2", Length: 100, Quantity: 2}}

	first := EstimateSpecs(bom, wires)
	second := EstimateSpecs(bom, wires)
	if first != second {
		t.Errorf("Expected identical patches, got %+v and %+v", first, second)
	}

	applied := first.ApplyTo(entities.HarnessSpecs{})
	reapplied := second.ApplyTo(applied)
	if applied != reapplied {
		t.Errorf("Expected reapplying the same patch to be a no-op, got %+v and %+v", applied, reapplied)
	}
}
