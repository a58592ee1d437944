package services

import (
	"strings"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

// SpecPatch is a candidate update to HarnessSpecs derived from the BOM and
// wire-cut snapshots. It is applied with sticky-default semantics: a derived
// zero never clobbers a value the user already entered.
type SpecPatch struct {
	WireCount         int
	ConnectorCount    int
	EstimatedBranches int
	EstimatedSplices  int
	TotalLength       float64
	Complexity        entities.ComplexityLevel
}

// EstimateSpecs derives aggregate harness metrics from the BOM and wire-cut
// snapshots. Branch and splice counts are heuristics: one dominant origin
// point is the harness root, so every additional distinct origin implies a
// branch; rows touching a point named "splice" count as splices.
//
// Re-run whenever either snapshot changes; the function is pure and
// idempotent for a given input.
func EstimateSpecs(bomItems []entities.BOMItem, wireCutItems []entities.WireCutItem) SpecPatch {
	wireCount := 0
	totalLength := 0.0
	splices := 0
	fromPoints := make(map[string]struct{})

	for _, item := range wireCutItems {
		wireCount += int(item.Quantity)
		totalLength += item.TotalLength()
		fromPoints[item.FromPoint] = struct{}{}
		if strings.Contains(strings.ToLower(item.FromPoint), "splice") ||
			strings.Contains(strings.ToLower(item.ToPoint), "splice") {
			splices++
		}
	}

	branches := len(fromPoints) - 1
	if branches < 0 {
		branches = 0
	}

	connectorCount := 0
	for _, item := range bomItems {
		if item.Category == entities.CategoryConnector {
			connectorCount += int(item.Quantity)
		}
	}

	return SpecPatch{
		WireCount:         wireCount,
		ConnectorCount:    connectorCount,
		EstimatedBranches: branches,
		EstimatedSplices:  splices,
		TotalLength:       totalLength,
		Complexity:        classifyComplexity(wireCount, connectorCount, branches),
	}
}

// classifyComplexity walks the threshold ladder in ascending order so a later
// (more complex) tier overrides an earlier match. Each condition is an OR
// across the three metrics.
func classifyComplexity(wireCount, connectorCount, branches int) entities.ComplexityLevel {
	level := entities.ComplexitySimple
	if wireCount > 50 || connectorCount > 10 || branches > 5 {
		level = entities.ComplexityMedium
	}
	if wireCount > 100 || connectorCount > 20 || branches > 10 {
		level = entities.ComplexityComplex
	}
	if wireCount > 200 || connectorCount > 40 || branches > 20 {
		level = entities.ComplexityVeryComplex
	}
	return level
}

// ApplyTo merges the patch into previously stored specs. Each count is
// overwritten only when its derived value is non-zero; the complexity level
// only when the patch saw any wires or connectors at all.
func (p SpecPatch) ApplyTo(prev entities.HarnessSpecs) entities.HarnessSpecs {
	next := prev
	if p.WireCount != 0 {
		next.TotalWires = p.WireCount
	}
	if p.ConnectorCount != 0 {
		next.TotalConnectors = p.ConnectorCount
	}
	if p.EstimatedBranches != 0 {
		next.TotalBranches = p.EstimatedBranches
	}
	if p.EstimatedSplices != 0 {
		next.TotalSplices = p.EstimatedSplices
	}
	if p.TotalLength != 0 {
		next.HarnessLength = p.TotalLength
	}
	if p.WireCount > 0 || p.ConnectorCount > 0 {
		next.ComplexityLevel = p.Complexity
	}
	return next
}
