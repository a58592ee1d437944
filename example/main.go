package main

import (
	"fmt"

	"github.com/harnessworks/harnesscost/pkg/application/services/catalog"
	"github.com/harnessworks/harnesscost/pkg/application/services/costing"
	"github.com/harnessworks/harnesscost/pkg/application/services/expansion"
	"github.com/harnessworks/harnesscost/pkg/application/services/templates"
	"github.com/harnessworks/harnesscost/pkg/domain/entities"
	"github.com/harnessworks/harnesscost/pkg/domain/services"
	"github.com/harnessworks/harnesscost/pkg/infrastructure/identity"
	"github.com/harnessworks/harnesscost/pkg/infrastructure/repositories/memory"
)

func main() {
	// A small engine harness: two connector types and a bundle of wires.
	bomItems := []entities.BOMItem{
		{ID: "bom-1", PartNumber: "CON-DT12", Description: "Deutsch DT 12-way connector", Quantity: 2, Category: entities.CategoryConnector},
		{ID: "bom-2", PartNumber: "CON-DT04", Description: "Deutsch DT 4-way connector", Quantity: 4, Category: entities.CategoryConnector},
		{ID: "bom-3", PartNumber: "WIR-075", Description: "FLRY-B 0.75mm wire", Quantity: 60, Category: entities.CategoryWire, Length: 500, WireGauge: "0.75"},
		{ID: "bom-4", PartNumber: "TRM-M6", Description: "Ring terminal M6", Quantity: 12, Category: entities.CategoryTerminal},
	}
	wireCutItems := []entities.WireCutItem{
		{ID: "wire-1", WireID: "W001", FromPoint: "X1", ToPoint: "SPLICE-A", Length: 450, WireGauge: "0.75", Color: "RD", Quantity: 30},
		{ID: "wire-2", WireID: "W002", FromPoint: "X2", ToPoint: "X3", Length: 300, WireGauge: "0.75", Color: "BK", Quantity: 30},
	}

	// Derive harness metrics from the snapshots.
	specs := services.EstimateSpecs(bomItems, wireCutItems).
		ApplyTo(entities.HarnessSpecs{ComplexityLevel: entities.ComplexitySimple})

	fmt.Println("🔌 Estimating a small engine harness...")
	fmt.Printf("Specs: %d wires, %d connectors, complexity %s\n\n",
		specs.TotalWires, specs.TotalConnectors, specs.ComplexityLevel)

	// Save the connector work as a reusable template, then apply it with
	// BOM-driven expansion.
	templateService := templates.NewService(
		memory.NewTemplateRepository(1),
		identity.NewGenerator(),
		identity.SystemClock{},
	)

	connectorOps := catalog.FilterByBOMCategory(catalog.StandardOperations(), entities.CategoryConnector)
	template, err := templateService.Save(
		"Engine Connector Work", "Connector insertion and testing", "Engine",
		connectorOps, bomItems, specs,
	)
	if err != nil {
		fmt.Printf("❌ Template save failed: %v\n", err)
		return
	}

	operations, err := templateService.Apply(template.ID, bomItems, true, true)
	if err != nil {
		fmt.Printf("❌ Template apply failed: %v\n", err)
		return
	}

	// Add the wire prep steps directly from the catalog.
	for _, op := range catalog.FilterByBOMCategory(catalog.StandardOperations(), entities.CategoryWire) {
		if op.BOMCategory != entities.CategoryWire {
			continue
		}
		operations = append(operations, templateService.AddOperation(op, bomItems))
	}
	operations = expansion.RecalculateQuantities(operations, bomItems)

	// Price the run.
	workstation := entities.WorkstationConfig{
		Type:                 entities.WorkstationManual,
		EfficiencyMultiplier: entities.DefaultEfficiencyMultiplier(entities.WorkstationManual),
	}
	report, err := costing.NewService().Report(
		operations, specs, workstation,
		entities.DefaultProjectParameters(),
		bomItems, wireCutItems,
	)
	if err != nil {
		fmt.Printf("❌ Estimation failed: %v\n", err)
		return
	}

	fmt.Println("📊 Estimate:")
	fmt.Printf("  Operations: %d\n", report.Metrics.OperationsCount)
	fmt.Printf("  Total Production Time: %.1f minutes\n", report.Time.TotalMinutes)
	fmt.Printf("  Total Cost: $%s\n", report.Cost.TotalCost.StringFixed(2))
	fmt.Printf("  Cost Per Unit: $%s\n", report.Cost.CostPerUnit.StringFixed(2))
	fmt.Printf("  Units Per Shift: %d\n", report.Metrics.UnitsPerShift)
	for _, w := range report.Warnings {
		fmt.Printf("  ⚠️  %s\n", w)
	}
}
