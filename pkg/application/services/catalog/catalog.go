// Package catalog holds the built-in library of standard wire-harness
// manufacturing operations. Catalog entries carry no ids and no quantities;
// both are assigned when an operation is placed.
package catalog

import "github.com/harnessworks/harnesscost/pkg/domain/entities"

var standardOperations = []entities.Operation{
	// Pre-production and preparation
	{Name: "Wire Cutting", Category: entities.OpCategoryPreProduction, SetupMinutes: 15, LaborMinutes: 2, IsManual: true, ComplexityFactor: 1.0, BOMCategory: entities.CategoryWire},
	{Name: "Wire Stripping", Category: entities.OpCategoryPreProduction, SetupMinutes: 10, LaborMinutes: 1.5, IsManual: true, ComplexityFactor: 1.0, BOMCategory: entities.CategoryWire},
	{Name: "Wire Marking/Labeling", Category: entities.OpCategoryPreProduction, SetupMinutes: 20, LaborMinutes: 1, IsManual: false, ComplexityFactor: 0.8, BOMCategory: entities.CategoryWire},
	{Name: "Manual Wire Labeling", Category: entities.OpCategoryPreProduction, SetupMinutes: 5, LaborMinutes: 3, IsManual: true, ComplexityFactor: 1.2, BOMCategory: entities.CategoryWire},
	{Name: "Terminal Crimping", Category: entities.OpCategoryPreProduction, SetupMinutes: 25, LaborMinutes: 2.5, IsManual: false, ComplexityFactor: 1.1, BOMCategory: entities.CategoryTerminal},
	{Name: "Manual Crimping", Category: entities.OpCategoryPreProduction, SetupMinutes: 10, LaborMinutes: 4, IsManual: true, ComplexityFactor: 1.3, BOMCategory: entities.CategoryTerminal},
	{Name: "Crimp Pull Force Testing", Category: entities.OpCategoryPreProduction, SetupMinutes: 15, LaborMinutes: 1, IsManual: true, ComplexityFactor: 1.0, BOMCategory: entities.CategoryTerminal},
	{Name: "Tin Dipping", Category: entities.OpCategoryPreProduction, SetupMinutes: 30, LaborMinutes: 2, IsManual: false, ComplexityFactor: 1.0, BOMCategory: entities.CategoryWire},

	// Assembly
	{Name: "Connector Insertion", Category: entities.OpCategoryAssembly, SetupMinutes: 10, LaborMinutes: 3, IsManual: true, ComplexityFactor: 1.2, BOMCategory: entities.CategoryConnector},
	{Name: "Terminal Locking", Category: entities.OpCategoryAssembly, SetupMinutes: 5, LaborMinutes: 1.5, IsManual: true, ComplexityFactor: 1.1, BOMCategory: entities.CategoryTerminal},
	{Name: "Corrugated Tube Application", Category: entities.OpCategoryAssembly, SetupMinutes: 10, LaborMinutes: 2, IsManual: true, ComplexityFactor: 1.0, BOMCategory: entities.CategoryProtection},
	{Name: "Braid Sleeve Installation", Category: entities.OpCategoryAssembly, SetupMinutes: 15, LaborMinutes: 3, IsManual: true, ComplexityFactor: 1.2, BOMCategory: entities.CategoryProtection},
	{Name: "Spiral Wrap Application", Category: entities.OpCategoryAssembly, SetupMinutes: 8, LaborMinutes: 1.5, IsManual: true, ComplexityFactor: 0.9, BOMCategory: entities.CategoryProtection},
	{Name: "Cloth Tape Wrapping", Category: entities.OpCategoryAssembly, SetupMinutes: 5, LaborMinutes: 2.5, IsManual: true, ComplexityFactor: 1.1, BOMCategory: entities.CategoryProtection},
	{Name: "Heat Shrink Tubing", Category: entities.OpCategoryAssembly, SetupMinutes: 20, LaborMinutes: 2, IsManual: false, ComplexityFactor: 1.0, BOMCategory: entities.CategoryProtection},
	{Name: "Clip/Bracket Mounting", Category: entities.OpCategoryAssembly, SetupMinutes: 10, LaborMinutes: 1.5, IsManual: true, ComplexityFactor: 1.0, BOMCategory: entities.CategoryHardware},
	{Name: "Grommet Installation", Category: entities.OpCategoryAssembly, SetupMinutes: 5, LaborMinutes: 1, IsManual: true, ComplexityFactor: 1.0, BOMCategory: entities.CategoryHardware},
	{Name: "Ultrasonic Splicing", Category: entities.OpCategoryAssembly, SetupMinutes: 30, LaborMinutes: 3, IsManual: false, ComplexityFactor: 1.3, BOMCategory: entities.CategoryWire},
	{Name: "Manual Splicing", Category: entities.OpCategoryAssembly, SetupMinutes: 10, LaborMinutes: 5, IsManual: true, ComplexityFactor: 1.5, BOMCategory: entities.CategoryWire},
	{Name: "Branch Routing", Category: entities.OpCategoryAssembly, SetupMinutes: 15, LaborMinutes: 4, IsManual: true, ComplexityFactor: 1.4, BOMCategory: entities.CategoryWire},

	// Testing and quality control
	{Name: "Continuity Testing", Category: entities.OpCategoryTesting, SetupMinutes: 20, LaborMinutes: 3, IsManual: false, ComplexityFactor: 1.0, BOMCategory: entities.CategoryAll},
	{Name: "Manual Continuity Check", Category: entities.OpCategoryTesting, SetupMinutes: 5, LaborMinutes: 5, IsManual: true, ComplexityFactor: 1.2, BOMCategory: entities.CategoryAll},
	{Name: "High Voltage Testing", Category: entities.OpCategoryTesting, SetupMinutes: 25, LaborMinutes: 2, IsManual: false, ComplexityFactor: 1.1, BOMCategory: entities.CategoryAll},
	{Name: "Insulation Testing", Category: entities.OpCategoryTesting, SetupMinutes: 20, LaborMinutes: 2, IsManual: false, ComplexityFactor: 1.0, BOMCategory: entities.CategoryWire},
	{Name: "Visual Inspection", Category: entities.OpCategoryTesting, SetupMinutes: 5, LaborMinutes: 4, IsManual: true, ComplexityFactor: 1.2, BOMCategory: entities.CategoryAll},

	// Finishing and logistics
	{Name: "Harness Tying/Bundling", Category: entities.OpCategoryFinishing, SetupMinutes: 5, LaborMinutes: 2, IsManual: true, ComplexityFactor: 1.0, BOMCategory: entities.CategoryHardware},
	{Name: "Cable Tie Application", Category: entities.OpCategoryFinishing, SetupMinutes: 3, LaborMinutes: 1.5, IsManual: true, ComplexityFactor: 0.9, BOMCategory: entities.CategoryHardware},
	{Name: "Barcode Tagging", Category: entities.OpCategoryFinishing, SetupMinutes: 10, LaborMinutes: 1, IsManual: false, ComplexityFactor: 0.8, BOMCategory: entities.CategoryOther},
	{Name: "Final Part Labeling", Category: entities.OpCategoryFinishing, SetupMinutes: 5, LaborMinutes: 1.5, IsManual: true, ComplexityFactor: 1.0, BOMCategory: entities.CategoryOther},
	{Name: "Packaging", Category: entities.OpCategoryFinishing, SetupMinutes: 10, LaborMinutes: 3, IsManual: true, ComplexityFactor: 1.0, BOMCategory: entities.CategoryAll},
}

// StandardOperations returns a copy of the built-in operation library.
func StandardOperations() []entities.Operation {
	out := make([]entities.Operation, len(standardOperations))
	copy(out, standardOperations)
	return out
}

// FilterByBOMCategory keeps operations tied to the given BOM category.
// Operations tied to every BOM line ("All") always pass, and an "All" filter
// keeps everything.
func FilterByBOMCategory(ops []entities.Operation, filter entities.Category) []entities.Operation {
	if filter == entities.CategoryAll {
		out := make([]entities.Operation, len(ops))
		copy(out, ops)
		return out
	}
	var out []entities.Operation
	for _, op := range ops {
		if op.BOMCategory == filter || op.BOMCategory == entities.CategoryAll {
			out = append(out, op)
		}
	}
	return out
}

// OperationCategories returns the distinct operation categories in catalog
// order.
func OperationCategories(ops []entities.Operation) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, op := range ops {
		if _, ok := seen[op.Category]; ok {
			continue
		}
		seen[op.Category] = struct{}{}
		out = append(out, op.Category)
	}
	return out
}
