package expansion

import "github.com/harnessworks/harnesscost/pkg/domain/entities"

// PreviewBreakdown describes one BOM-category group within an expansion
// preview.
type PreviewBreakdown struct {
	Category       entities.Category
	UniqueParts    int
	BaseOperations int
	Operations     int
	TotalQuantity  entities.Quantity
}

// Preview summarizes what ExpandForBOM would generate, without committing
// anything.
type Preview struct {
	TotalOperations int
	TotalQuantity   entities.Quantity
	Breakdown       []PreviewBreakdown
}

// PreviewExpansion computes the operation count and total quantity a template
// apply would generate. The numbers are derived by running the same expansion
// rules over each category group, so they are identical to what ExpandForBOM
// actually produces.
func PreviewExpansion(
	templateOps []entities.Operation,
	bomItems []entities.BOMItem,
	autoRepeat, autoQuantity bool,
) Preview {
	if (!autoRepeat && !autoQuantity) || len(bomItems) == 0 {
		var totalQty entities.Quantity
		for _, op := range templateOps {
			totalQty += op.EffectiveQuantity()
		}
		return Preview{TotalOperations: len(templateOps), TotalQuantity: totalQty}
	}

	partsByCategory := groupParts(bomItems)

	// Group template operations by BOM category, unset treated as "All",
	// preserving first-seen order.
	var order []entities.Category
	groups := make(map[entities.Category][]entities.Operation)
	for _, op := range templateOps {
		category := op.BOMCategory
		if category == "" {
			category = entities.CategoryAll
		}
		if _, ok := groups[category]; !ok {
			order = append(order, category)
		}
		groups[category] = append(groups[category], op)
	}

	preview := Preview{}
	for _, category := range order {
		ops := groups[category]
		expanded := ExpandForBOM(ops, bomItems, autoRepeat, autoQuantity)

		var qty entities.Quantity
		for _, op := range expanded {
			qty += op.EffectiveQuantity()
		}

		uniqueParts := 1
		if autoRepeat && category != entities.CategoryAll && len(partsByCategory[category]) > 0 {
			uniqueParts = len(partsByCategory[category])
		}

		preview.TotalOperations += len(expanded)
		preview.TotalQuantity += qty
		preview.Breakdown = append(preview.Breakdown, PreviewBreakdown{
			Category:       category,
			UniqueParts:    uniqueParts,
			BaseOperations: len(ops),
			Operations:     len(expanded),
			TotalQuantity:  qty,
		})
	}

	return preview
}
