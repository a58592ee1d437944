package services

import "github.com/harnessworks/harnesscost/pkg/domain/entities"

// ResolveQuantity computes an operation's effective quantity from the current
// BOM snapshot and the operation's declared BOM-category affinity.
//
// Operations without an affinity, or resolved against an empty BOM, keep their
// own quantity (defaulting to 1). The "All" sentinel sums every BOM line; a
// specific category sums its matching lines, falling back to the operation's
// own quantity when nothing matches.
//
// The function is pure: callers re-invoke it whenever the BOM snapshot
// changes, at operation-creation time, and at duplication time.
func ResolveQuantity(op entities.Operation, bomItems []entities.BOMItem) entities.Quantity {
	if op.BOMCategory == "" || len(bomItems) == 0 {
		return op.EffectiveQuantity()
	}

	if op.BOMCategory == entities.CategoryAll {
		var sum entities.Quantity
		for _, item := range bomItems {
			sum += item.Quantity
		}
		return sum
	}

	var sum entities.Quantity
	matched := false
	for _, item := range bomItems {
		if item.Category == op.BOMCategory {
			matched = true
			sum += item.Quantity
		}
	}
	if !matched {
		return op.EffectiveQuantity()
	}
	return sum
}
