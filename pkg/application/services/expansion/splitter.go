package expansion

import (
	"fmt"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
	"github.com/harnessworks/harnesscost/pkg/domain/services"
)

// RecalculateQuantities re-resolves every operation's quantity against the
// current BOM snapshot, keeping the operation list shape intact.
func RecalculateQuantities(ops []entities.Operation, bomItems []entities.BOMItem) []entities.Operation {
	result := make([]entities.Operation, 0, len(ops))
	for _, op := range ops {
		clone := op
		clone.Quantity = services.ResolveQuantity(op, bomItems)
		result = append(result, clone)
	}
	return result
}

// SplitByBOM replaces already-placed operations with per-BOM-line clones.
// Unlike template expansion this is a one-time explicit transform: an
// operation whose category resolves to zero BOM lines is left unchanged, one
// matching line just overwrites the quantity, and multiple matching lines
// replace the operation with one clone per line, id and name suffixed.
func SplitByBOM(ops []entities.Operation, bomItems []entities.BOMItem) []entities.Operation {
	result := make([]entities.Operation, 0, len(ops))

	for _, op := range ops {
		if op.BOMCategory == "" || len(bomItems) == 0 {
			result = append(result, op)
			continue
		}

		var relevant []entities.BOMItem
		if op.BOMCategory == entities.CategoryAll {
			relevant = bomItems
		} else {
			for _, item := range bomItems {
				if item.Category == op.BOMCategory {
					relevant = append(relevant, item)
				}
			}
		}

		switch len(relevant) {
		case 0:
			result = append(result, op)
		case 1:
			clone := op
			clone.Quantity = relevant[0].Quantity
			result = append(result, clone)
		default:
			for i, item := range relevant {
				clone := op
				clone.ID = fmt.Sprintf("%s-split-%d", op.ID, i)
				clone.Name = fmt.Sprintf("%s (%s)", op.Name, item.PartNumber)
				clone.Quantity = item.Quantity
				result = append(result, clone)
			}
		}
	}

	return result
}
