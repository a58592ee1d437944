package expansion

import (
	"fmt"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

// PartRef is one unique part number within a BOM category, deduplicated by
// part number with last-write-wins quantity and description.
type PartRef struct {
	PartNumber  string
	Quantity    entities.Quantity
	Description string
}

// ExpandForBOM turns a template's operation list into the operation list a
// template apply would place, replicating and/or rescaling each operation
// against the BOM snapshot.
//
// With autoRepeat, an operation tied to a specific BOM category is cloned
// once per unique part number in that category; clone names are suffixed with
// the part number when the category holds more than one part. With
// autoQuantity, clone quantities come from the BOM (per-part for repeated
// clones, per-line category sums otherwise). Returned operations carry no
// ids; the boundary assigns them on placement. Inputs are never mutated.
func ExpandForBOM(
	templateOps []entities.Operation,
	bomItems []entities.BOMItem,
	autoRepeat, autoQuantity bool,
) []entities.Operation {
	if (!autoRepeat && !autoQuantity) || len(bomItems) == 0 {
		expanded := make([]entities.Operation, 0, len(templateOps))
		for _, op := range templateOps {
			clone := op
			clone.Quantity = op.EffectiveQuantity()
			expanded = append(expanded, clone)
		}
		return expanded
	}

	partsByCategory := groupParts(bomItems)

	var expanded []entities.Operation
	for _, op := range templateOps {
		category := op.BOMCategory
		parts := partsByCategory[category]

		if autoRepeat && category != "" && category != entities.CategoryAll && len(parts) > 0 {
			for _, part := range parts {
				clone := op
				if len(parts) > 1 {
					clone.Name = fmt.Sprintf("%s (%s)", op.Name, part.PartNumber)
				}
				if autoQuantity {
					clone.Quantity = part.Quantity
				} else {
					clone.Quantity = 1
				}
				expanded = append(expanded, clone)
			}
			continue
		}

		clone := op
		clone.Quantity = op.EffectiveQuantity()
		if autoQuantity {
			switch {
			case category == entities.CategoryAll:
				clone.Quantity = lineSumAll(bomItems)
			case category != "" && len(parts) > 0:
				// Per-line sum over the category, distinct from the
				// per-unique-part quantities used for repeated clones.
				clone.Quantity = lineSum(bomItems, category)
			}
		}
		expanded = append(expanded, clone)
	}

	return expanded
}

// groupParts deduplicates BOM lines per category by part number. Duplicates
// overwrite in place so the first-seen position is kept.
func groupParts(bomItems []entities.BOMItem) map[entities.Category][]PartRef {
	parts := make(map[entities.Category][]PartRef)
	index := make(map[entities.Category]map[string]int)

	for _, item := range bomItems {
		ref := PartRef{
			PartNumber:  item.PartNumber,
			Quantity:    item.Quantity,
			Description: item.Description,
		}
		if index[item.Category] == nil {
			index[item.Category] = make(map[string]int)
		}
		if i, ok := index[item.Category][item.PartNumber]; ok {
			parts[item.Category][i] = ref
			continue
		}
		index[item.Category][item.PartNumber] = len(parts[item.Category])
		parts[item.Category] = append(parts[item.Category], ref)
	}

	return parts
}

func lineSum(bomItems []entities.BOMItem, category entities.Category) entities.Quantity {
	var sum entities.Quantity
	for _, item := range bomItems {
		if item.Category == category {
			sum += item.Quantity
		}
	}
	return sum
}

func lineSumAll(bomItems []entities.BOMItem) entities.Quantity {
	var sum entities.Quantity
	for _, item := range bomItems {
		sum += item.Quantity
	}
	return sum
}
