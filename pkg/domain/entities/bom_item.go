package entities

import "fmt"

// BOMItem represents a single bill-of-materials line. PartNumber is the
// de-duplication key when counting unique parts within a category.
type BOMItem struct {
	ID          string
	PartNumber  string
	Description string
	Quantity    Quantity
	Category    Category
	Length      float64 // mm, only meaningful for Wire-category items
	WireGauge   string  // only meaningful for Wire-category items
}

// NewBOMItem creates a validated BOMItem
func NewBOMItem(
	id, partNumber, description string,
	quantity Quantity,
	category Category,
	length float64,
	wireGauge string,
) (*BOMItem, error) {
	if partNumber == "" {
		return nil, fmt.Errorf("part number cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if length < 0 {
		return nil, fmt.Errorf("length cannot be negative, got %g", length)
	}

	return &BOMItem{
		ID:          id,
		PartNumber:  partNumber,
		Description: description,
		Quantity:    quantity,
		Category:    category,
		Length:      length,
		WireGauge:   wireGauge,
	}, nil
}
