package entities

import "fmt"

// WireCutItem represents one physical wire segment spec. A single row stands
// for Quantity identical wires of Length each.
type WireCutItem struct {
	ID        string
	WireID    string
	FromPoint string
	ToPoint   string
	Length    float64 // mm
	WireGauge string
	Color     string
	Quantity  Quantity
}

// NewWireCutItem creates a validated WireCutItem
func NewWireCutItem(
	id, wireID, fromPoint, toPoint string,
	length float64,
	wireGauge, color string,
	quantity Quantity,
) (*WireCutItem, error) {
	if wireID == "" {
		return nil, fmt.Errorf("wire id cannot be empty")
	}
	if length < 0 {
		return nil, fmt.Errorf("length cannot be negative, got %g", length)
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}

	return &WireCutItem{
		ID:        id,
		WireID:    wireID,
		FromPoint: fromPoint,
		ToPoint:   toPoint,
		Length:    length,
		WireGauge: wireGauge,
		Color:     color,
		Quantity:  quantity,
	}, nil
}

// TotalLength returns the length contribution of this row (length x quantity).
func (w WireCutItem) TotalLength() float64 {
	return w.Length * float64(w.Quantity)
}
