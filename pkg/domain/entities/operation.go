package entities

import "fmt"

// Quantity represents an integer quantity value for discrete manufacturing units
type Quantity int64

// Category represents a BOM category. Categories are open-world: any string is
// a legal category, the constants below only receive special display treatment.
type Category string

// Built-in BOM categories
const (
	CategoryWire       Category = "Wire"
	CategoryConnector  Category = "Connector"
	CategoryTerminal   Category = "Terminal"
	CategoryProtection Category = "Protection"
	CategoryHardware   Category = "Hardware"
	CategoryOther      Category = "Other"
)

// CategoryAll is the sentinel BOM-category affinity meaning "every BOM line
// regardless of category". An empty category means "not BOM-driven".
const CategoryAll Category = "All"

// Canonical operation categories, used for grouping only
const (
	OpCategoryPreProduction = "Pre-Production"
	OpCategoryAssembly      = "Assembly"
	OpCategoryTesting       = "Testing"
	OpCategoryFinishing     = "Finishing"
)

// Operation represents one manufacturing step in a harness build
type Operation struct {
	ID               string
	Name             string
	Category         string
	SetupMinutes     float64
	LaborMinutes     float64
	IsManual         bool
	ComplexityFactor float64
	Quantity         Quantity // 0 = unset, treated as 1 by every formula
	BOMCategory      Category // empty = not BOM-driven
}

// NewOperation creates a validated Operation. The id is assigned by the
// boundary; template operations carry an empty id.
func NewOperation(
	id, name, category string,
	setupMinutes, laborMinutes float64,
	isManual bool,
	complexityFactor float64,
	quantity Quantity,
	bomCategory Category,
) (*Operation, error) {
	if name == "" {
		return nil, fmt.Errorf("operation name cannot be empty")
	}
	if setupMinutes < 0 {
		return nil, fmt.Errorf("setup minutes cannot be negative, got %g", setupMinutes)
	}
	if laborMinutes < 0 {
		return nil, fmt.Errorf("labor minutes cannot be negative, got %g", laborMinutes)
	}
	if complexityFactor <= 0 {
		return nil, fmt.Errorf("complexity factor must be positive, got %g", complexityFactor)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}

	return &Operation{
		ID:               id,
		Name:             name,
		Category:         category,
		SetupMinutes:     setupMinutes,
		LaborMinutes:     laborMinutes,
		IsManual:         isManual,
		ComplexityFactor: complexityFactor,
		Quantity:         quantity,
		BOMCategory:      bomCategory,
	}, nil
}

// EffectiveQuantity returns the operation quantity, defaulting to 1 when unset.
func (o Operation) EffectiveQuantity() Quantity {
	if o.Quantity < 1 {
		return 1
	}
	return o.Quantity
}
