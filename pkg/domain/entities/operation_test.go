package entities

import "testing"

func TestOperation_Validation(t *testing.T) {
	validOp, err := NewOperation("op-1", "Wire Cutting", OpCategoryPreProduction, 15, 2, true, 1.0, 0, CategoryWire)
	if err != nil {
		t.Fatalf("Expected valid operation creation to succeed: %v", err)
	}
	if validOp.Name != "Wire Cutting" {
		t.Errorf("Expected name Wire Cutting, got %s", validOp.Name)
	}
	if validOp.BOMCategory != CategoryWire {
		t.Errorf("Expected BOM category Wire, got %s", validOp.BOMCategory)
	}

	testCases := []struct {
		name             string
		opName           string
		setupMinutes     float64
		laborMinutes     float64
		complexityFactor float64
		quantity         Quantity
		expectError      string
	}{
		{"empty name", "", 10, 2, 1.0, 0, "operation name cannot be empty"},
		{"negative setup", "Op", -1, 2, 1.0, 0, "setup minutes cannot be negative, got -1"},
		{"negative labor", "Op", 10, -2, 1.0, 0, "labor minutes cannot be negative, got -2"},
		{"zero complexity factor", "Op", 10, 2, 0, 0, "complexity factor must be positive, got 0"},
		{"negative complexity factor", "Op", 10, 2, -0.5, 0, "complexity factor must be positive, got -0.5"},
		{"negative quantity", "Op", 10, 2, 1.0, -1, "quantity cannot be negative, got -1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOperation("op-1", tc.opName, OpCategoryAssembly,
				tc.setupMinutes, tc.laborMinutes, true, tc.complexityFactor, tc.quantity, "")
			if err == nil {
				t.Fatalf("Expected error %q, got nil", tc.expectError)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error %q, got %q", tc.expectError, err.Error())
			}
		})
	}
}

func TestOperation_EffectiveQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		quantity Quantity
		want     Quantity
	}{
		{"unset quantity defaults to 1", 0, 1},
		{"explicit quantity kept", 7, 7},
		{"quantity of 1 kept", 1, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			op := Operation{Name: "Op", Quantity: tc.quantity}
			if got := op.EffectiveQuantity(); got != tc.want {
				t.Errorf("Expected effective quantity %d, got %d", tc.want, got)
			}
		})
	}
}
