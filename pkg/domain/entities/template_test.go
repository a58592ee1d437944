package entities

import (
	"testing"
	"time"
)

func TestHarnessTemplate_Validation(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ops := []Operation{{Name: "Wire Cutting", ComplexityFactor: 1.0}}

	validTemplate, err := NewHarnessTemplate("template-1", "Engine Harness", "", "Engine",
		ops, []Category{CategoryWire}, ComplexityMedium, 60, 12, createdAt)
	if err != nil {
		t.Fatalf("Expected valid template creation to succeed: %v", err)
	}
	if validTemplate.Complexity != ComplexityMedium {
		t.Errorf("Expected complexity Medium, got %s", validTemplate.Complexity)
	}
	if validTemplate.LastUsed != nil {
		t.Error("Expected fresh template to have no last-used timestamp")
	}

	testCases := []struct {
		name           string
		id             string
		templateName   string
		wireCount      int
		connectorCount int
		expectError    string
	}{
		{"empty id", "", "Name", 0, 0, "template id cannot be empty"},
		{"empty name", "template-1", "", 0, 0, "template name cannot be empty"},
		{"negative wire count", "template-1", "Name", -1, 0, "estimated wire count cannot be negative, got -1"},
		{"negative connector count", "template-1", "Name", 0, -2, "estimated connector count cannot be negative, got -2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewHarnessTemplate(tc.id, tc.templateName, "", "",
				ops, nil, ComplexitySimple, tc.wireCount, tc.connectorCount, createdAt)
			if err == nil {
				t.Fatalf("Expected error %q, got nil", tc.expectError)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error %q, got %q", tc.expectError, err.Error())
			}
		})
	}
}

func TestHarnessTemplate_MarkUsed(t *testing.T) {
	template := HarnessTemplate{ID: "template-1", Name: "Test"}
	used := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

	template.MarkUsed(used)

	if template.LastUsed == nil {
		t.Fatal("Expected last-used timestamp to be set")
	}
	if !template.LastUsed.Equal(used) {
		t.Errorf("Expected last-used %v, got %v", used, template.LastUsed)
	}
}
