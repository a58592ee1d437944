package entities

import (
	"fmt"
	"time"
)

// HarnessTemplate is a saved, reusable snapshot of operations plus the BOM
// and harness metrics present when it was saved. Operations carry no ids;
// fresh ids are assigned on apply.
type HarnessTemplate struct {
	ID                      string
	Name                    string
	Description             string
	HarnessType             string
	Operations              []Operation
	BOMCategories           []Category
	Complexity              ComplexityLevel
	EstimatedWireCount      int
	EstimatedConnectorCount int
	CreatedAt               time.Time
	LastUsed                *time.Time
}

// NewHarnessTemplate creates a validated HarnessTemplate
func NewHarnessTemplate(
	id, name, description, harnessType string,
	operations []Operation,
	bomCategories []Category,
	complexity ComplexityLevel,
	estimatedWireCount, estimatedConnectorCount int,
	createdAt time.Time,
) (*HarnessTemplate, error) {
	if id == "" {
		return nil, fmt.Errorf("template id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("template name cannot be empty")
	}
	if estimatedWireCount < 0 {
		return nil, fmt.Errorf("estimated wire count cannot be negative, got %d", estimatedWireCount)
	}
	if estimatedConnectorCount < 0 {
		return nil, fmt.Errorf("estimated connector count cannot be negative, got %d", estimatedConnectorCount)
	}

	return &HarnessTemplate{
		ID:                      id,
		Name:                    name,
		Description:             description,
		HarnessType:             harnessType,
		Operations:              operations,
		BOMCategories:           bomCategories,
		Complexity:              complexity,
		EstimatedWireCount:      estimatedWireCount,
		EstimatedConnectorCount: estimatedConnectorCount,
		CreatedAt:               createdAt,
	}, nil
}

// MarkUsed records a template application time
func (t *HarnessTemplate) MarkUsed(at time.Time) {
	used := at
	t.LastUsed = &used
}
