package dto

import (
	"github.com/shopspring/decimal"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

// TimeBreakdown holds the per-stage production time totals in minutes
type TimeBreakdown struct {
	SetupMinutes          float64 `json:"setupMinutes"`
	BaseLaborMinutes      float64 `json:"baseLaborMinutes"`
	EffectiveLaborMinutes float64 `json:"effectiveLaborMinutes"`
	InspectionMinutes     float64 `json:"inspectionMinutes"`
	HandlingMinutes       float64 `json:"handlingMinutes"`
	TotalMinutes          float64 `json:"totalMinutes"`
}

// CostBreakdown holds the derived currency totals
type CostBreakdown struct {
	LaborCost   decimal.Decimal `json:"laborCost"`
	SetupCost   decimal.Decimal `json:"setupCost"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	CostPerUnit decimal.Decimal `json:"costPerUnit"`
}

// ProductionMetrics holds throughput and context figures for the report
type ProductionMetrics struct {
	UnitsPerShift    int     `json:"unitsPerShift"`
	ProductionVolume int     `json:"productionVolume"`
	EfficiencyRate   float64 `json:"efficiencyRate"`
	OperationsCount  int     `json:"operationsCount"`
}

// WireAnalysis summarizes the wire-cut list
type WireAnalysis struct {
	TotalWires    int     `json:"totalWires"`
	TotalLength   float64 `json:"totalLength"`
	AverageLength float64 `json:"averageLength"`
	UniqueGauges  int     `json:"uniqueGauges"`
}

// BOMAnalysis summarizes the bill of materials
type BOMAnalysis struct {
	TotalItems  entities.Quantity                      `json:"totalItems"`
	UniqueParts int                                    `json:"uniqueParts"`
	Categories  map[entities.Category]entities.Quantity `json:"categories"`
}

// CostReport is the complete output of a cost estimation run
type CostReport struct {
	ComplexityLevel      entities.ComplexityLevel `json:"complexityLevel"`
	ComplexityMultiplier float64                  `json:"complexityMultiplier"`
	Workstation          entities.WorkstationType `json:"workstation"`
	Time                 TimeBreakdown            `json:"time"`
	Cost                 CostBreakdown            `json:"cost"`
	Metrics              ProductionMetrics        `json:"metrics"`
	Wire                 WireAnalysis             `json:"wire"`
	BOM                  BOMAnalysis              `json:"bom"`
	Warnings             []string                 `json:"warnings"`
}
