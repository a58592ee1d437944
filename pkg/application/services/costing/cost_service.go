package costing

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/harnessworks/harnesscost/pkg/application/dto"
	"github.com/harnessworks/harnesscost/pkg/domain/entities"
	"github.com/harnessworks/harnesscost/pkg/domain/services"
)

// Validation errors. Each violated precondition fails with a distinct error
// so callers can decide whether to block display or show a placeholder; no
// formula ever emits NaN or Infinity silently.
var (
	ErrInvalidEfficiencyRate   = errors.New("efficiency rate must be positive")
	ErrInvalidProductionVolume = errors.New("production volume must be positive")
	ErrInvalidShiftDuration    = errors.New("shift duration must be positive")
	ErrInvalidProductionTime   = errors.New("total production time must be positive")
	ErrNonFiniteParameter      = errors.New("parameter must be a finite number")
)

const minutesPerHour = 60

// Service derives time breakdowns, costs, and throughput from a snapshot of
// operations, harness specs, workstation config, and project parameters.
// Every method is deterministic and side-effect-free, and each is
// independently callable so a caller can request just the time breakdown
// without running the cost formulas.
type Service struct{}

// NewService creates a costing service
func NewService() *Service {
	return &Service{}
}

// SetupTime returns total setup minutes across all operations.
func (s *Service) SetupTime(ops []entities.Operation) float64 {
	total := 0.0
	for _, op := range ops {
		total += op.SetupMinutes * float64(op.EffectiveQuantity())
	}
	return total
}

// BaseLaborTime returns total labor minutes scaled by each operation's
// complexity factor, the harness complexity multiplier, and the workstation
// efficiency multiplier. The two global multipliers apply once to the grand
// total; multiplication is associative so the analytic result matches
// per-operation application.
func (s *Service) BaseLaborTime(
	ops []entities.Operation,
	specs entities.HarnessSpecs,
	workstation entities.WorkstationConfig,
) float64 {
	sum := 0.0
	for _, op := range ops {
		sum += op.LaborMinutes * float64(op.EffectiveQuantity()) * op.ComplexityFactor
	}
	return sum * services.ComplexityMultiplier(specs) * workstation.EfficiencyMultiplier
}

// EffectiveLaborTime scales base labor time by the worker efficiency rate.
func (s *Service) EffectiveLaborTime(
	ops []entities.Operation,
	specs entities.HarnessSpecs,
	workstation entities.WorkstationConfig,
	params entities.ProjectParameters,
) (float64, error) {
	if err := requireFinite("efficiency rate", params.EfficiencyRate); err != nil {
		return 0, err
	}
	if params.EfficiencyRate <= 0 {
		return 0, fmt.Errorf("%w, got %g", ErrInvalidEfficiencyRate, params.EfficiencyRate)
	}
	return s.BaseLaborTime(ops, specs, workstation) * 100 / params.EfficiencyRate, nil
}

// TotalProductionTime returns setup plus effective labor plus the fixed
// inspection and handling minutes. The fixed minutes are added once to the
// aggregate total, not per unit of production volume.
func (s *Service) TotalProductionTime(
	ops []entities.Operation,
	specs entities.HarnessSpecs,
	workstation entities.WorkstationConfig,
	params entities.ProjectParameters,
) (float64, error) {
	if err := requireFinite("quality inspection time", params.QualityInspectionTime); err != nil {
		return 0, err
	}
	if err := requireFinite("material handling time", params.MaterialHandlingTime); err != nil {
		return 0, err
	}
	effective, err := s.EffectiveLaborTime(ops, specs, workstation, params)
	if err != nil {
		return 0, err
	}
	return s.SetupTime(ops) + effective + params.QualityInspectionTime + params.MaterialHandlingTime, nil
}

// LaborCost converts total production time to hours, splits the hours at the
// shift boundary into regular and overtime, prices both, and scales by
// production volume.
func (s *Service) LaborCost(
	ops []entities.Operation,
	specs entities.HarnessSpecs,
	workstation entities.WorkstationConfig,
	params entities.ProjectParameters,
) (decimal.Decimal, error) {
	if err := requireFinite("labor rate", params.LaborRate); err != nil {
		return decimal.Zero, err
	}
	if err := requireFinite("overtime multiplier", params.OvertimeMultiplier); err != nil {
		return decimal.Zero, err
	}
	if err := requireFinite("shift duration", params.ShiftDuration); err != nil {
		return decimal.Zero, err
	}
	if params.ShiftDuration <= 0 {
		return decimal.Zero, fmt.Errorf("%w, got %g", ErrInvalidShiftDuration, params.ShiftDuration)
	}

	totalMinutes, err := s.TotalProductionTime(ops, specs, workstation, params)
	if err != nil {
		return decimal.Zero, err
	}

	totalHours := decimal.NewFromFloat(totalMinutes).Div(decimal.NewFromInt(minutesPerHour))
	shiftHours := decimal.NewFromFloat(params.ShiftDuration).Div(decimal.NewFromInt(minutesPerHour))

	regularHours := decimal.Min(totalHours, shiftHours)
	overtimeHours := decimal.Max(totalHours.Sub(shiftHours), decimal.Zero)

	rate := decimal.NewFromFloat(params.LaborRate)
	regularCost := regularHours.Mul(rate)
	overtimeCost := overtimeHours.Mul(rate).Mul(decimal.NewFromFloat(params.OvertimeMultiplier))

	volume := decimal.NewFromInt(int64(params.ProductionVolume))
	return regularCost.Add(overtimeCost).Mul(volume), nil
}

// SetupCost prices one setup charge per operation across the production
// volume.
func (s *Service) SetupCost(
	ops []entities.Operation,
	params entities.ProjectParameters,
) (decimal.Decimal, error) {
	if err := requireFinite("setup cost per operation", params.SetupCostPerOperation); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(int64(len(ops))).
		Mul(decimal.NewFromFloat(params.SetupCostPerOperation)).
		Mul(decimal.NewFromInt(int64(params.ProductionVolume))), nil
}

// TotalCost is labor cost plus setup cost.
func (s *Service) TotalCost(
	ops []entities.Operation,
	specs entities.HarnessSpecs,
	workstation entities.WorkstationConfig,
	params entities.ProjectParameters,
) (decimal.Decimal, error) {
	labor, err := s.LaborCost(ops, specs, workstation, params)
	if err != nil {
		return decimal.Zero, err
	}
	setup, err := s.SetupCost(ops, params)
	if err != nil {
		return decimal.Zero, err
	}
	return labor.Add(setup), nil
}

// CostPerUnit divides total cost by production volume.
func (s *Service) CostPerUnit(
	ops []entities.Operation,
	specs entities.HarnessSpecs,
	workstation entities.WorkstationConfig,
	params entities.ProjectParameters,
) (decimal.Decimal, error) {
	if params.ProductionVolume <= 0 {
		return decimal.Zero, fmt.Errorf("%w, got %d", ErrInvalidProductionVolume, params.ProductionVolume)
	}
	total, err := s.TotalCost(ops, specs, workstation, params)
	if err != nil {
		return decimal.Zero, err
	}
	return total.Div(decimal.NewFromInt(int64(params.ProductionVolume))), nil
}

// UnitsPerShift returns how many units fit into one shift.
func (s *Service) UnitsPerShift(
	ops []entities.Operation,
	specs entities.HarnessSpecs,
	workstation entities.WorkstationConfig,
	params entities.ProjectParameters,
) (int, error) {
	if err := requireFinite("shift duration", params.ShiftDuration); err != nil {
		return 0, err
	}
	if params.ShiftDuration <= 0 {
		return 0, fmt.Errorf("%w, got %g", ErrInvalidShiftDuration, params.ShiftDuration)
	}
	total, err := s.TotalProductionTime(ops, specs, workstation, params)
	if err != nil {
		return 0, err
	}
	if total <= 0 {
		return 0, fmt.Errorf("%w, got %g", ErrInvalidProductionTime, total)
	}
	return int(math.Floor(params.ShiftDuration / total)), nil
}

// Report runs the full estimation and assembles the cost report. A validation
// failure aborts the report without touching any stored state; all inputs are
// read-only snapshots.
func (s *Service) Report(
	ops []entities.Operation,
	specs entities.HarnessSpecs,
	workstation entities.WorkstationConfig,
	params entities.ProjectParameters,
	bomItems []entities.BOMItem,
	wireCutItems []entities.WireCutItem,
) (*dto.CostReport, error) {
	setupTime := s.SetupTime(ops)
	baseLabor := s.BaseLaborTime(ops, specs, workstation)

	effectiveLabor, err := s.EffectiveLaborTime(ops, specs, workstation, params)
	if err != nil {
		return nil, fmt.Errorf("effective labor time: %w", err)
	}
	totalTime, err := s.TotalProductionTime(ops, specs, workstation, params)
	if err != nil {
		return nil, fmt.Errorf("total production time: %w", err)
	}
	laborCost, err := s.LaborCost(ops, specs, workstation, params)
	if err != nil {
		return nil, fmt.Errorf("labor cost: %w", err)
	}
	setupCost, err := s.SetupCost(ops, params)
	if err != nil {
		return nil, fmt.Errorf("setup cost: %w", err)
	}
	costPerUnit, err := s.CostPerUnit(ops, specs, workstation, params)
	if err != nil {
		return nil, fmt.Errorf("cost per unit: %w", err)
	}
	unitsPerShift, err := s.UnitsPerShift(ops, specs, workstation, params)
	if err != nil {
		return nil, fmt.Errorf("units per shift: %w", err)
	}

	multiplier := services.ComplexityMultiplier(specs)

	return &dto.CostReport{
		ComplexityLevel:      specs.ComplexityLevel,
		ComplexityMultiplier: multiplier,
		Workstation:          workstation.Type,
		Time: dto.TimeBreakdown{
			SetupMinutes:          setupTime,
			BaseLaborMinutes:      baseLabor,
			EffectiveLaborMinutes: effectiveLabor,
			InspectionMinutes:     params.QualityInspectionTime,
			HandlingMinutes:       params.MaterialHandlingTime,
			TotalMinutes:          totalTime,
		},
		Cost: dto.CostBreakdown{
			LaborCost:   laborCost,
			SetupCost:   setupCost,
			TotalCost:   laborCost.Add(setupCost),
			CostPerUnit: costPerUnit,
		},
		Metrics: dto.ProductionMetrics{
			UnitsPerShift:    unitsPerShift,
			ProductionVolume: params.ProductionVolume,
			EfficiencyRate:   params.EfficiencyRate,
			OperationsCount:  len(ops),
		},
		Wire:     AnalyzeWires(wireCutItems),
		BOM:      AnalyzeBOM(bomItems),
		Warnings: Warnings(len(ops), totalTime, multiplier, params),
	}, nil
}

// AnalyzeWires summarizes the wire-cut list for the report.
func AnalyzeWires(wireCutItems []entities.WireCutItem) dto.WireAnalysis {
	totalWires := 0
	totalLength := 0.0
	gauges := make(map[string]struct{})
	for _, item := range wireCutItems {
		totalWires += int(item.Quantity)
		totalLength += item.TotalLength()
		gauges[item.WireGauge] = struct{}{}
	}

	average := 0.0
	if totalWires > 0 {
		average = totalLength / float64(totalWires)
	}

	return dto.WireAnalysis{
		TotalWires:    totalWires,
		TotalLength:   totalLength,
		AverageLength: average,
		UniqueGauges:  len(gauges),
	}
}

// AnalyzeBOM summarizes the bill of materials for the report.
func AnalyzeBOM(bomItems []entities.BOMItem) dto.BOMAnalysis {
	var totalItems entities.Quantity
	categories := make(map[entities.Category]entities.Quantity)
	for _, item := range bomItems {
		totalItems += item.Quantity
		categories[item.Category] += item.Quantity
	}
	return dto.BOMAnalysis{
		TotalItems:  totalItems,
		UniqueParts: len(bomItems),
		Categories:  categories,
	}
}

func requireFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s", ErrNonFiniteParameter, name)
	}
	return nil
}
