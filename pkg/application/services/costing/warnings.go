package costing

import "github.com/harnessworks/harnesscost/pkg/domain/entities"

// Advisory warning tags. These are data-consistency checks over
// already-derived values; they are surfaced to the caller, never thrown.
const (
	WarningNoOperations   = "no-operations"
	WarningTimeOverShift  = "production-time-exceeds-shift"
	WarningHighComplexity = "high-complexity-harness"
	WarningLowEfficiency  = "low-efficiency-rate"
)

// Water marks for the advisory checks
const (
	highComplexityMark = 1.8
	lowEfficiencyMark  = 70.0
)

// Warnings evaluates the advisory checks over derived values.
func Warnings(
	operationsCount int,
	totalProductionTime float64,
	complexityMultiplier float64,
	params entities.ProjectParameters,
) []string {
	var warnings []string
	if operationsCount == 0 {
		warnings = append(warnings, WarningNoOperations)
	}
	if totalProductionTime > params.ShiftDuration {
		warnings = append(warnings, WarningTimeOverShift)
	}
	if complexityMultiplier > highComplexityMark {
		warnings = append(warnings, WarningHighComplexity)
	}
	if params.EfficiencyRate < lowEfficiencyMark {
		warnings = append(warnings, WarningLowEfficiency)
	}
	return warnings
}
