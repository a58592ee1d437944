package entities

// ComplexityLevel is the coarse classification of harness difficulty
type ComplexityLevel string

const (
	ComplexitySimple      ComplexityLevel = "Simple"
	ComplexityMedium      ComplexityLevel = "Medium"
	ComplexityComplex     ComplexityLevel = "Complex"
	ComplexityVeryComplex ComplexityLevel = "Very Complex"
)

// HarnessSpecs holds aggregate harness metrics. Either user-entered directly
// or auto-derived from the BOM and wire-cut snapshots.
type HarnessSpecs struct {
	TotalWires      int
	TotalConnectors int
	TotalBranches   int
	TotalSplices    int
	HarnessLength   float64 // mm
	ComplexityLevel ComplexityLevel
}

// WorkstationType describes the tooling automation level of a workstation
type WorkstationType string

const (
	WorkstationManual    WorkstationType = "Manual"
	WorkstationSemiAuto  WorkstationType = "Semi-Auto"
	WorkstationAutomated WorkstationType = "Automated"
)

// WorkstationConfig holds the workstation type and its efficiency multiplier.
// The multiplier is stored independently of the type so custom values are
// possible.
type WorkstationConfig struct {
	Type                 WorkstationType
	EfficiencyMultiplier float64
}

// DefaultEfficiencyMultiplier returns the canonical multiplier for a
// workstation type (1.0 unknown types).
func DefaultEfficiencyMultiplier(t WorkstationType) float64 {
	switch t {
	case WorkstationSemiAuto:
		return 0.7
	case WorkstationAutomated:
		return 0.4
	default:
		return 1.0
	}
}
