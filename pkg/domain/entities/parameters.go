package entities

// ProjectParameters is the scalar parameter bag, immutable during a
// calculation. Validation happens per-computation in the costing service so a
// bad efficiency rate still allows, say, a setup-time query to succeed.
type ProjectParameters struct {
	LaborRate             float64 // $/hour
	ShiftDuration         float64 // minutes
	ProductionVolume      int     // unit count
	EfficiencyRate        float64 // percent, 1-100
	QualityInspectionTime float64 // minutes, fixed per unit
	OvertimeMultiplier    float64 // >= 1
	SetupCostPerOperation float64 // $
	MaterialHandlingTime  float64 // minutes, fixed per unit
}

// DefaultProjectParameters returns the parameter set a fresh project starts
// with.
func DefaultProjectParameters() ProjectParameters {
	return ProjectParameters{
		LaborRate:             25,
		ShiftDuration:         480,
		ProductionVolume:      100,
		EfficiencyRate:        85,
		QualityInspectionTime: 10,
		OvertimeMultiplier:    1.5,
		SetupCostPerOperation: 5,
		MaterialHandlingTime:  15,
	}
}
