package services

import "github.com/harnessworks/harnesscost/pkg/domain/entities"

// Per-factor saturation caps. Each factor scales labor independently; the
// product carries no overall ceiling, so a Very Complex harness maxes out at
// 2.0 x 1.5 x 1.3 x 1.4 x 1.6.
const (
	wireFactorCap      = 1.5
	connectorFactorCap = 1.3
	branchFactorCap    = 1.4
	spliceFactorCap    = 1.6
)

// BaseMultiplier returns the labor multiplier for a complexity tier. Unknown
// tiers fall back to the Simple base.
func BaseMultiplier(level entities.ComplexityLevel) float64 {
	switch level {
	case entities.ComplexityMedium:
		return 1.2
	case entities.ComplexityComplex:
		return 1.5
	case entities.ComplexityVeryComplex:
		return 2.0
	default:
		return 1.0
	}
}

// ComplexityMultiplier combines the complexity tier with four independent
// saturating scale factors into a single labor-time multiplier.
func ComplexityMultiplier(specs entities.HarnessSpecs) float64 {
	wireFactor := saturate(1+(float64(specs.TotalWires)/100)*0.1, wireFactorCap)
	connectorFactor := saturate(1+(float64(specs.TotalConnectors)/20)*0.1, connectorFactorCap)
	branchFactor := saturate(1+(float64(specs.TotalBranches)/10)*0.15, branchFactorCap)
	spliceFactor := saturate(1+(float64(specs.TotalSplices)/5)*0.2, spliceFactorCap)

	return BaseMultiplier(specs.ComplexityLevel) * wireFactor * connectorFactor * branchFactor * spliceFactor
}

func saturate(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
