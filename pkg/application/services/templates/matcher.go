package templates

import (
	"math"
	"sort"

	"github.com/harnessworks/harnesscost/pkg/domain/entities"
)

// Tolerance bands for template matching
const (
	countTolerance      = 0.2 // +-20% on wire and connector counts
	categoryOverlapRate = 0.7
	maxSuggestions      = 3
)

// MatchTemplates ranks saved templates against the current BOM categories and
// harness metrics, for suggestion purposes only. A template matches when its
// complexity tier equals the current one exactly, its estimated wire and
// connector counts are within +-20% of the current counts, and at least
// max(1, 70%) of its saved BOM categories are present in the current BOM.
// Recently used templates sort first, then recently created; the result is
// truncated to the top 3.
func MatchTemplates(
	candidates []*entities.HarnessTemplate,
	currentCategories []entities.Category,
	specs entities.HarnessSpecs,
) []*entities.HarnessTemplate {
	current := make(map[entities.Category]struct{}, len(currentCategories))
	for _, c := range currentCategories {
		current[c] = struct{}{}
	}

	var matched []*entities.HarnessTemplate
	for _, t := range candidates {
		if t.Complexity != specs.ComplexityLevel {
			continue
		}
		if !withinTolerance(t.EstimatedWireCount, specs.TotalWires) {
			continue
		}
		if !withinTolerance(t.EstimatedConnectorCount, specs.TotalConnectors) {
			continue
		}

		overlap := 0
		for _, c := range t.BOMCategories {
			if _, ok := current[c]; ok {
				overlap++
			}
		}
		required := math.Max(1, float64(len(t.BOMCategories))*categoryOverlapRate)
		if float64(overlap) < required {
			continue
		}

		matched = append(matched, t)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch {
		case a.LastUsed != nil && b.LastUsed != nil:
			return a.LastUsed.After(*b.LastUsed)
		case a.LastUsed != nil:
			return true
		case b.LastUsed != nil:
			return false
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})

	if len(matched) > maxSuggestions {
		matched = matched[:maxSuggestions]
	}
	return matched
}

func withinTolerance(estimated, actual int) bool {
	return math.Abs(float64(estimated-actual)) <= float64(estimated)*countTolerance
}
