package recipe

import (
	"sort"

	"github.com/dmorales/recetario/internal/domain"
)

// ProximityMatch is one ranked result of a proximity search. The field set
// and JSON names are part of the contract toward clients; handlers return
// this shape verbatim.
type ProximityMatch struct {
	Recipe               domain.Recipe `json:"recipe"`
	Matched              int           `json:"matched"`
	Total                int           `json:"total"`
	Missing              int           `json:"missing"`
	MatchedIngredientIDs []string      `json:"matchedIngredientIds"`
	MissingIngredientIDs []string      `json:"missingIngredientIds"`
	Percentage           float64       `json:"percentage"`
}

// FindExact returns the recipes whose entire ingredient set is covered by
// ids. Extra ids are fine; a recipe needing anything outside ids is excluded.
// A recipe with no ingredients is vacuously makeable and always included.
func FindExact(catalog []domain.Recipe, ids []string) []domain.Recipe {
	available := make(map[string]bool, len(ids))
	for _, id := range ids {
		available[id] = true
	}

	matches := make([]domain.Recipe, 0)
	for _, r := range catalog {
		required := r.IngredientIDSet()
		covered := true
		for _, id := range required {
			if !available[id] {
				covered = false
				break
			}
		}
		if covered {
			matches = append(matches, r)
		}
	}
	return matches
}

// FindByProximity ranks recipes by how much of their ingredient set is
// covered by ids. Recipes with no overlap are discarded. Results sort by
// total ascending, then percentage descending, then missing ascending;
// the sort is stable beyond that.
func FindByProximity(catalog []domain.Recipe, ids []string) []ProximityMatch {
	available := make(map[string]bool, len(ids))
	for _, id := range ids {
		available[id] = true
	}

	matches := make([]ProximityMatch, 0)
	for _, r := range catalog {
		required := r.IngredientIDSet()
		total := len(required)

		matchedIDs := make([]string, 0, total)
		missingIDs := make([]string, 0, total)
		for _, id := range required {
			if available[id] {
				matchedIDs = append(matchedIDs, id)
			} else {
				missingIDs = append(missingIDs, id)
			}
		}

		matched := len(matchedIDs)
		if matched == 0 {
			continue
		}

		percentage := 0.0
		if total > 0 {
			percentage = float64(matched) / float64(total)
		}

		matches = append(matches, ProximityMatch{
			Recipe:               r,
			Matched:              matched,
			Total:                total,
			Missing:              total - matched,
			MatchedIngredientIDs: matchedIDs,
			MissingIngredientIDs: missingIDs,
			Percentage:           percentage,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Total != matches[j].Total {
			return matches[i].Total < matches[j].Total
		}
		if matches[i].Percentage != matches[j].Percentage {
			return matches[i].Percentage > matches[j].Percentage
		}
		return matches[i].Missing < matches[j].Missing
	})

	return matches
}
