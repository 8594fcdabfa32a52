// Package optimizer ranks recipe candidates by how well they use up the
// pantry, favoring recipes that consume expired or soon-expiring items.
// It is pure computation: no I/O, no retained state between calls.
package optimizer

import (
	"math"
	"sort"
	"time"

	"github.com/Baptiste68/recette/pkg/expiry"
	"github.com/Baptiste68/recette/pkg/match"
	"github.com/Baptiste68/recette/pkg/models"
)

// Scoring weights. Fixed constants, kept stable so rankings are
// reproducible across versions.
const (
	expiredMatchBonus = 10
	soonMatchBonus    = 5

	complexityBonus4 = 20
	complexityBonus3 = 10
	complexityBonus2 = 5
)

// Analyze scores a single candidate against the inventory context.
// Recipes with no extractable ingredients score zero rather than erroring.
func Analyze(candidate models.RecipeCandidate, available []string, expired []string, soon []expiry.SoonItem) models.RecipeMatch {
	result := models.RecipeMatch{RecipeCandidate: candidate}

	soonNames := make([]string, 0, len(soon))
	for _, item := range soon {
		soonNames = append(soonNames, item.Name)
	}

	for _, ingredient := range candidate.IngredientNames() {
		if match.ContainsMatch(available, ingredient) {
			result.UsedFromInventory = append(result.UsedFromInventory, ingredient)
			if match.ContainsMatch(expired, ingredient) {
				result.UrgencyScore += expiredMatchBonus
			} else if match.ContainsMatch(soonNames, ingredient) {
				result.UrgencyScore += soonMatchBonus
			}
		} else {
			result.MissingFromInventory = append(result.MissingFromInventory, ingredient)
		}
	}

	result.UsedIngredientCount = len(result.UsedFromInventory)
	result.MissedIngredientCount = len(result.MissingFromInventory)
	result.UtilizationScore = result.UsedIngredientCount

	var ratio float64
	if len(available) > 0 {
		ratio = float64(result.UsedIngredientCount) / float64(len(available))
	}
	result.UtilizationRatio = math.Round(ratio*100) / 100

	switch {
	case result.UtilizationScore >= 4:
		result.ComplexityBonus = complexityBonus4
	case result.UtilizationScore >= 3:
		result.ComplexityBonus = complexityBonus3
	case result.UtilizationScore >= 2:
		result.ComplexityBonus = complexityBonus2
	}

	// the reported ratio is rounded for display, the total uses the raw one
	total := float64(result.UtilizationScore*10+result.UrgencyScore+result.ComplexityBonus) + ratio*5
	result.TotalScore = int(math.Round(total))

	return result
}

// Optimize analyzes, filters and ranks the candidates against the
// inventory. The filter is adaptive: it prefers recipes using at least two
// inventory items, relaxes to one when fewer than three survive, and keeps
// everything when nothing matches at all. The sort is stable, so equal
// scores preserve the upstream candidate order.
func Optimize(inv *models.Inventory, candidates []models.RecipeCandidate, now time.Time) []models.RecipeMatch {
	if len(candidates) == 0 {
		return nil
	}

	var items map[string]models.InventoryItem
	if inv != nil {
		items = inv.Items
	}

	available := make([]string, 0, len(items))
	for _, item := range items {
		available = append(available, item.Name)
	}
	sort.Strings(available)

	status := expiry.Classify(items, now, expiry.UrgencyWindow)

	matches := make([]models.RecipeMatch, 0, len(candidates))
	for _, candidate := range candidates {
		matches = append(matches, Analyze(candidate, available, status.Expired, status.SoonExpiring))
	}

	filtered := filterByUtilization(matches, 2)
	if len(filtered) < 3 {
		filtered = filterByUtilization(matches, 1)
	}
	if len(filtered) == 0 {
		filtered = matches
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.UtilizationScore != b.UtilizationScore {
			return a.UtilizationScore > b.UtilizationScore
		}
		if a.UrgencyScore != b.UrgencyScore {
			return a.UrgencyScore > b.UrgencyScore
		}
		if a.UtilizationRatio != b.UtilizationRatio {
			return a.UtilizationRatio > b.UtilizationRatio
		}
		return a.MissedIngredientCount < b.MissedIngredientCount
	})

	return filtered
}

func filterByUtilization(matches []models.RecipeMatch, minScore int) []models.RecipeMatch {
	filtered := make([]models.RecipeMatch, 0, len(matches))
	for _, m := range matches {
		if m.UtilizationScore >= minScore {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
