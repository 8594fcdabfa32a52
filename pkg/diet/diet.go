// Package diet models dietary regimes and allergies, and filters
// ingredients and recipes against them. Preference state is owned by the
// caller: nothing in this package is a process-wide singleton.
package diet

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Baptiste68/recette/pkg/models"
)

// Nutrition holds optional nutritional bounds forwarded to recipe search
type Nutrition struct {
	MinCalories int `json:"min_calories,omitempty"`
	MaxCalories int `json:"max_calories,omitempty"`
	MinProtein  int `json:"min_protein,omitempty"`
	MaxFat      int `json:"max_fat,omitempty"`
	MaxCarbs    int `json:"max_carbs,omitempty"`
}

// Preferences is the active set of regimes and allergies for one user
type Preferences struct {
	Regimes   map[Regime]bool  `json:"regimes"`
	Allergies map[Allergy]bool `json:"allergies"`
	Nutrition Nutrition        `json:"nutrition"`
}

// NewPreferences returns an empty preference set
func NewPreferences() *Preferences {
	return &Preferences{
		Regimes:   make(map[Regime]bool),
		Allergies: make(map[Allergy]bool),
	}
}

// AddRegime adds a regime to the active set. It returns false and leaves
// the set unchanged when the regime conflicts with an already active one.
func (p *Preferences) AddRegime(regime Regime) bool {
	for _, conflict := range regimeConflicts[regime] {
		if p.Regimes[conflict] {
			return false
		}
	}
	p.Regimes[regime] = true
	return true
}

// RemoveRegime removes a regime from the active set
func (p *Preferences) RemoveRegime(regime Regime) {
	delete(p.Regimes, regime)
}

// AddAllergy adds an allergy and auto-adds its linked free-from regime.
// The linked regime is added directly, skipping the conflict check.
func (p *Preferences) AddAllergy(allergy Allergy) {
	p.Allergies[allergy] = true
	if linked, ok := allergyRegimeLinks[allergy]; ok {
		p.Regimes[linked] = true
	}
}

// RemoveAllergy removes an allergy. The auto-added regime stays active;
// the user removes it explicitly if they no longer want it.
func (p *Preferences) RemoveAllergy(allergy Allergy) {
	delete(p.Allergies, allergy)
}

// RegimeList returns the active regimes sorted for stable output
func (p *Preferences) RegimeList() []Regime {
	regimes := make([]Regime, 0, len(p.Regimes))
	for r := range p.Regimes {
		regimes = append(regimes, r)
	}
	sort.Slice(regimes, func(i, j int) bool { return regimes[i] < regimes[j] })
	return regimes
}

// AllergyList returns the active allergies sorted for stable output
func (p *Preferences) AllergyList() []Allergy {
	allergies := make([]Allergy, 0, len(p.Allergies))
	for a := range p.Allergies {
		allergies = append(allergies, a)
	}
	sort.Slice(allergies, func(i, j int) bool { return allergies[i] < allergies[j] })
	return allergies
}

// Reset clears all regimes, allergies and nutritional bounds
func (p *Preferences) Reset() {
	p.Regimes = make(map[Regime]bool)
	p.Allergies = make(map[Allergy]bool)
	p.Nutrition = Nutrition{}
}

// ParseRegime validates a regime identifier from user input
func ParseRegime(s string) (Regime, bool) {
	candidate := Regime(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range AllRegimes {
		if r == candidate {
			return r, true
		}
	}
	return "", false
}

// ParseAllergy validates an allergy identifier from user input
func ParseAllergy(s string) (Allergy, bool) {
	candidate := Allergy(strings.ToLower(strings.TrimSpace(s)))
	for _, a := range AllAllergies {
		if a == candidate {
			return a, true
		}
	}
	return "", false
}

// areSynonyms reports whether the two food labels belong to the same
// synonym group of the foodSynonyms table
func areSynonyms(a, b string) bool {
	for base, variants := range foodSynonyms {
		aHasBase := strings.Contains(a, base)
		bHasBase := strings.Contains(b, base)
		for _, v := range variants {
			if aHasBase && strings.Contains(b, v) {
				return true
			}
			if bHasBase && strings.Contains(a, v) {
				return true
			}
		}
	}
	return false
}

// keywordHits reports whether the ingredient name matches any keyword by
// containment in either direction or via the synonym table
func keywordHits(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) || strings.Contains(kw, name) || areSynonyms(name, kw) {
			return true
		}
	}
	return false
}

// IsCompatibleWithRegimes reports whether an ingredient is allowed under
// every regime in the active set. An empty set allows everything.
func IsCompatibleWithRegimes(ingredientName string, prefs *Preferences) bool {
	if prefs == nil || len(prefs.Regimes) == 0 {
		return true
	}
	name := strings.ToLower(strings.TrimSpace(ingredientName))
	for regime := range prefs.Regimes {
		if keywordHits(name, forbiddenFoods[regime]) {
			return false
		}
	}
	return true
}

// IsFreeOfAllergens reports whether an ingredient carries none of the
// active allergens. An empty set allows everything.
func IsFreeOfAllergens(ingredientName string, prefs *Preferences) bool {
	if prefs == nil || len(prefs.Allergies) == 0 {
		return true
	}
	name := strings.ToLower(strings.TrimSpace(ingredientName))
	for allergy := range prefs.Allergies {
		if keywordHits(name, allergenSources[allergy]) {
			return false
		}
	}
	return true
}

// FilterIngredients keeps the ingredient names that pass both the regime
// and the allergen predicates. Used to trim the query sent to recipe search.
func FilterIngredients(names []string, prefs *Preferences) []string {
	filtered := make([]string, 0, len(names))
	for _, name := range names {
		if IsCompatibleWithRegimes(name, prefs) && IsFreeOfAllergens(name, prefs) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// FilterRecipes keeps the candidates whose every ingredient passes both
// predicates. Used to post-filter ranked search results.
func FilterRecipes(candidates []models.RecipeCandidate, prefs *Preferences) []models.RecipeCandidate {
	if prefs == nil || (len(prefs.Regimes) == 0 && len(prefs.Allergies) == 0) {
		return candidates
	}

	filtered := make([]models.RecipeCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		ok := true
		for _, name := range candidate.IngredientNames() {
			if !IsCompatibleWithRegimes(name, prefs) || !IsFreeOfAllergens(name, prefs) {
				ok = false
				break
			}
		}
		if ok {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}

// FilterMatches keeps the ranked matches whose every ingredient passes
// both predicates, preserving the ranking order
func FilterMatches(matches []models.RecipeMatch, prefs *Preferences) []models.RecipeMatch {
	if prefs == nil || (len(prefs.Regimes) == 0 && len(prefs.Allergies) == 0) {
		return matches
	}

	filtered := make([]models.RecipeMatch, 0, len(matches))
	for _, m := range matches {
		ok := true
		for _, name := range m.IngredientNames() {
			if !IsCompatibleWithRegimes(name, prefs) || !IsFreeOfAllergens(name, prefs) {
				ok = false
				break
			}
		}
		if ok {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// SearchParams converts the preferences into recipe search query
// parameters: diet, intolerances and nutritional bounds
func SearchParams(prefs *Preferences) map[string]string {
	params := make(map[string]string)
	if prefs == nil {
		return params
	}

	if len(prefs.Regimes) > 0 {
		names := make([]string, 0, len(prefs.Regimes))
		for _, r := range prefs.RegimeList() {
			names = append(names, string(r))
		}
		params["diet"] = strings.Join(names, ",")
	}

	if len(prefs.Allergies) > 0 {
		names := make([]string, 0, len(prefs.Allergies))
		for _, a := range prefs.AllergyList() {
			names = append(names, string(a))
		}
		params["intolerances"] = strings.Join(names, ",")
	}

	addBound := func(key string, value int) {
		if value > 0 {
			params[key] = strconv.Itoa(value)
		}
	}
	addBound("minCalories", prefs.Nutrition.MinCalories)
	addBound("maxCalories", prefs.Nutrition.MaxCalories)
	addBound("minProtein", prefs.Nutrition.MinProtein)
	addBound("maxFat", prefs.Nutrition.MaxFat)
	addBound("maxCarbs", prefs.Nutrition.MaxCarbs)

	return params
}
