package models

import (
	"strings"
	"time"
)

// NoExpiration marks an inventory item without a known expiration date
const NoExpiration = "unspecified"

// InventoryItem represents a single food item in the pantry
type InventoryItem struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Expiration string `json:"expiration"` // YYYY-MM-DD, or NoExpiration
}

// HasExpiration reports whether the item carries a usable expiration date
func (i InventoryItem) HasExpiration() bool {
	return i.Expiration != "" && i.Expiration != NoExpiration
}

// ExpiresAt parses the item's expiration date. The second return value is
// false when the date is unspecified or malformed.
func (i InventoryItem) ExpiresAt() (time.Time, bool) {
	if !i.HasExpiration() {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", i.Expiration)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Inventory represents the pantry contents for one user.
// Items are keyed by the normalized (lowercased, trimmed) item name.
type Inventory struct {
	ID          string                   `json:"id"`
	Items       map[string]InventoryItem `json:"items"`
	LastUpdated time.Time                `json:"last_updated"`
}

// InventoryStats summarizes the state of a pantry
type InventoryStats struct {
	TotalItems    int `json:"total_items"`
	TotalQuantity int `json:"total_quantity"`
	Expired       int `json:"expired"`
	ExpiringSoon  int `json:"expiring_soon"`
}

// RecipeIngredient is one ingredient entry as returned by the recipe API
type RecipeIngredient struct {
	Name     string `json:"name"`
	Original string `json:"original,omitempty"`
}

// Text returns the most descriptive non-empty field of the ingredient
func (ri RecipeIngredient) Text() string {
	if ri.Name != "" {
		return ri.Name
	}
	return ri.Original
}

// RecipeCandidate is a raw recipe record fetched from the recipe API.
// Depending on the endpoint, ingredients arrive in used/missed sub-lists,
// in extendedIngredients, or as a plain string list.
type RecipeCandidate struct {
	ID                  int64              `json:"id"`
	Title               string             `json:"title"`
	Image               string             `json:"image,omitempty"`
	SourceURL           string             `json:"sourceUrl,omitempty"`
	ReadyInMinutes      int                `json:"readyInMinutes,omitempty"`
	Servings            int                `json:"servings,omitempty"`
	UsedIngredients     []RecipeIngredient `json:"usedIngredients,omitempty"`
	MissedIngredients   []RecipeIngredient `json:"missedIngredients,omitempty"`
	ExtendedIngredients []RecipeIngredient `json:"extendedIngredients,omitempty"`
	Ingredients         []string           `json:"ingredients,omitempty"`
}

// IngredientNames flattens the candidate's ingredients into a single
// deduplicated name list, whichever of the upstream shapes carried them.
func (rc RecipeCandidate) IngredientNames() []string {
	var names []string
	seen := make(map[string]bool)

	add := func(name string) {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		names = append(names, name)
	}

	for _, ing := range rc.UsedIngredients {
		add(ing.Text())
	}
	for _, ing := range rc.MissedIngredients {
		add(ing.Text())
	}
	for _, ing := range rc.ExtendedIngredients {
		add(ing.Text())
	}
	for _, ing := range rc.Ingredients {
		add(ing)
	}

	return names
}

// RecipeMatch is a recipe candidate annotated with optimization scores.
// The annotations are recomputed on every optimization call and are never
// persisted; any inventory change invalidates them.
type RecipeMatch struct {
	RecipeCandidate

	UsedFromInventory     []string `json:"usedFromInventory"`
	MissingFromInventory  []string `json:"missingFromInventory"`
	UsedIngredientCount   int      `json:"usedIngredientCount"`
	MissedIngredientCount int      `json:"missedIngredientCount"`
	UtilizationScore      int      `json:"utilizationScore"`
	UrgencyScore          int      `json:"urgencyScore"`
	UtilizationRatio      float64  `json:"utilizationRatio"`
	ComplexityBonus       int      `json:"complexityBonus"`
	TotalScore            int      `json:"totalScore"`
}
