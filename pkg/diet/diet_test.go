package diet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Baptiste68/recette/pkg/models"
)

func TestAddRegimeConflict(t *testing.T) {
	prefs := NewPreferences()

	require.True(t, prefs.AddRegime(RegimePescetarian))

	// vegan conflicts with pescetarian, state must be unchanged
	assert.False(t, prefs.AddRegime(RegimeVegan))
	assert.False(t, prefs.Regimes[RegimeVegan])
	assert.True(t, prefs.Regimes[RegimePescetarian])
}

func TestAddRegimeCompatible(t *testing.T) {
	prefs := NewPreferences()

	assert.True(t, prefs.AddRegime(RegimeVegetarian))
	assert.True(t, prefs.AddRegime(RegimeGlutenFree))
	assert.Len(t, prefs.Regimes, 2)
}

func TestAddRegimeKetogenicMediterranean(t *testing.T) {
	prefs := NewPreferences()

	require.True(t, prefs.AddRegime(RegimeMediterranean))
	assert.False(t, prefs.AddRegime(RegimeKetogenic))
}

func TestAddAllergyAutoLinksRegime(t *testing.T) {
	prefs := NewPreferences()

	prefs.AddAllergy(AllergyDairy)

	assert.True(t, prefs.Allergies[AllergyDairy])
	assert.True(t, prefs.Regimes[RegimeDairyFree])
}

func TestAddAllergyPeanutLinksTreeNutFree(t *testing.T) {
	prefs := NewPreferences()

	prefs.AddAllergy(AllergyPeanut)

	assert.True(t, prefs.Regimes[RegimeTreeNutFree])
}

func TestIsCompatibleWithRegimes(t *testing.T) {
	prefs := NewPreferences()
	require.True(t, prefs.AddRegime(RegimeVegetarian))

	assert.False(t, IsCompatibleWithRegimes("Poulet", prefs))
	assert.False(t, IsCompatibleWithRegimes("saumon fumé", prefs))
	assert.True(t, IsCompatibleWithRegimes("Tomate", prefs))
	assert.True(t, IsCompatibleWithRegimes("fromage", prefs))
}

func TestIsCompatibleWithRegimesEmptySet(t *testing.T) {
	assert.True(t, IsCompatibleWithRegimes("poulet", NewPreferences()))
	assert.True(t, IsCompatibleWithRegimes("poulet", nil))
}

func TestIsFreeOfAllergens(t *testing.T) {
	prefs := NewPreferences()
	prefs.AddAllergy(AllergyDairy)

	assert.False(t, IsFreeOfAllergens("lait entier", prefs))
	assert.False(t, IsFreeOfAllergens("fromage", prefs))
	assert.True(t, IsFreeOfAllergens("tomate", prefs))
}

func TestSynonymCatchesEnglishLabels(t *testing.T) {
	prefs := NewPreferences()
	require.True(t, prefs.AddRegime(RegimeVegetarian))

	// "chicken" is a synonym of the forbidden "poulet"
	assert.False(t, IsCompatibleWithRegimes("chicken breast", prefs))
}

func TestFilterIngredients(t *testing.T) {
	prefs := NewPreferences()
	require.True(t, prefs.AddRegime(RegimeVegetarian))
	prefs.AddAllergy(AllergyDairy)

	names := []string{"Poulet", "Tomate", "Lait", "Riz"}
	filtered := FilterIngredients(names, prefs)

	assert.Equal(t, []string{"Tomate", "Riz"}, filtered)
}

func TestFilterIngredientsIdempotent(t *testing.T) {
	prefs := NewPreferences()
	require.True(t, prefs.AddRegime(RegimeVegan))

	names := []string{"poulet", "tomate", "miel", "riz", "courgette"}
	once := FilterIngredients(names, prefs)
	twice := FilterIngredients(once, prefs)

	assert.Equal(t, once, twice)
}

func TestFilterRecipes(t *testing.T) {
	prefs := NewPreferences()
	require.True(t, prefs.AddRegime(RegimeVegetarian))

	candidates := []models.RecipeCandidate{
		{ID: 1, Title: "Salade", Ingredients: []string{"tomate", "concombre"}},
		{ID: 2, Title: "Rôti", Ingredients: []string{"porc", "pomme de terre"}},
	}

	filtered := FilterRecipes(candidates, prefs)

	require.Len(t, filtered, 1)
	assert.Equal(t, int64(1), filtered[0].ID)
}

func TestFilterRecipesNoPreferences(t *testing.T) {
	candidates := []models.RecipeCandidate{
		{ID: 1, Ingredients: []string{"porc"}},
	}
	assert.Equal(t, candidates, FilterRecipes(candidates, NewPreferences()))
}

func TestSearchParams(t *testing.T) {
	prefs := NewPreferences()
	require.True(t, prefs.AddRegime(RegimeVegetarian))
	prefs.AddAllergy(AllergyGluten)
	prefs.Nutrition.MaxCalories = 600

	params := SearchParams(prefs)

	// gluten allergy auto-added gluten-free, list output is sorted
	assert.Equal(t, "gluten-free,vegetarian", params["diet"])
	assert.Equal(t, "gluten", params["intolerances"])
	assert.Equal(t, "600", params["maxCalories"])
}

func TestParseRegime(t *testing.T) {
	r, ok := ParseRegime(" Vegetarian ")
	assert.True(t, ok)
	assert.Equal(t, RegimeVegetarian, r)

	_, ok = ParseRegime("carnivore")
	assert.False(t, ok)
}

func TestParseAllergy(t *testing.T) {
	a, ok := ParseAllergy("Tree Nut")
	assert.True(t, ok)
	assert.Equal(t, AllergyTreeNut, a)

	_, ok = ParseAllergy("dust")
	assert.False(t, ok)
}
