package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesExact(t *testing.T) {
	assert.True(t, Matches("tomate", "tomate"))
	assert.True(t, Matches("  Tomate ", "tomate"))
	assert.False(t, Matches("tomate", "poulet"))
}

func TestMatchesContainment(t *testing.T) {
	assert.True(t, Matches("chicken", "chicken breast"))
	assert.True(t, Matches("boneless chicken breast", "chicken"))
	assert.True(t, Matches("red onion", "onion"))
}

func TestMatchesSynonyms(t *testing.T) {
	assert.True(t, Matches("tomate", "tomato"))
	assert.True(t, Matches("tomato", "tomate"))
	assert.True(t, Matches("poulet", "chicken"))
	assert.True(t, Matches("lait", "milk"))
	assert.True(t, Matches("oeuf", "eggs"))
}

func TestMatchesSynonymInsidePhrase(t *testing.T) {
	// synonym of "poulet" appearing inside a longer ingredient label
	assert.True(t, Matches("poulet", "grilled chicken thighs"))
	assert.True(t, Matches("fresh tomatoes", "tomate"))
}

func TestMatchesLigatureSpellings(t *testing.T) {
	assert.True(t, Matches("bœuf", "beef"))
	assert.True(t, Matches("beef", "bœuf"))
	assert.True(t, Matches("œuf", "egg"))
	assert.True(t, Matches("œuf", "eggs"))
	assert.True(t, Matches("bœuf", "boeuf"))
}

func TestMatchesSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"tomate", "tomato"},
		{"chicken", "chicken breast"},
		{"oeuf", "eggs"},
		{"farine", "wheat flour"},
	}
	for _, p := range pairs {
		assert.Equal(t, Matches(p[0], p[1]), Matches(p[1], p[0]), "asymmetry for %q / %q", p[0], p[1])
	}
}

func TestMatchesEmpty(t *testing.T) {
	assert.False(t, Matches("", "tomate"))
	assert.False(t, Matches("tomate", ""))
	assert.False(t, Matches("", ""))
	assert.False(t, Matches("  ", "tomate"))
}

func TestContainsMatch(t *testing.T) {
	names := []string{"tomate", "poulet", "riz"}
	assert.True(t, ContainsMatch(names, "chicken"))
	assert.True(t, ContainsMatch(names, "rice"))
	assert.False(t, ContainsMatch(names, "chocolate"))
}
