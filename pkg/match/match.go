// Package match decides whether a pantry item name and a recipe ingredient
// name refer to the same food. Names come from users typing in French and
// from an English-language recipe API, so matching is fuzzy and bilingual.
package match

import "strings"

// synonyms maps a normalized name to the other names it should match.
// French/English pairs are listed in both directions.
var synonyms = map[string][]string{
	"tomate":         {"tomato", "tomates", "tomatoes"},
	"tomato":         {"tomate", "tomates", "tomatoes"},
	"pomme":          {"apple", "pommes", "apples"},
	"apple":          {"pomme", "pommes", "apples"},
	"oignon":         {"onion", "oignons", "onions"},
	"onion":          {"oignon", "oignons", "onions"},
	"ail":            {"garlic"},
	"garlic":         {"ail"},
	"carotte":        {"carrot", "carottes", "carrots"},
	"carrot":         {"carotte", "carottes", "carrots"},
	"poulet":         {"chicken"},
	"chicken":        {"poulet"},
	"boeuf":          {"beef"},
	"beef":           {"boeuf"},
	"porc":           {"pork"},
	"pork":           {"porc"},
	"poisson":        {"fish"},
	"fish":           {"poisson"},
	"lait":           {"milk"},
	"milk":           {"lait"},
	"beurre":         {"butter"},
	"butter":         {"beurre"},
	"fromage":        {"cheese"},
	"cheese":         {"fromage"},
	"oeuf":           {"egg", "oeufs", "eggs"},
	"egg":            {"oeuf", "oeufs", "eggs"},
	"farine":         {"flour"},
	"flour":          {"farine"},
	"sucre":          {"sugar"},
	"sugar":          {"sucre"},
	"sel":            {"salt"},
	"salt":           {"sel"},
	"poivre":         {"pepper"},
	"pepper":         {"poivre"},
	"riz":            {"rice"},
	"rice":           {"riz"},
	"pates":          {"pasta", "pâtes"},
	"pasta":          {"pates", "pâtes"},
	"pain":           {"bread"},
	"bread":          {"pain"},
	"pomme de terre": {"potato", "potatoes", "pommes de terre"},
	"potato":         {"pomme de terre", "pommes de terre", "potatoes"},
	"courgette":      {"zucchini", "courgettes"},
	"zucchini":       {"courgette", "courgettes"},
	"aubergine":      {"eggplant", "aubergines"},
	"eggplant":       {"aubergine", "aubergines"},
	"champignon":     {"mushroom", "champignons", "mushrooms"},
	"mushroom":       {"champignon", "champignons", "mushrooms"},
	"epinard":        {"spinach", "epinards", "épinards"},
	"spinach":        {"epinard", "epinards", "épinards"},
	"citron":         {"lemon", "citrons"},
	"lemon":          {"citron", "citrons"},
	"fraise":         {"strawberry", "fraises", "strawberries"},
	"strawberry":     {"fraise", "fraises", "strawberries"},
	"creme":          {"cream", "crème"},
	"cream":          {"creme", "crème"},
	"huile":          {"oil"},
	"oil":            {"huile"},
	"crevette":       {"shrimp", "crevettes"},
	"shrimp":         {"crevette", "crevettes"},
	"saumon":         {"salmon"},
	"salmon":         {"saumon"},
	"thon":           {"tuna"},
	"tuna":           {"thon"},
	"haricot":        {"bean", "haricots", "beans"},
	"bean":           {"haricot", "haricots", "beans"},
	"lentille":       {"lentil", "lentilles", "lentils"},
	"lentil":         {"lentille", "lentilles", "lentils"},
	"noix":           {"walnut", "nut", "nuts"},
	"walnut":         {"noix"},
	"amande":         {"almond", "amandes", "almonds"},
	"almond":         {"amande", "amandes", "almonds"},
	"miel":           {"honey"},
	"honey":          {"miel"},
	"chocolat":       {"chocolate"},
	"chocolate":      {"chocolat"},
}

// Normalize lowercases and trims a food name for comparison. The œ
// ligature is folded to "oe" so "bœuf" and "boeuf" compare equal.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(s, "œ", "oe")
}

// Matches reports whether two food names refer to the same ingredient.
// The check is symmetric: exact match first, then two-way substring
// containment, then the bilingual synonym table.
func Matches(a, b string) bool {
	na := Normalize(a)
	nb := Normalize(b)
	if na == "" || nb == "" {
		return false
	}

	if na == nb {
		return true
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}

	for _, syn := range synonyms[na] {
		if syn == nb || strings.Contains(nb, syn) || strings.Contains(syn, nb) {
			return true
		}
	}
	for _, syn := range synonyms[nb] {
		if syn == na || strings.Contains(na, syn) || strings.Contains(syn, na) {
			return true
		}
	}

	return false
}

// ContainsMatch reports whether any name in the list matches the given name
func ContainsMatch(names []string, name string) bool {
	for _, n := range names {
		if Matches(n, name) {
			return true
		}
	}
	return false
}
