package diet

// Regime is a dietary regime identifier in the form the recipe API expects
type Regime string

// Allergy is an intolerance identifier in the form the recipe API expects
type Allergy string

const (
	RegimeVegetarian    Regime = "vegetarian"
	RegimeVegan         Regime = "vegan"
	RegimeGlutenFree    Regime = "gluten-free"
	RegimeKetogenic     Regime = "ketogenic"
	RegimePaleo         Regime = "paleo"
	RegimeDairyFree     Regime = "dairy-free"
	RegimeTreeNutFree   Regime = "tree-nut-free"
	RegimePescetarian   Regime = "pescetarian"
	RegimeMediterranean Regime = "mediterranean"
	RegimeLowSugar      Regime = "low-sugar"
)

const (
	AllergyGluten  Allergy = "gluten"
	AllergyDairy   Allergy = "dairy"
	AllergyEgg     Allergy = "egg"
	AllergyTreeNut Allergy = "tree nut"
	AllergyPeanut  Allergy = "peanut"
	AllergySeafood Allergy = "seafood"
	AllergySoy     Allergy = "soy"
	AllergySesame  Allergy = "sesame"
)

// AllRegimes lists every regime the application knows about
var AllRegimes = []Regime{
	RegimeVegetarian,
	RegimeVegan,
	RegimeGlutenFree,
	RegimeKetogenic,
	RegimePaleo,
	RegimeDairyFree,
	RegimeTreeNutFree,
	RegimePescetarian,
	RegimeMediterranean,
	RegimeLowSugar,
}

// AllAllergies lists every allergy the application knows about
var AllAllergies = []Allergy{
	AllergyGluten,
	AllergyDairy,
	AllergyEgg,
	AllergyTreeNut,
	AllergyPeanut,
	AllergySeafood,
	AllergySoy,
	AllergySesame,
}

// regimeConflicts maps a regime to the regimes it cannot coexist with.
// A stricter regime replaces a looser one rather than stacking with it.
var regimeConflicts = map[Regime][]Regime{
	RegimeVegetarian: {RegimePescetarian},
	RegimeVegan:      {RegimeVegetarian, RegimePescetarian},
	RegimeKetogenic:  {RegimeMediterranean},
}

// allergyRegimeLinks maps an allergy to the free-from regime it implies.
// Adding the allergy adds the regime as a side effect.
var allergyRegimeLinks = map[Allergy]Regime{
	AllergyDairy:   RegimeDairyFree,
	AllergyGluten:  RegimeGlutenFree,
	AllergyTreeNut: RegimeTreeNutFree,
	AllergyPeanut:  RegimeTreeNutFree,
}

// forbiddenFoods lists, per regime, the food keywords that make an
// ingredient incompatible. Keywords are French because that is what users
// type; English recipe names are handled by the synonym check.
var forbiddenFoods = map[Regime][]string{
	RegimeVegetarian: {
		"bœuf", "boeuf", "porc", "agneau", "veau", "gibier", "poisson",
		"fruits de mer", "crevette", "crabe", "homard", "moule", "huître",
		"saumon", "thon", "sardine", "maquereau", "cabillaud", "truite",
		"anchois", "surimi", "chair", "viande", "jambon", "saucisse",
		"bacon", "chorizo", "boudin", "pâté", "foie gras", "rillettes",
		"poulet", "volaille", "dinde", "canard",
	},
	RegimeVegan: {
		"bœuf", "boeuf", "porc", "agneau", "veau", "gibier", "poisson",
		"fruits de mer", "crevette", "crabe", "lait", "fromage", "beurre",
		"crème", "creme", "yaourt", "œuf", "oeuf", "miel", "gélatine",
		"caséine", "lactose", "chair", "viande", "volaille", "poulet",
		"dinde", "canard", "jambon", "saucisse", "bacon", "chorizo",
	},
	RegimePescetarian: {
		"viande", "porc", "bœuf", "boeuf", "agneau", "veau", "poulet",
		"volaille", "dinde", "canard", "jambon", "saucisse", "bacon",
	},
	RegimeGlutenFree: {
		"blé", "orge", "seigle", "avoine", "épeautre", "pain", "pâtes",
		"pates", "biscuit", "gâteau", "farine", "semoule", "couscous",
		"boulgour", "malt",
	},
	RegimeKetogenic: {
		"pain", "pâtes", "pates", "riz", "pomme de terre", "banane",
		"raisin", "mangue", "ananas", "dates", "figues", "miel", "sucre",
		"confiture", "biscuit", "gâteau", "céréales", "haricots",
		"lentilles", "pois chiches", "quinoa", "avoine", "orge",
	},
	RegimePaleo: {
		"céréales", "pain", "pâtes", "pates", "riz", "avoine", "orge",
		"blé", "lait", "fromage", "yaourt", "haricots", "lentilles",
		"pois chiches", "soja", "arachide", "sucre",
	},
	RegimeDairyFree: {
		"lait", "fromage", "beurre", "crème", "creme", "yaourt",
	},
	RegimeTreeNutFree: {
		"noix", "noisette", "amande", "pistache", "cajou", "pécan",
		"châtaigne",
	},
}

// allergenSources lists, per allergy, the foods that carry the allergen
var allergenSources = map[Allergy][]string{
	AllergyGluten: {
		"blé", "orge", "seigle", "avoine", "épeautre", "pain", "pâtes",
		"pates", "biscuit", "farine",
	},
	AllergyDairy: {
		"lait", "fromage", "beurre", "crème", "creme", "yaourt",
	},
	AllergyEgg: {
		"œuf", "oeuf", "mayonnaise", "meringue",
	},
	AllergyTreeNut: {
		"noix", "noisette", "amande", "pistache", "cajou", "pécan",
		"châtaigne",
	},
	AllergyPeanut: {
		"cacahuète", "cacahuete", "arachide",
	},
	AllergySeafood: {
		"poisson", "saumon", "thon", "sardine", "maquereau", "cabillaud",
		"truite", "crevette", "crabe", "homard", "moule", "huître",
	},
	AllergySoy: {
		"soja", "tofu", "tempeh", "miso",
	},
	AllergySesame: {
		"sésame", "sesame", "tahini",
	},
}

// foodSynonyms groups a base food with the labels it commonly hides behind.
// Used so "spaghetti" is caught by a "pâtes" keyword and "steak" by "bœuf".
var foodSynonyms = map[string][]string{
	"bœuf":    {"viande de bœuf", "steak", "rosbif", "bifteck", "beef"},
	"porc":    {"viande de porc", "cochon", "jambon", "lard", "pork"},
	"poulet":  {"volaille", "blanc de poulet", "cuisse de poulet", "chicken"},
	"poisson": {"fish"},
	"lait":    {"lait de vache", "lait entier", "milk"},
	"fromage": {"emmental", "gruyère", "cheddar", "mozzarella", "camembert", "cheese"},
	"beurre":  {"butter"},
	"crème":   {"cream"},
	"œuf":     {"egg"},
	"oeuf":    {"egg"},
	"miel":    {"honey"},
	"pain":    {"baguette", "pain de mie", "pain complet", "bread"},
	"pâtes":   {"spaghetti", "macaroni", "penne", "fusilli", "tagliatelle", "pasta"},
	"farine":  {"flour"},
	"blé":     {"wheat"},
	"riz":     {"rice"},
	"noix":    {"walnut", "nut"},
	"amande":  {"almond"},
	"soja":    {"soy"},
	"sucre":   {"sugar"},
}
