package shopping

// CategoryOther is the fallback for ingredient names missing from the
// category table.
const CategoryOther = "Other"

// CategoryOrder is the display order for shopping-list categories.
// It mirrors a typical walk through a supermarket, not the alphabet,
// and both text formats iterate it as-is.
var CategoryOrder = []string{
	"Fresh produce",
	"Meat & fish",
	"Dairy & eggs",
	"Bakery",
	"Tinned & jarred",
	"Dry goods & pasta",
	"Frozen",
	"Condiments & sauces",
	"Spices & seasonings",
	"Baking",
	CategoryOther,
}

// CategoryOrDefault looks up the category for a normalized ingredient
// name in the given map, falling back to CategoryOther.
func CategoryOrDefault(categories map[string]string, normalizedName string) string {
	if c, ok := categories[normalizedName]; ok && c != "" {
		return c
	}
	return CategoryOther
}
