package shopping

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/larder-app/larder/app/models"
)

// ShoppingItem is one line of a generated shopping list. Derived on
// every generation, never persisted; Have is the pantry overlay.
type ShoppingItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DisplayLine string   `json:"display_line"`
	Category    string   `json:"category"`
	Have        bool     `json:"have"`
	Qty         *float64 `json:"qty"`
	Unit        *string  `json:"unit"`
}

// ShoppingList groups items by category. Categories without items are
// absent from the map.
type ShoppingList map[string][]ShoppingItem

// PlanStore yields the distinct recipes scheduled for a household in
// an inclusive date range.
type PlanStore interface {
	ListRecipeIDs(householdID uint, start, end time.Time) ([]uint, error)
}

// IngredientStore fetches ingredient rows for a batch of recipe ids in
// one query.
type IngredientStore interface {
	GetIngredients(recipeIDs []uint) ([]models.Ingredient, error)
}

// CategoryStore resolves normalized ingredient names to categories,
// returning only the names it knows.
type CategoryStore interface {
	GetCategories(names []string) (map[string]string, error)
}

// PantryStore returns the have-flags a household has recorded for the
// given normalized names; absent names mean "don't have".
type PantryStore interface {
	GetState(householdID uint, names []string) (map[string]bool, error)
}

// Generator builds shopping lists from the meal plan. All collaborators
// are constructor-injected so callers can swap storage.
type Generator struct {
	plan        PlanStore
	ingredients IngredientStore
	categories  CategoryStore
	pantry      PantryStore

	// MixedQtyPolicy controls groups that cannot be fully summed.
	MixedQtyPolicy MixedQtyPolicy
}

// NewGenerator wires a Generator with its stores.
func NewGenerator(plan PlanStore, ingredients IngredientStore, categories CategoryStore, pantry PantryStore) *Generator {
	return &Generator{
		plan:           plan,
		ingredients:    ingredients,
		categories:     categories,
		pantry:         pantry,
		MixedQtyPolicy: MixedQtyFirstLine,
	}
}

// Generate aggregates every ingredient of every recipe planned for the
// household between start and end (inclusive) into a category-grouped
// list. An empty plan yields an empty list and no error. Plan and
// ingredient fetch failures abort generation; category and pantry
// lookups only enrich the result, so their failures degrade to
// "Other" and have=false.
func (g *Generator) Generate(householdID uint, start, end time.Time) (ShoppingList, error) {
	recipeIDs, err := g.plan.ListRecipeIDs(householdID, start, end)
	if err != nil {
		return nil, fmt.Errorf("shopping: list planned recipes: %w", err)
	}
	if len(recipeIDs) == 0 {
		return ShoppingList{}, nil
	}

	rows, err := g.ingredients.GetIngredients(recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("shopping: fetch ingredients: %w", err)
	}
	if len(rows) == 0 {
		return ShoppingList{}, nil
	}

	raw := make([]RawIngredient, 0, len(rows))
	for _, r := range rows {
		raw = append(raw, RawIngredient{Name: r.Name, Line: r.Line, Qty: r.Qty, Unit: r.Unit})
	}

	names := distinctNames(rows)

	categoryMap, err := g.categories.GetCategories(names)
	if err != nil {
		log.Printf("shopping: category lookup failed, defaulting to %q: %v", CategoryOther, err)
		categoryMap = map[string]string{}
	}

	pantryMap, err := g.pantry.GetState(householdID, names)
	if err != nil {
		log.Printf("shopping: pantry lookup failed, assuming nothing on hand: %v", err)
		pantryMap = map[string]bool{}
	}

	list := ShoppingList{}
	for _, item := range AggregateWithPolicy(raw, g.MixedQtyPolicy) {
		nameLower := strings.ToLower(item.Name)
		category := CategoryOrDefault(categoryMap, nameLower)

		list[category] = append(list[category], ShoppingItem{
			ID:          item.ID,
			Name:        item.Name,
			DisplayLine: item.DisplayLine,
			Category:    category,
			Have:        pantryMap[nameLower],
			Qty:         item.Qty,
			Unit:        item.Unit,
		})
	}

	for category := range list {
		items := list[category]
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
		})
	}

	return list, nil
}

// Counts returns how many items of the list are checked off and how
// many are still to buy.
func Counts(list ShoppingList) (checked, unchecked int) {
	for _, items := range list {
		for _, item := range items {
			if item.Have {
				checked++
			} else {
				unchecked++
			}
		}
	}
	return checked, unchecked
}

// CheckedNames returns the normalized names of every checked item,
// the input for a bulk clear.
func CheckedNames(list ShoppingList) []string {
	var names []string
	for _, items := range list {
		for _, item := range items {
			if item.Have {
				names = append(names, strings.ToLower(item.Name))
			}
		}
	}
	sort.Strings(names)
	return names
}

func distinctNames(rows []models.Ingredient) []string {
	seen := make(map[string]bool, len(rows))
	var names []string
	for _, r := range rows {
		n := r.NormalizedName()
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	return names
}
