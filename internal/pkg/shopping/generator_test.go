package shopping

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larder-app/larder/app/models"
)

type fakePlanStore struct {
	recipeIDs []uint
	err       error
}

func (f *fakePlanStore) ListRecipeIDs(householdID uint, start, end time.Time) ([]uint, error) {
	return f.recipeIDs, f.err
}

type fakeIngredientStore struct {
	rows []models.Ingredient
	err  error
}

func (f *fakeIngredientStore) GetIngredients(recipeIDs []uint) ([]models.Ingredient, error) {
	return f.rows, f.err
}

type fakeCategoryStore struct {
	categories map[string]string
	err        error
	gotNames   []string
}

func (f *fakeCategoryStore) GetCategories(names []string) (map[string]string, error) {
	f.gotNames = names
	return f.categories, f.err
}

type fakePantryStore struct {
	state map[string]bool
	err   error
}

func (f *fakePantryStore) GetState(householdID uint, names []string) (map[string]bool, error) {
	return f.state, f.err
}

func newTestGenerator(plan *fakePlanStore, ings *fakeIngredientStore, cats *fakeCategoryStore, pantry *fakePantryStore) *Generator {
	if plan == nil {
		plan = &fakePlanStore{recipeIDs: []uint{1}}
	}
	if ings == nil {
		ings = &fakeIngredientStore{}
	}
	if cats == nil {
		cats = &fakeCategoryStore{categories: map[string]string{}}
	}
	if pantry == nil {
		pantry = &fakePantryStore{state: map[string]bool{}}
	}
	return NewGenerator(plan, ings, cats, pantry)
}

func weekRange() (time.Time, time.Time) {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 6)
}

func TestGenerateEmptyPlan(t *testing.T) {
	gen := newTestGenerator(&fakePlanStore{}, nil, nil, nil)
	start, end := weekRange()

	list, err := gen.Generate(1, start, end)

	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGeneratePlanFetchErrorAborts(t *testing.T) {
	gen := newTestGenerator(&fakePlanStore{err: errors.New("timeout")}, nil, nil, nil)
	start, end := weekRange()

	_, err := gen.Generate(1, start, end)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "list planned recipes")
}

func TestGenerateIngredientFetchErrorAborts(t *testing.T) {
	gen := newTestGenerator(nil, &fakeIngredientStore{err: errors.New("gone")}, nil, nil)
	start, end := weekRange()

	_, err := gen.Generate(1, start, end)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch ingredients")
}

func TestGenerateAggregatesAcrossRecipes(t *testing.T) {
	// Pasta & cheese and a one-pot chilli both call for an onion and
	// grated cheese; the list should merge them once per category.
	ings := &fakeIngredientStore{rows: []models.Ingredient{
		{RecipeID: 1, Name: "onion", Line: "1 onion", Qty: qty(1)},
		{RecipeID: 1, Name: "cheddar", Line: "100g cheddar", Qty: qty(100), Unit: unit("g")},
		{RecipeID: 1, Name: "macaroni", Line: "300g macaroni", Qty: qty(300), Unit: unit("g")},
		{RecipeID: 2, Name: "Onion", Line: "2 onions", Qty: qty(2)},
		{RecipeID: 2, Name: "Cheddar", Line: "50g cheddar", Qty: qty(50), Unit: unit("g")},
		{RecipeID: 2, Name: "kidney beans", Line: "1 tin kidney beans", Qty: qty(1), Unit: unit("tin")},
	}}
	cats := &fakeCategoryStore{categories: map[string]string{
		"onion":        "Fresh produce",
		"cheddar":      "Dairy & eggs",
		"macaroni":     "Dry goods & pasta",
		"kidney beans": "Tinned & jarred",
	}}
	pantry := &fakePantryStore{state: map[string]bool{"macaroni": true}}
	gen := newTestGenerator(&fakePlanStore{recipeIDs: []uint{1, 2}}, ings, cats, pantry)
	start, end := weekRange()

	list, err := gen.Generate(1, start, end)

	require.NoError(t, err)
	require.Len(t, list["Fresh produce"], 1)
	assert.Equal(t, "3 onion", list["Fresh produce"][0].DisplayLine)
	require.Len(t, list["Dairy & eggs"], 1)
	assert.Equal(t, "150g cheddar", list["Dairy & eggs"][0].DisplayLine)
	require.Len(t, list["Dry goods & pasta"], 1)
	assert.True(t, list["Dry goods & pasta"][0].Have)
	require.Len(t, list["Tinned & jarred"], 1)
	assert.Equal(t, "1 tin kidney beans", list["Tinned & jarred"][0].DisplayLine)

	assert.ElementsMatch(t, []string{"onion", "cheddar", "macaroni", "kidney beans"}, cats.gotNames)
}

func TestGenerateUnknownNameFallsBackToOther(t *testing.T) {
	ings := &fakeIngredientStore{rows: []models.Ingredient{
		{RecipeID: 1, Name: "gochujang", Line: "2 tbsp gochujang", Qty: qty(2), Unit: unit("tbsp")},
	}}
	gen := newTestGenerator(nil, ings, nil, nil)
	start, end := weekRange()

	list, err := gen.Generate(1, start, end)

	require.NoError(t, err)
	require.Len(t, list[CategoryOther], 1)
	assert.Equal(t, CategoryOther, list[CategoryOther][0].Category)
}

func TestGenerateCategoryLookupFailureDegrades(t *testing.T) {
	ings := &fakeIngredientStore{rows: []models.Ingredient{
		{RecipeID: 1, Name: "onion", Line: "1 onion", Qty: qty(1)},
	}}
	gen := newTestGenerator(nil, ings, &fakeCategoryStore{err: errors.New("redis down")}, nil)
	start, end := weekRange()

	list, err := gen.Generate(1, start, end)

	require.NoError(t, err)
	require.Len(t, list[CategoryOther], 1)
}

func TestGeneratePantryLookupFailureDegrades(t *testing.T) {
	ings := &fakeIngredientStore{rows: []models.Ingredient{
		{RecipeID: 1, Name: "onion", Line: "1 onion", Qty: qty(1)},
	}}
	gen := newTestGenerator(nil, ings, nil, &fakePantryStore{err: errors.New("redis down")})
	start, end := weekRange()

	list, err := gen.Generate(1, start, end)

	require.NoError(t, err)
	require.Len(t, list[CategoryOther], 1)
	assert.False(t, list[CategoryOther][0].Have)
}

func TestGenerateSortsWithinCategory(t *testing.T) {
	ings := &fakeIngredientStore{rows: []models.Ingredient{
		{RecipeID: 1, Name: "Tomato", Line: "2 tomatoes", Qty: qty(2)},
		{RecipeID: 1, Name: "basil", Line: "a handful of basil"},
		{RecipeID: 1, Name: "Garlic", Line: "3 cloves garlic", Qty: qty(3)},
	}}
	cats := &fakeCategoryStore{categories: map[string]string{
		"tomato": "Fresh produce",
		"basil":  "Fresh produce",
		"garlic": "Fresh produce",
	}}
	gen := newTestGenerator(nil, ings, cats, nil)
	start, end := weekRange()

	list, err := gen.Generate(1, start, end)

	require.NoError(t, err)
	require.Len(t, list["Fresh produce"], 3)
	assert.Equal(t, "basil", list["Fresh produce"][0].Name)
	assert.Equal(t, "Garlic", list["Fresh produce"][1].Name)
	assert.Equal(t, "Tomato", list["Fresh produce"][2].Name)
}

func TestCounts(t *testing.T) {
	checked, unchecked := Counts(exportFixture())

	assert.Equal(t, 2, checked)
	assert.Equal(t, 2, unchecked)
}

func TestCheckedNames(t *testing.T) {
	names := CheckedNames(exportFixture())

	assert.Equal(t, []string{"flour", "garlic"}, names)
}
