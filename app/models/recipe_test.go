package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Pasta & Cheese", "pasta-cheese"},
		{"One-pot chilli", "one-pot-chilli"},
		{"  Fish pie  ", "fish-pie"},
		{"Crème brûlée!", "cr-me-br-l-e"},
		{"soup", "soup"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), tt.title)
	}
}

func TestRecipeTagList(t *testing.T) {
	r := Recipe{Tags: "quick, vegetarian ,,freezer-friendly"}
	assert.Equal(t, []string{"quick", "vegetarian", "freezer-friendly"}, r.TagList())

	empty := Recipe{}
	assert.Nil(t, empty.TagList())
}

func TestRecipeSetTagList(t *testing.T) {
	var r Recipe
	r.SetTagList([]string{"Quick", "quick", " vegetarian ", ""})
	assert.Equal(t, "Quick,vegetarian", r.Tags)
}

func TestRecipeTotalMinutes(t *testing.T) {
	r := Recipe{PrepMinutes: 15, CookMinutes: 40}
	assert.Equal(t, 55, r.TotalMinutes())
}

func TestRecipeValidate(t *testing.T) {
	ok := Recipe{Title: "Fish pie", Servings: 4}
	assert.NoError(t, ok.Validate())

	bad := Recipe{Title: "x"}
	assert.Error(t, bad.Validate())
}

func TestIngredientNormalizedName(t *testing.T) {
	i := Ingredient{Name: "  Cheddar "}
	assert.Equal(t, "cheddar", i.NormalizedName())
}

func TestNormalizeInviteCode(t *testing.T) {
	assert.Equal(t, "abc-123", NormalizeInviteCode("  ABC-123 \n"))
}
