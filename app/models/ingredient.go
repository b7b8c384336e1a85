package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Ingredient is one line of a recipe's ingredient list, stored
// pre-split by the importer: Line keeps the author's phrasing, Name
// is the normalized identity the shopping list joins on, Qty/Unit are
// the parsed amount when one was recognised.
type Ingredient struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	RecipeID uint     `gorm:"index;not null" json:"recipe_id"`
	Line     string   `gorm:"type:varchar(500);not null" json:"line" validate:"required,max=500"`
	Name     string   `gorm:"type:varchar(255);not null;index" json:"name" validate:"required,max=255"`
	Qty      *float64 `gorm:"type:decimal(10,2)" json:"qty"`
	Unit     *string  `gorm:"type:varchar(30)" json:"unit"` // nil for count items ("2 onions")
	Optional bool     `gorm:"default:false" json:"optional"`
	Position int      `gorm:"default:0" json:"position"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (i *Ingredient) Validate() error {
	v := validator.New()

	return v.Struct(i)
}

// NormalizedName returns the case-folded join key used for grouping,
// category lookup and pantry state.
func (i *Ingredient) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(i.Name))
}

// RecipeStep is one ordered line of a recipe's method.
type RecipeStep struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RecipeID uint   `gorm:"index;not null" json:"recipe_id"`
	Position int    `gorm:"default:0" json:"position"`
	Text     string `gorm:"type:text;not null" json:"text"`
}
