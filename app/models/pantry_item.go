package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// PantryItem records whether a household already has an ingredient,
// keyed by the normalized ingredient name. Rows are upserted on every
// shopping-list checkbox toggle, last write wins.
type PantryItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	HouseholdID    uint      `gorm:"uniqueIndex:idx_pantry_household_name;not null" json:"household_id"`
	IngredientName string    `gorm:"type:varchar(255);uniqueIndex:idx_pantry_household_name;not null" json:"ingredient_name"`
	Have           bool      `gorm:"default:false" json:"have"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeSave keeps the name lowercase so the unique index matches the
// aggregation key regardless of how the caller cased it.
func (p *PantryItem) BeforeSave(tx *gorm.DB) error {
	p.IngredientName = strings.ToLower(strings.TrimSpace(p.IngredientName))
	return nil
}

// IngredientCategory maps a normalized ingredient name to a shopping
// category. The table is global, maintained out of band; names absent
// from it fall back to "Other".
type IngredientCategory struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	IngredientName string `gorm:"type:varchar(255);uniqueIndex;not null" json:"ingredient_name"`
	Category       string `gorm:"type:varchar(100);not null" json:"category"`
}
