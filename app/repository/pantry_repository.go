package repository

import (
	"strings"
	"time"

	"github.com/larder-app/larder/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pantryRepository implements the PantryRepository interface
type pantryRepository struct {
	db *gorm.DB
}

// NewPantryRepository creates a new pantry repository instance
func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

// GetState fetches the have-flags for exactly the given normalized
// names in one query. Names without a row are absent from the map.
func (r *pantryRepository) GetState(householdID uint, names []string) (map[string]bool, error) {
	state := make(map[string]bool, len(names))
	if len(names) == 0 {
		return state, nil
	}

	var items []models.PantryItem
	err := r.db.Where("household_id = ? AND ingredient_name IN ?", householdID, lowercase(names)).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		state[item.IngredientName] = item.Have
	}
	return state, nil
}

// SetHave upserts the have-flag for one ingredient. Keyed on
// (household_id, ingredient_name) so repeated toggles hit the same
// row; last write wins.
func (r *pantryRepository) SetHave(householdID uint, name string, have bool) error {
	item := models.PantryItem{
		HouseholdID:    householdID,
		IngredientName: strings.ToLower(strings.TrimSpace(name)),
		Have:           have,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "household_id"}, {Name: "ingredient_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"have": have, "updated_at": time.Now()}),
	}).Create(&item).Error
}

// ClearChecked sets have=false for exactly the given names. Rows of
// other names or other households are untouched.
func (r *pantryRepository) ClearChecked(householdID uint, names []string) error {
	if len(names) == 0 {
		return nil
	}
	return r.db.Model(&models.PantryItem{}).
		Where("household_id = ? AND ingredient_name IN ?", householdID, lowercase(names)).
		Updates(map[string]interface{}{"have": false, "updated_at": time.Now()}).Error
}

func lowercase(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = strings.ToLower(strings.TrimSpace(n))
	}
	return out
}
