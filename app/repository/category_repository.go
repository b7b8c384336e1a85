package repository

import (
	"strings"

	"github.com/larder-app/larder/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// GetCategories resolves categories for exactly the given normalized
// names in one query, never the whole catalog. Unknown names are
// absent from the result; the caller applies the "Other" default.
func (r *categoryRepository) GetCategories(names []string) (map[string]string, error) {
	categories := make(map[string]string, len(names))
	if len(names) == 0 {
		return categories, nil
	}

	var rows []models.IngredientCategory
	err := r.db.Where("ingredient_name IN ?", lowercase(names)).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		categories[strings.ToLower(row.IngredientName)] = row.Category
	}
	return categories, nil
}

// Upsert sets the category for a normalized ingredient name
func (r *categoryRepository) Upsert(name, category string) error {
	row := models.IngredientCategory{
		IngredientName: strings.ToLower(strings.TrimSpace(name)),
		Category:       category,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ingredient_name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"category": category}),
	}).Create(&row).Error
}
