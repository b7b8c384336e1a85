package repository

import (
	"github.com/larder-app/larder/app/models"
	"gorm.io/gorm"
)

// recipeRepository implements the RecipeRepository interface
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository instance
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create creates a new recipe with its ingredients and steps
func (r *recipeRepository) Create(recipe *models.Recipe) error {
	return r.db.Create(recipe).Error
}

// GetByID retrieves a recipe by its ID with ingredients and steps
func (r *recipeRepository) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetBySlug retrieves a recipe by its unique slug
func (r *recipeRepository) GetBySlug(slug string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("slug = ?", slug).First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListForHousehold returns the household's own recipes plus shared
// ones (household_id IS NULL), newest first
func (r *recipeRepository) ListForHousehold(householdID uint, offset, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.Where("household_id = ? OR household_id IS NULL", householdID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&recipes).Error
	return recipes, err
}

// Search finds recipes visible to the household whose title or tags
// match the query
func (r *recipeRepository) Search(householdID uint, query string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	pattern := "%" + query + "%"
	err := r.db.Where("(household_id = ? OR household_id IS NULL) AND (title LIKE ? OR tags LIKE ?)",
		householdID, pattern, pattern).
		Order("title ASC").
		Find(&recipes).Error
	return recipes, err
}

// Update updates an existing recipe in the database
func (r *recipeRepository) Update(recipe *models.Recipe) error {
	return r.db.Save(recipe).Error
}

// Delete removes a recipe together with its ingredients, steps and
// any plan entries referencing it
func (r *recipeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.PlanEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

// Count returns the total number of recipes
func (r *recipeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Count(&count).Error
	return count, err
}

// SlugExists checks whether a slug is already taken
func (r *recipeRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks whether a slug is taken by another recipe
func (r *recipeRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

// ReplaceIngredients swaps a recipe's ingredient list atomically
func (r *recipeRepository) ReplaceIngredients(recipeID uint, ingredients []models.Ingredient) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].ID = 0
			ingredients[i].RecipeID = recipeID
			ingredients[i].Position = i
		}
		if len(ingredients) == 0 {
			return nil
		}
		return tx.Create(&ingredients).Error
	})
}

// ReplaceSteps swaps a recipe's method steps atomically
func (r *recipeRepository) ReplaceSteps(recipeID uint, steps []models.RecipeStep) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeStep{}).Error; err != nil {
			return err
		}
		for i := range steps {
			steps[i].ID = 0
			steps[i].RecipeID = recipeID
			steps[i].Position = i
		}
		if len(steps) == 0 {
			return nil
		}
		return tx.Create(&steps).Error
	})
}

// GetIngredients fetches the ingredient rows for a set of recipes in
// a single IN query
func (r *recipeRepository) GetIngredients(recipeIDs []uint) ([]models.Ingredient, error) {
	if len(recipeIDs) == 0 {
		return nil, nil
	}
	var ingredients []models.Ingredient
	err := r.db.Where("recipe_id IN ?", recipeIDs).
		Order("recipe_id ASC, position ASC").
		Find(&ingredients).Error
	return ingredients, err
}
