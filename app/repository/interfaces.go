package repository

import (
	"time"

	"github.com/larder-app/larder/app/models"
	"gorm.io/gorm"
)

// HouseholdRepository defines the interface for household-related database operations
type HouseholdRepository interface {
	Create(household *models.Household) error
	GetByID(id uint) (*models.Household, error)
	GetByInviteCode(code string) (*models.Household, error)
	Update(household *models.Household) error
	Delete(id uint) error
	Count() (int64, error)
}

// RecipeRepository defines the interface for recipe-related database operations
type RecipeRepository interface {
	Create(recipe *models.Recipe) error
	GetByID(id uint) (*models.Recipe, error)
	GetBySlug(slug string) (*models.Recipe, error)
	ListForHousehold(householdID uint, offset, limit int) ([]models.Recipe, error)
	Search(householdID uint, query string) ([]models.Recipe, error)
	Update(recipe *models.Recipe) error
	Delete(id uint) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
	ReplaceIngredients(recipeID uint, ingredients []models.Ingredient) error
	ReplaceSteps(recipeID uint, steps []models.RecipeStep) error
	// GetIngredients takes the whole id set in one call; callers must
	// never loop this per recipe.
	GetIngredients(recipeIDs []uint) ([]models.Ingredient, error)
}

// PlanRepository defines the interface for meal-plan grid operations.
// Insert, Move and Reorder maintain the dense 0..n-1 position
// invariant within each (household, date, slot) cell.
type PlanRepository interface {
	ListEntries(householdID uint, start, end time.Time) ([]models.PlanEntry, error)
	ListRecipeIDs(householdID uint, start, end time.Time) ([]uint, error)
	GetByID(id uint) (*models.PlanEntry, error)
	Insert(entry *models.PlanEntry) error
	UpdateNotes(id uint, notes string) error
	Move(id uint, toDate time.Time, toSlot string) (*MoveResult, error)
	Reorder(householdID uint, date time.Time, slot string, orderedIDs []uint) error
	Delete(id uint) error
	RenumberCell(householdID uint, date time.Time, slot string) error
}

// PantryRepository defines the interface for per-household pantry state
type PantryRepository interface {
	GetState(householdID uint, names []string) (map[string]bool, error)
	SetHave(householdID uint, name string, have bool) error
	ClearChecked(householdID uint, names []string) error
}

// CategoryRepository defines the interface for the global ingredient
// category lookup
type CategoryRepository interface {
	GetCategories(names []string) (map[string]string, error)
	Upsert(name, category string) error
}

// MoveResult reports the outcome of a cross-cell move as a single
// value: the entry at its new coordinates plus every source-cell
// sibling rewritten while closing the gap.
type MoveResult struct {
	Entry          models.PlanEntry   `json:"entry"`
	SourceRewrites []models.PlanEntry `json:"source_rewrites"`
}

// Repositories struct holds all repository instances
type Repositories struct {
	Household HouseholdRepository
	Recipe    RecipeRepository
	Plan      PlanRepository
	Pantry    PantryRepository
	Category  CategoryRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Household: NewHouseholdRepository(db),
		Recipe:    NewRecipeRepository(db),
		Plan:      NewPlanRepository(db),
		Pantry:    NewPantryRepository(db),
		Category:  NewCategoryRepository(db),
	}
}
