package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/larder-app/larder/app/models"
)

// newTestDB opens a private in-memory database per test and migrates
// the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Household{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.RecipeStep{},
		&models.PlanEntry{},
		&models.PantryItem{},
		&models.IngredientCategory{},
	)
	require.NoError(t, err)

	return db
}

func createHousehold(t *testing.T, db *gorm.DB, name string) *models.Household {
	t.Helper()
	h := &models.Household{Name: name}
	require.NoError(t, db.Create(h).Error)
	return h
}

func createRecipe(t *testing.T, db *gorm.DB, householdID *uint, title string) *models.Recipe {
	t.Helper()
	r := &models.Recipe{HouseholdID: householdID, Title: title}
	require.NoError(t, db.Create(r).Error)
	return r
}

func planDay(d int) time.Time {
	return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
}
