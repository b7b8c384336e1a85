package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/larder-app/larder/app/models"
	"github.com/larder-app/larder/internal/pkg/planner"
)

func addEntry(t *testing.T, repo PlanRepository, householdID, recipeID uint, date time.Time, slot string) *models.PlanEntry {
	t.Helper()
	entry := &models.PlanEntry{
		HouseholdID: householdID,
		Date:        date,
		Slot:        slot,
		RecipeID:    recipeID,
	}
	require.NoError(t, repo.Insert(entry))
	return entry
}

func cellPositions(t *testing.T, db *gorm.DB, householdID uint, date time.Time, slot string) []int {
	t.Helper()
	var entries []models.PlanEntry
	require.NoError(t, db.Where("household_id = ? AND date = ? AND slot = ?", householdID, date, slot).
		Order("position ASC").Find(&entries).Error)
	positions := make([]int, len(entries))
	for i, e := range entries {
		positions[i] = e.Position
	}
	return positions
}

func TestPlanInsertAppendsToCell(t *testing.T) {
	db := newTestDB(t)
	h := createHousehold(t, db, "Test household")
	r := createRecipe(t, db, &h.ID, "Fish pie")
	repo := NewPlanRepository(db)

	first := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotDinnerMain)
	second := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotDinnerMain)
	other := addEntry(t, repo, h.ID, r.ID, planDay(6), planner.SlotDinnerMain)

	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
	// Positions are per cell, not per day or household.
	assert.Equal(t, 0, other.Position)
}

func TestPlanMoveAppendsToTargetAndRenumbersSource(t *testing.T) {
	db := newTestDB(t)
	h := createHousehold(t, db, "Test household")
	r := createRecipe(t, db, &h.ID, "Fish pie")
	repo := NewPlanRepository(db)

	a := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotDinnerMain)
	b := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotDinnerMain)
	c := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotDinnerMain)
	addEntry(t, repo, h.ID, r.ID, planDay(6), planner.SlotLunch)

	result, err := repo.Move(b.ID, planDay(6), planner.SlotLunch)
	require.NoError(t, err)

	assert.Equal(t, planner.SlotLunch, result.Entry.Slot)
	assert.Equal(t, 1, result.Entry.Position)

	// The gap at source position 1 closed: only c moved down.
	require.Len(t, result.SourceRewrites, 1)
	assert.Equal(t, c.ID, result.SourceRewrites[0].ID)
	assert.Equal(t, 1, result.SourceRewrites[0].Position)

	assert.Equal(t, []int{0, 1}, cellPositions(t, db, h.ID, planDay(5), planner.SlotDinnerMain))
	assert.Equal(t, []int{0, 1}, cellPositions(t, db, h.ID, planDay(6), planner.SlotLunch))
	_ = a
}

func TestPlanMoveSameCellIsNoOp(t *testing.T) {
	db := newTestDB(t)
	h := createHousehold(t, db, "Test household")
	r := createRecipe(t, db, &h.ID, "Fish pie")
	repo := NewPlanRepository(db)

	a := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotDinnerMain)
	addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotDinnerMain)

	result, err := repo.Move(a.ID, planDay(5), planner.SlotDinnerMain)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Entry.Position)
	assert.Empty(t, result.SourceRewrites)
	assert.Equal(t, []int{0, 1}, cellPositions(t, db, h.ID, planDay(5), planner.SlotDinnerMain))
}

func TestPlanMoveUnknownEntry(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlanRepository(db)

	_, err := repo.Move(99, planDay(5), planner.SlotLunch)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPlanReorder(t *testing.T) {
	db := newTestDB(t)
	h := createHousehold(t, db, "Test household")
	r := createRecipe(t, db, &h.ID, "Fish pie")
	repo := NewPlanRepository(db)

	a := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotDinnerSide)
	b := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotDinnerSide)
	c := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotDinnerSide)

	require.NoError(t, repo.Reorder(h.ID, planDay(5), planner.SlotDinnerSide, []uint{c.ID, a.ID, b.ID}))

	entries, err := repo.ListEntries(h.ID, planDay(5), planDay(5))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, c.ID, entries[0].ID)
	assert.Equal(t, a.ID, entries[1].ID)
	assert.Equal(t, b.ID, entries[2].ID)
	assert.Equal(t, []int{0, 1, 2}, cellPositions(t, db, h.ID, planDay(5), planner.SlotDinnerSide))
}

func TestPlanReorderRejectsWrongIDSet(t *testing.T) {
	db := newTestDB(t)
	h := createHousehold(t, db, "Test household")
	r := createRecipe(t, db, &h.ID, "Fish pie")
	repo := NewPlanRepository(db)

	a := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotBreakfast)
	b := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotBreakfast)

	err := repo.Reorder(h.ID, planDay(5), planner.SlotBreakfast, []uint{a.ID})
	assert.Error(t, err)

	err = repo.Reorder(h.ID, planDay(5), planner.SlotBreakfast, []uint{a.ID, 999})
	assert.Error(t, err)

	// The failed calls changed nothing.
	assert.Equal(t, []int{0, 1}, cellPositions(t, db, h.ID, planDay(5), planner.SlotBreakfast))
	_ = b
}

func TestPlanDeleteLeavesGapUntilRenumber(t *testing.T) {
	db := newTestDB(t)
	h := createHousehold(t, db, "Test household")
	r := createRecipe(t, db, &h.ID, "Fish pie")
	repo := NewPlanRepository(db)

	addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotSnack)
	b := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotSnack)
	addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotSnack)

	require.NoError(t, repo.Delete(b.ID))
	assert.Equal(t, []int{0, 2}, cellPositions(t, db, h.ID, planDay(5), planner.SlotSnack))

	require.NoError(t, repo.RenumberCell(h.ID, planDay(5), planner.SlotSnack))
	assert.Equal(t, []int{0, 1}, cellPositions(t, db, h.ID, planDay(5), planner.SlotSnack))
}

func TestPlanDeleteUnknownEntry(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlanRepository(db)

	assert.Error(t, repo.Delete(42))
}

func TestPlanListRecipeIDsDistinctWithinRange(t *testing.T) {
	db := newTestDB(t)
	h := createHousehold(t, db, "Test household")
	pie := createRecipe(t, db, &h.ID, "Fish pie")
	chilli := createRecipe(t, db, &h.ID, "One-pot chilli")
	repo := NewPlanRepository(db)

	addEntry(t, repo, h.ID, pie.ID, planDay(5), planner.SlotDinnerMain)
	addEntry(t, repo, h.ID, pie.ID, planDay(7), planner.SlotLunch)
	addEntry(t, repo, h.ID, chilli.ID, planDay(8), planner.SlotDinnerMain)
	addEntry(t, repo, h.ID, chilli.ID, planDay(20), planner.SlotDinnerMain) // outside range

	ids, err := repo.ListRecipeIDs(h.ID, planDay(5), planDay(11))
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{pie.ID, chilli.ID}, ids)

	ids, err = repo.ListRecipeIDs(h.ID, planDay(5), planDay(7))
	require.NoError(t, err)
	assert.Equal(t, []uint{pie.ID}, ids)
}

func TestPlanUpdateNotes(t *testing.T) {
	db := newTestDB(t)
	h := createHousehold(t, db, "Test household")
	r := createRecipe(t, db, &h.ID, "Fish pie")
	repo := NewPlanRepository(db)

	entry := addEntry(t, repo, h.ID, r.ID, planDay(5), planner.SlotDinnerMain)
	require.NoError(t, repo.UpdateNotes(entry.ID, "double the portions"))

	got, err := repo.GetByID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "double the portions", got.Notes)
	assert.Equal(t, "Fish pie", got.Recipe.Title)
}
