package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/larder-app/larder/app/models"
	"gorm.io/gorm"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// ListEntries returns all plan entries for the household in the
// inclusive date range, in grid order
func (r *planRepository) ListEntries(householdID uint, start, end time.Time) ([]models.PlanEntry, error) {
	var entries []models.PlanEntry
	err := r.db.Preload("Recipe").
		Where("household_id = ? AND date >= ? AND date <= ?", householdID, start, end).
		Order("date ASC, slot ASC, position ASC").
		Find(&entries).Error
	return entries, err
}

// ListRecipeIDs returns the distinct recipe ids planned for the
// household in the inclusive date range
func (r *planRepository) ListRecipeIDs(householdID uint, start, end time.Time) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.PlanEntry{}).
		Where("household_id = ? AND date >= ? AND date <= ?", householdID, start, end).
		Distinct().
		Pluck("recipe_id", &ids).Error
	return ids, err
}

// GetByID retrieves a plan entry by its ID
func (r *planRepository) GetByID(id uint) (*models.PlanEntry, error) {
	var entry models.PlanEntry
	err := r.db.Preload("Recipe").First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Insert appends the entry to its cell: position becomes max+1, or 0
// for an empty cell
func (r *planRepository) Insert(entry *models.PlanEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		next, err := nextPositionInCell(tx, entry.HouseholdID, entry.Date, entry.Slot)
		if err != nil {
			return err
		}
		entry.Position = next
		return tx.Create(entry).Error
	})
}

// UpdateNotes updates the free-text notes of a plan entry
func (r *planRepository) UpdateNotes(id uint, notes string) error {
	return r.db.Model(&models.PlanEntry{}).Where("id = ?", id).Update("notes", notes).Error
}

// Move relocates an entry to another cell in one transaction: the
// entry is appended to the destination cell and the source cell's
// remaining siblings are renumbered to a dense 0..n-1 sequence.
// Either everything is persisted or nothing is.
func (r *planRepository) Move(id uint, toDate time.Time, toSlot string) (*MoveResult, error) {
	var result MoveResult

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var entry models.PlanEntry
		if err := tx.First(&entry, id).Error; err != nil {
			return err
		}

		fromDate, fromSlot := entry.Date, entry.Slot
		sameCell := fromDate.Equal(toDate) && fromSlot == toSlot
		if sameCell {
			result.Entry = entry
			return nil
		}

		next, err := nextPositionInCell(tx, entry.HouseholdID, toDate, toSlot)
		if err != nil {
			return err
		}

		if err := tx.Model(&entry).Updates(map[string]interface{}{
			"date":     toDate,
			"slot":     toSlot,
			"position": next,
		}).Error; err != nil {
			return err
		}
		entry.Date, entry.Slot, entry.Position = toDate, toSlot, next
		result.Entry = entry

		rewrites, err := renumberCellTx(tx, entry.HouseholdID, fromDate, fromSlot)
		if err != nil {
			return err
		}
		result.SourceRewrites = rewrites
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Reorder rewrites one cell's positions to match the given id order.
// The id set must be exactly the cell's current entries.
func (r *planRepository) Reorder(householdID uint, date time.Time, slot string, orderedIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var entries []models.PlanEntry
		if err := tx.Where("household_id = ? AND date = ? AND slot = ?", householdID, date, slot).
			Find(&entries).Error; err != nil {
			return err
		}
		if len(entries) != len(orderedIDs) {
			return fmt.Errorf("reorder: cell has %d entries, got %d ids", len(entries), len(orderedIDs))
		}

		current := make(map[uint]bool, len(entries))
		for _, e := range entries {
			current[e.ID] = true
		}
		for _, id := range orderedIDs {
			if !current[id] {
				return fmt.Errorf("reorder: entry %d is not in the cell", id)
			}
		}

		for pos, id := range orderedIDs {
			if err := tx.Model(&models.PlanEntry{}).Where("id = ?", id).
				Update("position", pos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a plan entry. Remaining siblings keep their
// positions; gaps only affect aesthetics, not ordering.
func (r *planRepository) Delete(id uint) error {
	res := r.db.Delete(&models.PlanEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("plan entry not found")
	}
	return nil
}

// RenumberCell compacts one cell's positions to 0..n-1, preserving
// the current order
func (r *planRepository) RenumberCell(householdID uint, date time.Time, slot string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		_, err := renumberCellTx(tx, householdID, date, slot)
		return err
	})
}

// nextPositionInCell returns max(position)+1 within a cell, or 0 when
// the cell is empty
func nextPositionInCell(tx *gorm.DB, householdID uint, date time.Time, slot string) (int, error) {
	var maxPos *int
	err := tx.Model(&models.PlanEntry{}).
		Where("household_id = ? AND date = ? AND slot = ?", householdID, date, slot).
		Select("MAX(position)").
		Scan(&maxPos).Error
	if err != nil {
		return 0, err
	}
	if maxPos == nil {
		return 0, nil
	}
	return *maxPos + 1, nil
}

// renumberCellTx rewrites a cell's positions to a dense sequence and
// returns the rows that actually changed
func renumberCellTx(tx *gorm.DB, householdID uint, date time.Time, slot string) ([]models.PlanEntry, error) {
	var entries []models.PlanEntry
	if err := tx.Where("household_id = ? AND date = ? AND slot = ?", householdID, date, slot).
		Order("position ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	var rewritten []models.PlanEntry
	for i := range entries {
		if entries[i].Position == i {
			continue
		}
		if err := tx.Model(&models.PlanEntry{}).Where("id = ?", entries[i].ID).
			Update("position", i).Error; err != nil {
			return nil, err
		}
		entries[i].Position = i
		rewritten = append(rewritten, entries[i])
	}
	return rewritten, nil
}
