package repository

import (
	"github.com/larder-app/larder/app/models"
	"gorm.io/gorm"
)

// householdRepository implements the HouseholdRepository interface
type householdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository creates a new household repository instance
func NewHouseholdRepository(db *gorm.DB) HouseholdRepository {
	return &householdRepository{db: db}
}

// Create creates a new household in the database
func (r *householdRepository) Create(household *models.Household) error {
	return r.db.Create(household).Error
}

// GetByID retrieves a household by its ID
func (r *householdRepository) GetByID(id uint) (*models.Household, error) {
	var household models.Household
	err := r.db.First(&household, id).Error
	if err != nil {
		return nil, err
	}
	return &household, nil
}

// GetByInviteCode retrieves a household by its invite code
func (r *householdRepository) GetByInviteCode(code string) (*models.Household, error) {
	var household models.Household
	err := r.db.Where("invite_code = ?", models.NormalizeInviteCode(code)).First(&household).Error
	if err != nil {
		return nil, err
	}
	return &household, nil
}

// Update updates an existing household in the database
func (r *householdRepository) Update(household *models.Household) error {
	return r.db.Save(household).Error
}

// Delete soft deletes a household and removes its plan and pantry rows
func (r *householdRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("household_id = ?", id).Delete(&models.PlanEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("household_id = ?", id).Delete(&models.PantryItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Household{}, id).Error
	})
}

// Count returns the total number of households
func (r *householdRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Household{}).Count(&count).Error
	return count, err
}
