package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// PlanEntry schedules a recipe into one cell of the meal-plan grid.
// A cell is (household, date, slot); Position orders entries inside
// the cell and is kept dense by the plan repository.
type PlanEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HouseholdID uint      `gorm:"index:idx_plan_cell;not null" json:"household_id"`
	Date        time.Time `gorm:"type:date;index:idx_plan_cell;not null" json:"date"`
	Slot        string    `gorm:"type:varchar(30);index:idx_plan_cell;not null" json:"slot" validate:"required"`
	Position    int       `gorm:"default:0" json:"position"`
	RecipeID    uint      `gorm:"index;not null" json:"recipe_id"`
	Recipe      Recipe    `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *PlanEntry) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// DateYMD renders the entry date as the YYYY-MM-DD key the grid
// groups by.
func (p *PlanEntry) DateYMD() string {
	return p.Date.Format("2006-01-02")
}
