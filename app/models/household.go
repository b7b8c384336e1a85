package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Household struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=2,max=150"`
	InviteCode string         `gorm:"type:varchar(36);uniqueIndex" json:"invite_code"`
	Recipes    []Recipe       `gorm:"foreignKey:HouseholdID" json:"recipes,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (h *Household) Validate() error {
	v := validator.New()

	return v.Struct(h)
}

// BeforeCreate assigns an invite code so a household can be joined
// from another device right after creation.
func (h *Household) BeforeCreate(tx *gorm.DB) error {
	if h.InviteCode == "" {
		h.InviteCode = uuid.New().String()
	}
	return nil
}

// RotateInviteCode invalidates the current code and stores a fresh one.
func (h *Household) RotateInviteCode(db *gorm.DB) error {
	h.InviteCode = uuid.New().String()
	return db.Model(h).Update("invite_code", h.InviteCode).Error
}

// NormalizeInviteCode makes pasted codes comparable (users copy them
// with surrounding whitespace and mixed case).
func NormalizeInviteCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
