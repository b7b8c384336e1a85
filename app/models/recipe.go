package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type Recipe struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	HouseholdID *uint          `gorm:"index" json:"household_id"` // nil = shared recipe visible to every household
	Title       string         `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=2,max=255"`
	Slug        string         `gorm:"type:varchar(255);uniqueIndex" json:"slug"`
	Servings    int            `gorm:"default:2" json:"servings" validate:"gte=0,lte=50"`
	PrepMinutes int            `gorm:"default:0" json:"prep_minutes" validate:"gte=0"`
	CookMinutes int            `gorm:"default:0" json:"cook_minutes" validate:"gte=0"`
	Tags        string         `gorm:"type:varchar(500)" json:"tags"`
	Notes       string         `gorm:"type:text" json:"notes"`
	TimesPlanned int           `gorm:"default:0" json:"times_planned"`
	Ingredients []Ingredient   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Steps       []RecipeStep   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Recipe) Validate() error {
	v := validator.New()

	return v.Struct(r)
}

// BeforeCreate derives the slug from the title when none was supplied.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.Slug == "" {
		r.Slug = Slugify(r.Title)
	}
	return nil
}

// TagList splits the stored comma-separated tags into a slice.
func (r *Recipe) TagList() []string {
	if r.Tags == "" {
		return nil
	}
	parts := strings.Split(r.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// SetTagList stores the given tags as a comma-separated string,
// dropping empties and duplicates.
func (r *Recipe) SetTagList(tags []string) {
	seen := make(map[string]bool, len(tags))
	var kept []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		kept = append(kept, t)
	}
	r.Tags = strings.Join(kept, ",")
}

// TotalMinutes is prep plus cook time.
func (r *Recipe) TotalMinutes() int {
	return r.PrepMinutes + r.CookMinutes
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a recipe title into a URL-safe slug.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
