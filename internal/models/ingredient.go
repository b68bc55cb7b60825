package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient types recognized by the matching engine. Every catalog entry and
// every imported record carries exactly one of these.
const (
	IngredientTypeGrain = "grain"
	IngredientTypeHop   = "hop"
	IngredientTypeYeast = "yeast"
	IngredientTypeOther = "other"
)

// AllIngredientTypes returns all valid ingredient type constants
func AllIngredientTypes() []string {
	return []string{
		IngredientTypeGrain,
		IngredientTypeHop,
		IngredientTypeYeast,
		IngredientTypeOther,
	}
}

// IsValidIngredientType checks if an ingredient type string is valid
func IsValidIngredientType(ingredientType string) bool {
	for _, validType := range AllIngredientTypes() {
		if ingredientType == validType {
			return true
		}
	}
	return false
}

// CatalogIngredient is a canonical ingredient owned by the catalog store.
// Attribute columns are a union across ingredient types; numeric attributes are
// pointers so "not recorded" is distinguishable from zero.
type CatalogIngredient struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Type        string    `gorm:"type:varchar(20);not null;index" json:"type"`
	Name        string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`

	// Grain attributes
	GrainType string   `gorm:"type:varchar(50)" json:"grain_type,omitempty"`
	Color     *float64 `json:"color,omitempty"`
	Potential *float64 `json:"potential,omitempty"`

	// Hop attributes
	Origin    string   `gorm:"type:varchar(100)" json:"origin,omitempty"`
	AlphaAcid *float64 `json:"alpha_acid,omitempty"`

	// Yeast attributes
	Manufacturer     string   `gorm:"type:varchar(100);index" json:"manufacturer,omitempty"`
	ProductCode      string   `gorm:"type:varchar(50);index" json:"product_code,omitempty"`
	Attenuation      *float64 `json:"attenuation,omitempty"`
	MinTemperature   *float64 `json:"min_temperature,omitempty"`
	MaxTemperature   *float64 `json:"max_temperature,omitempty"`
	AlcoholTolerance *float64 `json:"alcohol_tolerance,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (i *CatalogIngredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	now := time.Now()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}

	return i.Validate()
}

func (i *CatalogIngredient) Validate() error {
	if i.Name == "" {
		return errors.New("ingredient name is required")
	}

	if !IsValidIngredientType(i.Type) {
		return fmt.Errorf("invalid ingredient type: %s", i.Type)
	}

	return nil
}

func (i *CatalogIngredient) TableName() string {
	return "catalog_ingredients"
}

// ImportedIngredient is a single record parsed from a recipe-exchange file.
// The engine reads it and never mutates it; parsing the exchange format happens
// upstream of this service.
type ImportedIngredient struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	GrainType string   `json:"grain_type,omitempty"`
	Color     *float64 `json:"color,omitempty"`
	Potential *float64 `json:"potential,omitempty"`

	Origin    string   `json:"origin,omitempty"`
	AlphaAcid *float64 `json:"alpha_acid,omitempty"`

	Manufacturer     string   `json:"manufacturer,omitempty"`
	ProductCode      string   `json:"product_code,omitempty"`
	Attenuation      *float64 `json:"attenuation,omitempty"`
	MinTemperature   *float64 `json:"min_temperature,omitempty"`
	MaxTemperature   *float64 `json:"max_temperature,omitempty"`
	AlcoholTolerance *float64 `json:"alcohol_tolerance,omitempty"`
}

// CatalogByType groups the current catalog per ingredient type, the shape the
// engine's index builder consumes.
type CatalogByType map[string][]*CatalogIngredient

// Float64Ptr returns a pointer to the given float64. Convenience for building
// models with optional numeric attributes.
func Float64Ptr(v float64) *float64 {
	return &v
}
