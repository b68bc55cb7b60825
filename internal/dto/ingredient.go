package dto

import (
	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

// CreateIngredientRequest creates a catalog ingredient, typically confirming
// a requires-new match outcome. Missing numeric attributes get per-type
// defaults.
type CreateIngredientRequest struct {
	Type        string `json:"type" validate:"required,ingredient_type"`
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`

	GrainType string   `json:"grain_type" validate:"omitempty,max=50"`
	Color     *float64 `json:"color" validate:"omitempty,color_lovibond"`
	Potential *float64 `json:"potential" validate:"omitempty,potential_sg"`

	Origin    string   `json:"origin" validate:"omitempty,max=100"`
	AlphaAcid *float64 `json:"alpha_acid" validate:"omitempty,alpha_acid"`

	Manufacturer     string   `json:"manufacturer" validate:"omitempty,max=100"`
	ProductCode      string   `json:"product_code" validate:"omitempty,max=50"`
	Attenuation      *float64 `json:"attenuation" validate:"omitempty,percent_0_100"`
	MinTemperature   *float64 `json:"min_temperature" validate:"omitempty,min=-10,max=120"`
	MaxTemperature   *float64 `json:"max_temperature" validate:"omitempty,min=-10,max=120"`
	AlcoholTolerance *float64 `json:"alcohol_tolerance" validate:"omitempty,percent_0_100"`
}

// ToNewIngredientData converts the request into the creation payload the
// catalog service consumes.
func (r *CreateIngredientRequest) ToNewIngredientData() *models.NewIngredientData {
	return &models.NewIngredientData{
		Type:             r.Type,
		Name:             r.Name,
		Description:      r.Description,
		GrainType:        r.GrainType,
		Color:            r.Color,
		Potential:        r.Potential,
		Origin:           r.Origin,
		AlphaAcid:        r.AlphaAcid,
		Manufacturer:     r.Manufacturer,
		ProductCode:      r.ProductCode,
		Attenuation:      r.Attenuation,
		MinTemperature:   r.MinTemperature,
		MaxTemperature:   r.MaxTemperature,
		AlcoholTolerance: r.AlcoholTolerance,
	}
}

// ListIngredientsRequest filters the catalog browse endpoint.
type ListIngredientsRequest struct {
	Type  string `query:"type" validate:"omitempty,ingredient_type"`
	Query string `query:"q" validate:"omitempty,max=255"`
}

// ListIngredientsResponse returns catalog ingredients matching the filters.
type ListIngredientsResponse struct {
	Ingredients []*models.CatalogIngredient `json:"ingredients"`
	Count       int                         `json:"count"`
}
