package dto

import (
	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

// ImportedIngredientRequest is one ingredient record parsed from a
// recipe-exchange file, as submitted by the importer.
type ImportedIngredientRequest struct {
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

// ToModel converts the request record into the domain model the engine reads.
func (r *ImportedIngredientRequest) ToModel() *models.ImportedIngredient {
	return &models.ImportedIngredient{
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

// MatchBatchRequest carries one import's worth of ingredients.
type MatchBatchRequest struct {
	Ingredients []ImportedIngredientRequest `json:"ingredients" validate:"required,min=1,max=500,dive"`
}

// MatchBatchResponse returns per-ingredient outcomes plus the batch summary.
type MatchBatchResponse struct {
	Results []*models.MatchResult `json:"results"`
	Summary *models.MatchSummary  `json:"summary"`
}

// MatchPreviewRequest matches a single ingredient against the indices built
// by the most recent batch.
type MatchPreviewRequest struct {
	Ingredient ImportedIngredientRequest `json:"ingredient" validate:"required"`
}

// MatchPreviewResponse wraps the single-ingredient outcome.
type MatchPreviewResponse struct {
	Result *models.MatchResult `json:"result"`
}

// ClearCacheResponse acknowledges an explicit cache clear.
type ClearCacheResponse struct {
	Message string `json:"message"`
}
