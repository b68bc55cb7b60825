package services

import "github.com/jackmisner/BrewTracker-sub011/internal/models"

// ingredientDefaults are the fallback numeric attributes used when an imported
// record needs a new catalog entry but did not carry the value itself.
type ingredientDefaults struct {
	Color            *float64
	Potential        *float64
	AlphaAcid        *float64
	Attenuation      *float64
	MinTemperature   *float64
	MaxTemperature   *float64
	AlcoholTolerance *float64
}

// defaultsByType holds one defaults row per ingredient type. Values are
// unremarkable mid-range choices: a pale base malt, a middling aroma hop, an
// average ale yeast.
var defaultsByType = map[string]ingredientDefaults{
	models.IngredientTypeGrain: {
		Potential: models.Float64Ptr(1.036),
		Color:     models.Float64Ptr(2.0),
	},
	models.IngredientTypeHop: {
		AlphaAcid: models.Float64Ptr(5.0),
	},
	models.IngredientTypeYeast: {
		Attenuation:      models.Float64Ptr(75.0),
		AlcoholTolerance: models.Float64Ptr(12.0),
		MinTemperature:   models.Float64Ptr(60.0),
		MaxTemperature:   models.Float64Ptr(72.0),
	},
	models.IngredientTypeOther: {},
}

// synthesizeNewIngredient builds the creation payload for an unmatched import:
// imported attributes win, defaults fill the gaps.
func synthesizeNewIngredient(imported *models.ImportedIngredient) *models.NewIngredientData {
	defaults := defaultsByType[imported.Type]

	return &models.NewIngredientData{
		Type:             imported.Type,
		Name:             imported.Name,
		Description:      imported.Description,
		GrainType:        imported.GrainType,
		Color:            firstFloat(imported.Color, defaults.Color),
		Potential:        firstFloat(imported.Potential, defaults.Potential),
		Origin:           imported.Origin,
		AlphaAcid:        firstFloat(imported.AlphaAcid, defaults.AlphaAcid),
		Manufacturer:     imported.Manufacturer,
		ProductCode:      imported.ProductCode,
		Attenuation:      firstFloat(imported.Attenuation, defaults.Attenuation),
		MinTemperature:   firstFloat(imported.MinTemperature, defaults.MinTemperature),
		MaxTemperature:   firstFloat(imported.MaxTemperature, defaults.MaxTemperature),
		AlcoholTolerance: firstFloat(imported.AlcoholTolerance, defaults.AlcoholTolerance),
	}
}

func firstFloat(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
