package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

// Validator wraps the go-playground validator with domain rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("ingredient_type", validateIngredientType)
	_ = v.RegisterValidation("alpha_acid", validateAlphaAcid)
	_ = v.RegisterValidation("color_lovibond", validateColorLovibond)
	_ = v.RegisterValidation("percent_0_100", validatePercent)
	_ = v.RegisterValidation("potential_sg", validatePotential)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateIngredientType validates that an ingredient type is one of the known types
func validateIngredientType(fl validator.FieldLevel) bool {
	return models.IsValidIngredientType(strings.ToLower(fl.Field().String()))
}

// validateAlphaAcid validates a hop alpha acid percentage (0-30%)
func validateAlphaAcid(fl validator.FieldLevel) bool {
	alpha := fl.Field().Float()
	return alpha >= 0 && alpha <= 30
}

// validateColorLovibond validates a grain color in degrees Lovibond (0-600)
func validateColorLovibond(fl validator.FieldLevel) bool {
	color := fl.Field().Float()
	return color >= 0 && color <= 600
}

// validatePercent validates a percentage value (0-100)
func validatePercent(fl validator.FieldLevel) bool {
	percent := fl.Field().Float()
	return percent >= 0 && percent <= 100
}

// validatePotential validates a grain extract potential in specific gravity (1.000-1.200)
func validatePotential(fl validator.FieldLevel) bool {
	potential := fl.Field().Float()
	return potential >= 1.0 && potential <= 1.2
}
