package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

type ConfidenceScorerTestSuite struct {
	suite.Suite
	scorer *ConfidenceScorer
}

func TestConfidenceScorerSuite(t *testing.T) {
	suite.Run(t, new(ConfidenceScorerTestSuite))
}

func (s *ConfidenceScorerTestSuite) SetupTest() {
	s.scorer = NewConfidenceScorer(0.7)
}

func (s *ConfidenceScorerTestSuite) TestScore_GrainColorMismatchDowngradesIdenticalName() {
	imported := &models.ImportedIngredient{
		Type:      models.IngredientTypeGrain,
		Name:      "Caramel Malt",
		GrainType: "caramel",
		Color:     models.Float64Ptr(10),
	}
	candidate := &models.CatalogIngredient{
		Type:      models.IngredientTypeGrain,
		Name:      "Caramel Malt",
		GrainType: "caramel",
		Color:     models.Float64Ptr(70),
	}

	confidence, reasons := s.scorer.Score(imported, candidate, 1.0)

	// 1.0 + 0.1 (same subtype) - 0.2 (color far), then the 60L gap crosses
	// the significant-mismatch cutoff: 0.9 * 0.7.
	s.InDelta(0.63, confidence, 0.0001)
	s.Contains(reasons, "Same grain type")
	s.Contains(reasons, "Color differs significantly")
}

func (s *ConfidenceScorerTestSuite) TestScore_GrainCloseAttributesBoost() {
	imported := &models.ImportedIngredient{
		Type:      models.IngredientTypeGrain,
		Name:      "Caramel 60L",
		GrainType: "caramel",
		Color:     models.Float64Ptr(60),
		Potential: models.Float64Ptr(1.034),
	}
	candidate := &models.CatalogIngredient{
		Type:      models.IngredientTypeGrain,
		Name:      "Caramel Malt - 60L",
		GrainType: "caramel",
		Color:     models.Float64Ptr(61),
		Potential: models.Float64Ptr(1.035),
	}

	confidence, reasons := s.scorer.Score(imported, candidate, 0.85)

	// 0.85 + 0.1 + 0.15 + 0.1 clamps to 1.0.
	s.InDelta(1.0, confidence, 0.0001)
	s.Contains(reasons, "Similar name")
	s.Contains(reasons, "Very close color")
	s.Contains(reasons, "Matching extract potential")
}

func (s *ConfidenceScorerTestSuite) TestScore_GrainDifferentSubtypeIsMismatch() {
	imported := &models.ImportedIngredient{
		Type:      models.IngredientTypeGrain,
		Name:      "Special Malt",
		GrainType: "caramel",
	}
	candidate := &models.CatalogIngredient{
		Type:      models.IngredientTypeGrain,
		Name:      "Special Malt",
		GrainType: "roasted",
	}

	confidence, reasons := s.scorer.Score(imported, candidate, 1.0)

	s.InDelta(0.7, confidence, 0.0001)
	s.Contains(reasons, "Different grain type")
}

func (s *ConfidenceScorerTestSuite) TestScore_HopCloseAlphaAcid() {
	imported := &models.ImportedIngredient{
		Type:      models.IngredientTypeHop,
		Name:      "Cascade",
		AlphaAcid: models.Float64Ptr(5.5),
	}
	candidate := &models.CatalogIngredient{
		Type:      models.IngredientTypeHop,
		Name:      "Cascade",
		AlphaAcid: models.Float64Ptr(5.7),
	}

	confidence, reasons := s.scorer.Score(imported, candidate, 1.0)

	s.InDelta(1.0, confidence, 0.0001)
	s.Greater(confidence, 0.9)
	s.Contains(reasons, "Very close alpha acid")
}

func (s *ConfidenceScorerTestSuite) TestScore_HopAlphaAcidMismatch() {
	imported := &models.ImportedIngredient{
		Type:      models.IngredientTypeHop,
		Name:      "Magnum",
		AlphaAcid: models.Float64Ptr(4.0),
	}
	candidate := &models.CatalogIngredient{
		Type:      models.IngredientTypeHop,
		Name:      "Magnum",
		AlphaAcid: models.Float64Ptr(13.0),
	}

	confidence, reasons := s.scorer.Score(imported, candidate, 1.0)

	// (1.0 - 0.2) * 0.7: a 9 point alpha gap is a different product.
	s.InDelta(0.56, confidence, 0.0001)
	s.Contains(reasons, "Alpha acid differs significantly")
}

func (s *ConfidenceScorerTestSuite) TestScore_HopOriginBonus() {
	imported := &models.ImportedIngredient{
		Type:      models.IngredientTypeHop,
		Name:      "Hallertau Mittelfrüh",
		Origin:    "Germany",
		AlphaAcid: models.Float64Ptr(4.0),
	}
	candidate := &models.CatalogIngredient{
		Type:      models.IngredientTypeHop,
		Name:      "Hallertauer Mittelfrüh",
		Origin:    "Germany",
		AlphaAcid: models.Float64Ptr(4.5),
	}

	confidence, reasons := s.scorer.Score(imported, candidate, 0.85)

	// 0.85 + 0.2 (alpha within 1) + 0.1 (origin) clamps to 1.0.
	s.InDelta(1.0, confidence, 0.0001)
	s.Contains(reasons, "Same origin")
}

func (s *ConfidenceScorerTestSuite) TestScore_YeastCodeAndManufacturerDominate() {
	imported := &models.ImportedIngredient{
		Type:         models.IngredientTypeYeast,
		Name:         "WLP001",
		Manufacturer: "White Labs",
		ProductCode:  "WLP001",
		Attenuation:  models.Float64Ptr(77),
	}
	candidate := &models.CatalogIngredient{
		Type:         models.IngredientTypeYeast,
		Name:         "California Ale",
		Manufacturer: "White Labs",
		ProductCode:  "WLP001",
		Attenuation:  models.Float64Ptr(76),
	}

	confidence, reasons := s.scorer.Score(imported, candidate, 0.5)

	// 0.5 + 0.3 (manufacturer) + 0.4 (code) + 0.1 (attenuation) clamps to 1.0.
	s.InDelta(1.0, confidence, 0.0001)
	s.Contains(reasons, "Same manufacturer")
	s.Contains(reasons, "Same product code")
}

func (s *ConfidenceScorerTestSuite) TestScore_YeastLooseManufacturerAndCode() {
	imported := &models.ImportedIngredient{
		Type:         models.IngredientTypeYeast,
		Name:         "California Ale WLP001",
		Manufacturer: "White Labs Inc",
		ProductCode:  "WLP001",
	}
	candidate := &models.CatalogIngredient{
		Type:         models.IngredientTypeYeast,
		Name:         "California Ale",
		Manufacturer: "White Labs",
		ProductCode:  "WLP",
	}

	confidence, reasons := s.scorer.Score(imported, candidate, 0.4)

	// 0.4 + 0.2 (manufacturer contains) + 0.3 (code contains).
	s.InDelta(0.9, confidence, 0.0001)
	s.Contains(reasons, "Related manufacturer")
	s.Contains(reasons, "Matching product code")
}

func (s *ConfidenceScorerTestSuite) TestScore_YeastAttenuationMismatch() {
	imported := &models.ImportedIngredient{
		Type:        models.IngredientTypeYeast,
		Name:        "Saison Blend",
		Attenuation: models.Float64Ptr(95),
	}
	candidate := &models.CatalogIngredient{
		Type:        models.IngredientTypeYeast,
		Name:        "Saison Blend",
		Attenuation: models.Float64Ptr(65),
	}

	confidence, reasons := s.scorer.Score(imported, candidate, 1.0)

	// (1.0 - 0.15) * 0.7: a 30 point attenuation gap.
	s.InDelta(0.595, confidence, 0.0001)
	s.Contains(reasons, "Attenuation differs significantly")
}

func (s *ConfidenceScorerTestSuite) TestScore_TypeMismatchPenalized() {
	imported := &models.ImportedIngredient{
		Type: models.IngredientTypeGrain,
		Name: "Cascade",
	}
	candidate := &models.CatalogIngredient{
		Type: models.IngredientTypeHop,
		Name: "Cascade",
	}

	confidence, reasons := s.scorer.Score(imported, candidate, 1.0)

	s.InDelta(0.7, confidence, 0.0001)
	s.Contains(reasons, "Ingredient type differs")
}

func (s *ConfidenceScorerTestSuite) TestScore_MissingAttributesAreSkipped() {
	imported := &models.ImportedIngredient{
		Type: models.IngredientTypeGrain,
		Name: "Pale Ale Malt",
	}
	candidate := &models.CatalogIngredient{
		Type:      models.IngredientTypeGrain,
		Name:      "Pale Ale Malt",
		Color:     models.Float64Ptr(2),
		Potential: models.Float64Ptr(1.036),
	}

	confidence, _ := s.scorer.Score(imported, candidate, 0.92)

	// No numeric bonus or penalty when the import carries no attributes.
	s.InDelta(0.92, confidence, 0.0001)
}

func (s *ConfidenceScorerTestSuite) TestScore_ClampedToZero() {
	imported := &models.ImportedIngredient{
		Type:  models.IngredientTypeGrain,
		Name:  "Roasted Barley",
		Color: models.Float64Ptr(5),
	}
	candidate := &models.CatalogIngredient{
		Type:  models.IngredientTypeGrain,
		Name:  "Roast Barley",
		Color: models.Float64Ptr(30),
	}

	confidence, _ := s.scorer.Score(imported, candidate, 0.1)

	// 0.1 - 0.2 (color far, inside the mismatch cutoff) clamps at zero.
	s.InDelta(0.0, confidence, 0.0001)
}

func (s *ConfidenceScorerTestSuite) TestScore_NameReasonTiers() {
	imported := &models.ImportedIngredient{Type: models.IngredientTypeOther, Name: "Irish Moss"}
	candidate := &models.CatalogIngredient{Type: models.IngredientTypeOther, Name: "Irish Moss"}

	_, reasons := s.scorer.Score(imported, candidate, 0.97)
	s.Contains(reasons, "Very similar name")

	_, reasons = s.scorer.Score(imported, candidate, 0.85)
	s.Contains(reasons, "Similar name")
	s.NotContains(reasons, "Very similar name")

	_, reasons = s.scorer.Score(imported, candidate, 0.5)
	s.NotContains(reasons, "Similar name")
}
