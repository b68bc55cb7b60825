package services

import (
	"math"
	"strings"

	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

// Heuristic deltas applied on top of the name-similarity base score. Values
// are calibrated against typical catalog data: a 2L color difference between
// caramel malts is label noise, a 60L difference is a different product.
const (
	grainSubtypeBonus = 0.1

	colorCloseBonus    = 0.15 // diff <= 2 Lovibond
	colorNearBonus     = 0.1  // diff <= 5
	colorSameBandBonus = 0.05 // diff <= 10
	colorFarPenalty    = 0.2  // diff > 20

	potentialCloseBonus = 0.1  // diff <= 0.002 SG
	potentialNearBonus  = 0.05 // diff <= 0.005 SG

	alphaCloseBonus = 0.2 // diff <= 1 %AA
	alphaNearBonus  = 0.1 // diff <= 3
	alphaFarPenalty = 0.2 // diff > 5

	originBonus = 0.1

	manufacturerExactBonus = 0.3
	manufacturerLooseBonus = 0.2
	productCodeExactBonus  = 0.4
	productCodeLooseBonus  = 0.3

	attenuationCloseBonus = 0.1  // diff <= 5 points
	attenuationFarPenalty = 0.15 // diff > 15

	// Significant-mismatch cutoffs. Crossing one marks the pair as probably
	// different products regardless of how similar the names are.
	colorMismatchCutoff       = 30.0
	alphaMismatchCutoff       = 8.0
	attenuationMismatchCutoff = 25.0
)

// ConfidenceScorer refines a raw name similarity into a final confidence using
// per-type numeric heuristics. mismatchPenalty is the multiplicative downgrade
// applied when any significant mismatch is present.
type ConfidenceScorer struct {
	mismatchPenalty float64
}

func NewConfidenceScorer(mismatchPenalty float64) *ConfidenceScorer {
	return &ConfidenceScorer{mismatchPenalty: mismatchPenalty}
}

// Score computes the final confidence for a candidate pairing and the reasons
// a reviewer sees. nameScore is the weighted index similarity for the pair.
func (s *ConfidenceScorer) Score(imported *models.ImportedIngredient, candidate *models.CatalogIngredient, nameScore float64) (float64, []string) {
	confidence := nameScore
	reasons := make([]string, 0, 4)

	switch {
	case nameScore >= 0.95:
		reasons = append(reasons, "Very similar name")
	case nameScore >= 0.8:
		reasons = append(reasons, "Similar name")
	}

	mismatch := false

	if imported.Type != candidate.Type {
		mismatch = true
		reasons = append(reasons, "Ingredient type differs")
	}

	switch imported.Type {
	case models.IngredientTypeGrain:
		confidence, mismatch = s.scoreGrain(imported, candidate, confidence, mismatch, &reasons)
	case models.IngredientTypeHop:
		confidence, mismatch = s.scoreHop(imported, candidate, confidence, mismatch, &reasons)
	case models.IngredientTypeYeast:
		confidence, mismatch = s.scoreYeast(imported, candidate, confidence, mismatch, &reasons)
	}

	if mismatch {
		confidence *= s.mismatchPenalty
	}

	return clampConfidence(confidence), reasons
}

func (s *ConfidenceScorer) scoreGrain(imported *models.ImportedIngredient, candidate *models.CatalogIngredient, confidence float64, mismatch bool, reasons *[]string) (float64, bool) {
	importedSubtype := NormalizeName(imported.GrainType)
	candidateSubtype := NormalizeName(candidate.GrainType)
	if importedSubtype != "" && candidateSubtype != "" {
		if importedSubtype == candidateSubtype {
			confidence += grainSubtypeBonus
			*reasons = append(*reasons, "Same grain type")
		} else {
			mismatch = true
			*reasons = append(*reasons, "Different grain type")
		}
	}

	if diff, ok := floatDiff(imported.Color, candidate.Color); ok {
		switch {
		case diff <= 2:
			confidence += colorCloseBonus
			*reasons = append(*reasons, "Very close color")
		case diff <= 5:
			confidence += colorNearBonus
			*reasons = append(*reasons, "Close color")
		case diff <= 10:
			confidence += colorSameBandBonus
		case diff > 20:
			confidence -= colorFarPenalty
			*reasons = append(*reasons, "Color differs significantly")
		}

		if diff > colorMismatchCutoff {
			mismatch = true
		}
	}

	if diff, ok := floatDiff(imported.Potential, candidate.Potential); ok {
		switch {
		case diff <= 0.002:
			confidence += potentialCloseBonus
			*reasons = append(*reasons, "Matching extract potential")
		case diff <= 0.005:
			confidence += potentialNearBonus
		}
	}

	return confidence, mismatch
}

func (s *ConfidenceScorer) scoreHop(imported *models.ImportedIngredient, candidate *models.CatalogIngredient, confidence float64, mismatch bool, reasons *[]string) (float64, bool) {
	if diff, ok := floatDiff(imported.AlphaAcid, candidate.AlphaAcid); ok {
		switch {
		case diff <= 1:
			confidence += alphaCloseBonus
			*reasons = append(*reasons, "Very close alpha acid")
		case diff <= 3:
			confidence += alphaNearBonus
			*reasons = append(*reasons, "Close alpha acid")
		case diff > 5:
			confidence -= alphaFarPenalty
			*reasons = append(*reasons, "Alpha acid differs significantly")
		}

		if diff > alphaMismatchCutoff {
			mismatch = true
		}
	}

	importedOrigin := NormalizeName(imported.Origin)
	candidateOrigin := NormalizeName(candidate.Origin)
	if importedOrigin != "" && importedOrigin == candidateOrigin {
		confidence += originBonus
		*reasons = append(*reasons, "Same origin")
	}

	return confidence, mismatch
}

func (s *ConfidenceScorer) scoreYeast(imported *models.ImportedIngredient, candidate *models.CatalogIngredient, confidence float64, mismatch bool, reasons *[]string) (float64, bool) {
	importedMfr := NormalizeName(imported.Manufacturer)
	candidateMfr := NormalizeName(candidate.Manufacturer)
	if importedMfr != "" && candidateMfr != "" {
		if importedMfr == candidateMfr {
			confidence += manufacturerExactBonus
			*reasons = append(*reasons, "Same manufacturer")
		} else if strings.Contains(importedMfr, candidateMfr) || strings.Contains(candidateMfr, importedMfr) {
			confidence += manufacturerLooseBonus
			*reasons = append(*reasons, "Related manufacturer")
		}
	}

	importedCode := NormalizeName(imported.ProductCode)
	candidateCode := NormalizeName(candidate.ProductCode)
	if importedCode != "" && candidateCode != "" {
		if importedCode == candidateCode {
			confidence += productCodeExactBonus
			*reasons = append(*reasons, "Same product code")
		} else if strings.Contains(importedCode, candidateCode) || strings.Contains(candidateCode, importedCode) {
			confidence += productCodeLooseBonus
			*reasons = append(*reasons, "Matching product code")
		}
	}

	if diff, ok := floatDiff(imported.Attenuation, candidate.Attenuation); ok {
		switch {
		case diff <= 5:
			confidence += attenuationCloseBonus
			*reasons = append(*reasons, "Close attenuation")
		case diff > 15:
			confidence -= attenuationFarPenalty
			*reasons = append(*reasons, "Attenuation differs significantly")
		}

		if diff > attenuationMismatchCutoff {
			mismatch = true
		}
	}

	return confidence, mismatch
}

// floatDiff reports the absolute difference of two optional values; ok is
// false when either side is unrecorded, in which case the attribute is
// skipped entirely rather than treated as zero.
func floatDiff(a, b *float64) (float64, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	return math.Abs(*a - *b), true
}

func clampConfidence(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
