package models

// MatchCandidate is one catalog ingredient scored against an imported record.
type MatchCandidate struct {
	Ingredient *CatalogIngredient `json:"ingredient"`
	Confidence float64            `json:"confidence"`
	NameScore  float64            `json:"name_score"`
	Reasons    []string           `json:"reasons,omitempty"`
}

// NewIngredientData is the synthesized creation payload for an imported record
// that matched nothing well enough. Attributes the import carried are kept;
// missing numeric attributes are filled from per-type defaults.
type NewIngredientData struct {
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

// MatchResult is the outcome for a single imported ingredient.
// Invariant: BestMatch is non-nil exactly when RequiresNew is false, and
// NewIngredient is non-nil exactly when RequiresNew is true.
type MatchResult struct {
	Imported      *ImportedIngredient `json:"imported"`
	Candidates    []*MatchCandidate   `json:"candidates,omitempty"`
	BestMatch     *MatchCandidate     `json:"best_match,omitempty"`
	Confidence    float64             `json:"confidence"`
	RequiresNew   bool                `json:"requires_new"`
	NewIngredient *NewIngredientData  `json:"new_ingredient,omitempty"`
}

// TypeSummary is the per-type slice of a batch summary.
type TypeSummary struct {
	Total       int `json:"total"`
	Matched     int `json:"matched"`
	RequiresNew int `json:"requires_new"`
}

// MatchSummary aggregates a batch of match results for reviewer-facing display.
// Confidence tiers count matched results only.
type MatchSummary struct {
	Total             int                    `json:"total"`
	Matched           int                    `json:"matched"`
	RequiresNew       int                    `json:"requires_new"`
	HighConfidence    int                    `json:"high_confidence"`
	MediumConfidence  int                    `json:"medium_confidence"`
	LowConfidence     int                    `json:"low_confidence"`
	AverageConfidence float64                `json:"average_confidence"`
	ByType            map[string]TypeSummary `json:"by_type"`
}
