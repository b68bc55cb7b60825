package services

import (
	"sort"

	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

// indexField is one searchable attribute of a catalog ingredient, normalized
// once at build time.
type indexField struct {
	value  string
	weight float64
}

type indexEntry struct {
	ingredient *models.CatalogIngredient
	fields     []indexField
}

// RawCandidate is an index hit before confidence scoring: the catalog
// ingredient and its weighted name-level similarity to the query.
type RawCandidate struct {
	Ingredient *models.CatalogIngredient
	Similarity float64
}

// CategoryIndex holds the searchable entries for one ingredient type. Entries
// are normalized when the index is built; the index is read-only afterwards.
type CategoryIndex struct {
	ingredientType  string
	entries         []indexEntry
	searchThreshold float64
}

// Field weights per ingredient type. Name always dominates; secondary fields
// let a strong manufacturer or product-code hit surface a candidate whose
// display name shares nothing with the import.
func indexFieldsFor(ingredient *models.CatalogIngredient) []indexField {
	fields := []indexField{
		{value: NormalizeName(ingredient.Name), weight: 1.0},
		{value: NormalizeName(ingredient.Description), weight: 0.3},
	}

	switch ingredient.Type {
	case models.IngredientTypeGrain:
		fields = append(fields, indexField{value: NormalizeName(ingredient.GrainType), weight: 0.4})
	case models.IngredientTypeHop:
		fields = append(fields, indexField{value: NormalizeName(ingredient.Origin), weight: 0.2})
	case models.IngredientTypeYeast:
		fields = append(fields,
			indexField{value: NormalizeName(ingredient.Manufacturer), weight: 0.8},
			indexField{value: NormalizeName(ingredient.ProductCode), weight: 0.9},
		)
	}

	return fields
}

// NewCategoryIndex builds the approximate-search index for one ingredient
// type. searchThreshold is the coarse retrieval cutoff expressed as a maximum
// distance: an entry is kept when 1 - weightedSimilarity <= searchThreshold.
func NewCategoryIndex(ingredientType string, ingredients []*models.CatalogIngredient, searchThreshold float64) *CategoryIndex {
	index := &CategoryIndex{
		ingredientType:  ingredientType,
		entries:         make([]indexEntry, 0, len(ingredients)),
		searchThreshold: searchThreshold,
	}

	for _, ingredient := range ingredients {
		index.entries = append(index.entries, indexEntry{
			ingredient: ingredient,
			fields:     indexFieldsFor(ingredient),
		})
	}

	return index
}

// Size returns the number of indexed ingredients.
func (idx *CategoryIndex) Size() int {
	return len(idx.entries)
}

// Search returns catalog candidates whose best weighted field similarity to
// the query clears the retrieval threshold, ordered by similarity descending.
// The query is normalized here; callers pass the raw imported name.
func (idx *CategoryIndex) Search(name string) []RawCandidate {
	query := NormalizeName(name)

	candidates := make([]RawCandidate, 0)
	for _, entry := range idx.entries {
		best := 0.0
		for _, field := range entry.fields {
			if field.value == "" {
				continue
			}
			score := NameSimilarity(query, field.value) * field.weight
			if score > best {
				best = score
			}
		}

		if 1.0-best <= idx.searchThreshold {
			candidates = append(candidates, RawCandidate{
				Ingredient: entry.ingredient,
				Similarity: best,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})

	return candidates
}
