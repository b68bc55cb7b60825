package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=service_mocks/mock_services.go -package=service_mocks

// MatcherServiceInterface is the ingredient matching engine.
type MatcherServiceInterface interface {
	// BuildIndices replaces the per-type search indices with ones built from
	// the given catalog snapshot.
	BuildIndices(ctx context.Context, catalog models.CatalogByType)
	// MatchBatch matches imported ingredients in input order. Fails only when
	// indices were never built; individual ingredient failures degrade to
	// requires-new outcomes.
	MatchBatch(ctx context.Context, imported []*models.ImportedIngredient) ([]*models.MatchResult, error)
	// MatchOne matches a single imported ingredient, consulting the result
	// cache first.
	MatchOne(ctx context.Context, imported *models.ImportedIngredient) (*models.MatchResult, error)
	// Summarize aggregates results for reviewer-facing display.
	Summarize(results []*models.MatchResult) *models.MatchSummary
	// ClearCache drops all cached match results.
	ClearCache(ctx context.Context)
}

// CatalogServiceInterface exposes the ingredient catalog to the matching
// engine and the HTTP layer.
type CatalogServiceInterface interface {
	LoadCatalog(ctx context.Context) (models.CatalogByType, error)
	ListIngredients(ctx context.Context, ingredientType, query string) ([]*models.CatalogIngredient, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*models.CatalogIngredient, error)
	CreateIngredient(ctx context.Context, data *models.NewIngredientData) (*models.CatalogIngredient, error)
}

// MetricsRecorderInterface records operational metrics for the matching
// engine and the catalog.
type MetricsRecorderInterface interface {
	RecordMatch(ingredientType, outcome string, duration time.Duration)
	RecordMatchDegraded(ingredientType string)
	RecordCacheHit(ingredientType string)
	RecordCacheMiss(ingredientType string)
	RecordCacheClear(clearedEntries int)
	RecordIndexBuild(duration time.Duration, ingredientCount int)
	RecordIngredientCreated(ingredientType string)
}
