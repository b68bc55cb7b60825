package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=repository_mocks/mock_repositories.go -package=repository_mocks

// IngredientRepositoryInterface is the persistence boundary of the ingredient
// catalog.
type IngredientRepositoryInterface interface {
	Create(ctx context.Context, ingredient *models.CatalogIngredient) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CatalogIngredient, error)
	ListByType(ctx context.Context, ingredientType string) ([]*models.CatalogIngredient, error)
	ListAll(ctx context.Context) ([]*models.CatalogIngredient, error)
	// Search filters by type and/or a case-insensitive name fragment; empty
	// arguments mean "no filter".
	Search(ctx context.Context, ingredientType, query string) ([]*models.CatalogIngredient, error)
}
