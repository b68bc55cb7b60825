package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jackmisner/BrewTracker-sub011/internal/models"
	"github.com/jackmisner/BrewTracker-sub011/internal/repositories"
)

var (
	ErrIngredientNotFound    = errors.New("ingredient not found")
	ErrInvalidIngredientType = errors.New("invalid ingredient type")
)

type catalogService struct {
	ingredientRepo repositories.IngredientRepositoryInterface
	metrics        MetricsRecorderInterface
}

// NewCatalogService creates the catalog access service used by the matching
// engine (catalog snapshots) and the ingredient endpoints.
func NewCatalogService(ingredientRepo repositories.IngredientRepositoryInterface, metrics MetricsRecorderInterface) CatalogServiceInterface {
	return &catalogService{
		ingredientRepo: ingredientRepo,
		metrics:        metrics,
	}
}

// LoadCatalog returns the full catalog grouped by ingredient type, the
// snapshot shape the engine's index builder consumes.
func (s *catalogService) LoadCatalog(ctx context.Context) (models.CatalogByType, error) {
	ingredients, err := s.ingredientRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	catalog := make(models.CatalogByType, len(models.AllIngredientTypes()))
	for _, ingredient := range ingredients {
		catalog[ingredient.Type] = append(catalog[ingredient.Type], ingredient)
	}

	return catalog, nil
}

// ListIngredients returns catalog ingredients, optionally filtered by type
// and by a name search query.
func (s *catalogService) ListIngredients(ctx context.Context, ingredientType, query string) ([]*models.CatalogIngredient, error) {
	if ingredientType != "" && !models.IsValidIngredientType(ingredientType) {
		return nil, ErrInvalidIngredientType
	}

	ingredients, err := s.ingredientRepo.Search(ctx, ingredientType, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	return ingredients, nil
}

// GetIngredient fetches a single catalog ingredient by id.
func (s *catalogService) GetIngredient(ctx context.Context, id uuid.UUID) (*models.CatalogIngredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrIngredientNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}

	return ingredient, nil
}

// CreateIngredient persists a new catalog ingredient, typically confirming a
// requires-new match outcome. Missing numeric attributes are filled from the
// per-type defaults so a sparse import still yields a usable catalog entry.
func (s *catalogService) CreateIngredient(ctx context.Context, data *models.NewIngredientData) (*models.CatalogIngredient, error) {
	if !models.IsValidIngredientType(data.Type) {
		return nil, ErrInvalidIngredientType
	}

	defaults := defaultsByType[data.Type]
	ingredient := &models.CatalogIngredient{
		Type:             data.Type,
		Name:             data.Name,
		Description:      data.Description,
		GrainType:        data.GrainType,
		Color:            firstFloat(data.Color, defaults.Color),
		Potential:        firstFloat(data.Potential, defaults.Potential),
		Origin:           data.Origin,
		AlphaAcid:        firstFloat(data.AlphaAcid, defaults.AlphaAcid),
		Manufacturer:     data.Manufacturer,
		ProductCode:      data.ProductCode,
		Attenuation:      firstFloat(data.Attenuation, defaults.Attenuation),
		MinTemperature:   firstFloat(data.MinTemperature, defaults.MinTemperature),
		MaxTemperature:   firstFloat(data.MaxTemperature, defaults.MaxTemperature),
		AlcoholTolerance: firstFloat(data.AlcoholTolerance, defaults.AlcoholTolerance),
	}

	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}

	s.metrics.RecordIngredientCreated(ingredient.Type)

	return ingredient, nil
}
