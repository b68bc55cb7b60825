package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")
)

// IngredientRepository handles database operations for catalog ingredients
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) IngredientRepositoryInterface {
	return &IngredientRepository{
		db: db,
	}
}

// Create persists a new catalog ingredient
func (r *IngredientRepository) Create(ctx context.Context, ingredient *models.CatalogIngredient) error {
	if ingredient == nil {
		return errors.New("ingredient cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return fmt.Errorf("failed to create ingredient: %w", err)
	}

	return nil
}

// GetByID retrieves a catalog ingredient by its ID
func (r *IngredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CatalogIngredient, error) {
	var ingredient models.CatalogIngredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient by ID: %w", err)
	}

	return &ingredient, nil
}

// ListByType retrieves all catalog ingredients of one type, ordered by name
func (r *IngredientRepository) ListByType(ctx context.Context, ingredientType string) ([]*models.CatalogIngredient, error) {
	var ingredients []*models.CatalogIngredient

	if err := r.db.WithContext(ctx).
		Where("type = ?", ingredientType).
		Order("name ASC").
		Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to list ingredients by type: %w", err)
	}

	return ingredients, nil
}

// ListAll retrieves the entire catalog, ordered by type then name
func (r *IngredientRepository) ListAll(ctx context.Context) ([]*models.CatalogIngredient, error) {
	var ingredients []*models.CatalogIngredient

	if err := r.db.WithContext(ctx).
		Order("type ASC, name ASC").
		Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	return ingredients, nil
}

// Search filters the catalog by type and/or a case-insensitive name fragment
func (r *IngredientRepository) Search(ctx context.Context, ingredientType, query string) ([]*models.CatalogIngredient, error) {
	db := r.db.WithContext(ctx)

	if ingredientType != "" {
		db = db.Where("type = ?", ingredientType)
	}
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		db = db.Where("LOWER(name) LIKE ?", pattern)
	}

	var ingredients []*models.CatalogIngredient
	if err := db.Order("name ASC").Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}

	return ingredients, nil
}
