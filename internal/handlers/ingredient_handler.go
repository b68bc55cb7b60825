package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jackmisner/BrewTracker-sub011/internal/dto"
	apierrors "github.com/jackmisner/BrewTracker-sub011/internal/errors"
	"github.com/jackmisner/BrewTracker-sub011/internal/services"
)

// IngredientHandler handles catalog ingredient HTTP requests
type IngredientHandler struct {
	catalogService services.CatalogServiceInterface
}

// NewIngredientHandler creates a new ingredient handler
func NewIngredientHandler(catalogService services.CatalogServiceInterface) *IngredientHandler {
	return &IngredientHandler{
		catalogService: catalogService,
	}
}

// ListIngredients browses the ingredient catalog
// @Summary List catalog ingredients
// @Description List catalog ingredients, optionally filtered by type and a name search query
// @Tags Ingredients
// @Produce json
// @Param type query string false "Ingredient type" Enums(grain, hop, yeast, other)
// @Param q query string false "Name search query"
// @Success 200 {object} dto.ListIngredientsResponse "Catalog ingredients"
// @Failure 400 {object} errors.ErrorResponse "INGREDIENT_002 - Invalid ingredient type"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /ingredients [get]
func (h *IngredientHandler) ListIngredients(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ListIngredientsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ingredients, err := h.catalogService.ListIngredients(ctx, req.Type, req.Query)
	if err != nil {
		if errors.Is(err, services.ErrInvalidIngredientType) {
			return SendError(c, apierrors.IngredientInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, &dto.ListIngredientsResponse{
		Ingredients: ingredients,
		Count:       len(ingredients),
	})
}

// GetIngredient fetches one catalog ingredient by id
// @Summary Get a catalog ingredient
// @Description Fetch a single catalog ingredient by its ID
// @Tags Ingredients
// @Produce json
// @Param id path string true "Ingredient ID"
// @Success 200 {object} models.CatalogIngredient "Catalog ingredient"
// @Failure 400 {object} errors.ErrorResponse "INGREDIENT_003 - Invalid ingredient ID"
// @Failure 404 {object} errors.ErrorResponse "INGREDIENT_001 - Ingredient not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /ingredients/{id} [get]
func (h *IngredientHandler) GetIngredient(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.IngredientInvalidID)
	}

	ingredient, err := h.catalogService.GetIngredient(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrIngredientNotFound) {
			return SendError(c, apierrors.IngredientNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, ingredient)
}

// CreateIngredient creates a catalog ingredient
// @Summary Create a catalog ingredient
// @Description Create a catalog ingredient, typically confirming a requires-new match outcome; missing numeric attributes get per-type defaults
// @Tags Ingredients
// @Accept json
// @Produce json
// @Param request body dto.CreateIngredientRequest true "Ingredient to create"
// @Success 201 {object} models.CatalogIngredient "Created ingredient"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /ingredients [post]
func (h *IngredientHandler) CreateIngredient(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateIngredientRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ingredient, err := h.catalogService.CreateIngredient(ctx, req.ToNewIngredientData())
	if err != nil {
		if errors.Is(err, services.ErrInvalidIngredientType) {
			return SendError(c, apierrors.IngredientInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, ingredient)
}
