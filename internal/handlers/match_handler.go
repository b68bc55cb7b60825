package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jackmisner/BrewTracker-sub011/internal/dto"
	apierrors "github.com/jackmisner/BrewTracker-sub011/internal/errors"
	"github.com/jackmisner/BrewTracker-sub011/internal/models"
	"github.com/jackmisner/BrewTracker-sub011/internal/services"
)

// MatchHandler handles ingredient matching HTTP requests
type MatchHandler struct {
	matcherService services.MatcherServiceInterface
	catalogService services.CatalogServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(
	matcherService services.MatcherServiceInterface,
	catalogService services.CatalogServiceInterface,
) *MatchHandler {
	return &MatchHandler{
		matcherService: matcherService,
		catalogService: catalogService,
	}
}

// MatchBatch matches a batch of imported ingredients against the catalog
// @Summary Match a batch of imported ingredients
// @Description Builds matching indices from the current catalog and reconciles each imported ingredient against it, in input order
// @Tags Matching
// @Accept json
// @Produce json
// @Param request body dto.MatchBatchRequest true "Imported ingredients"
// @Success 200 {object} dto.MatchBatchResponse "Match results and batch summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /match/batch [post]
func (h *MatchHandler) MatchBatch(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.MatchBatchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	catalog, err := h.catalogService.LoadCatalog(ctx)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.matcherService.BuildIndices(ctx, catalog)

	imported := make([]*models.ImportedIngredient, len(req.Ingredients))
	for i := range req.Ingredients {
		imported[i] = req.Ingredients[i].ToModel()
	}

	results, err := h.matcherService.MatchBatch(ctx, imported)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, &dto.MatchBatchResponse{
		Results: results,
		Summary: h.matcherService.Summarize(results),
	})
}

// MatchPreview matches one ingredient against the already-built indices
// @Summary Preview a single ingredient match
// @Description Matches one imported ingredient against the indices built by the most recent batch, consulting the result cache
// @Tags Matching
// @Accept json
// @Produce json
// @Param request body dto.MatchPreviewRequest true "Imported ingredient"
// @Success 200 {object} dto.MatchPreviewResponse "Match result"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 409 {object} errors.ErrorResponse "MATCH_001 - Matching indices have not been built"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /match/preview [post]
func (h *MatchHandler) MatchPreview(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.MatchPreviewRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.matcherService.MatchOne(ctx, req.Ingredient.ToModel())
	if err != nil {
		if errors.Is(err, services.ErrIndicesNotBuilt) {
			return SendError(c, apierrors.MatchIndicesNotBuilt)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, &dto.MatchPreviewResponse{Result: result})
}

// ClearCache drops all cached match results
// @Summary Clear the match result cache
// @Description Explicitly drops cached match outcomes, typically after the catalog changed
// @Tags Matching
// @Produce json
// @Success 200 {object} dto.ClearCacheResponse "Cache cleared"
// @Router /match/cache [delete]
func (h *MatchHandler) ClearCache(c echo.Context) error {
	h.matcherService.ClearCache(c.Request().Context())

	return c.JSON(http.StatusOK, &dto.ClearCacheResponse{
		Message: "match cache cleared",
	})
}
