package handlers

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/jackmisner/BrewTracker-sub011/internal/config"
	custommiddleware "github.com/jackmisner/BrewTracker-sub011/internal/middleware"
	"github.com/jackmisner/BrewTracker-sub011/internal/services"
)

// SetupRouter wires middleware, handlers and routes into an echo instance.
func SetupRouter(
	cfg *config.Config,
	db *gorm.DB,
	matcherService services.MatcherServiceInterface,
	catalogService services.CatalogServiceInterface,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	healthHandler := NewHealthCheckHandler(db)
	matchHandler := NewMatchHandler(matcherService, catalogService)
	ingredientHandler := NewIngredientHandler(catalogService)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")

	match := v1.Group("/match")
	match.POST("/batch", matchHandler.MatchBatch)
	match.POST("/preview", matchHandler.MatchPreview)
	match.DELETE("/cache", matchHandler.ClearCache)

	ingredients := v1.Group("/ingredients")
	ingredients.GET("", ingredientHandler.ListIngredients)
	ingredients.POST("", ingredientHandler.CreateIngredient)
	ingredients.GET("/:id", ingredientHandler.GetIngredient)

	return e
}
