package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/jackmisner/BrewTracker-sub011/internal/config"
	"github.com/jackmisner/BrewTracker-sub011/internal/database"
	"github.com/jackmisner/BrewTracker-sub011/internal/handlers"
	"github.com/jackmisner/BrewTracker-sub011/internal/repositories"
	"github.com/jackmisner/BrewTracker-sub011/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg),
	}))
	slog.SetDefault(logger)

	log.Printf("Starting BrewTracker import matching service")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Matching: acceptance=%.2f search=%.2f penalty=%.2f top=%d",
		cfg.Matching.AcceptanceThreshold,
		cfg.Matching.SearchThreshold,
		cfg.Matching.MismatchPenalty,
		cfg.Matching.MaxCandidates)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	ingredientRepo := repositories.NewIngredientRepository(db)

	metrics := services.NewPrometheusMetrics()
	matchLogger := services.NewMatchLogger(logger)

	catalogService := services.NewCatalogService(ingredientRepo, metrics)
	matcherService := services.NewMatcherService(services.MatcherOptions{
		AcceptanceThreshold: cfg.Matching.AcceptanceThreshold,
		SearchThreshold:     cfg.Matching.SearchThreshold,
		MismatchPenalty:     cfg.Matching.MismatchPenalty,
		MaxCandidates:       cfg.Matching.MaxCandidates,
	}, matchLogger, metrics)

	e := handlers.SetupRouter(cfg, db, matcherService, catalogService)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := e.Start(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func logLevel(cfg *config.Config) slog.Level {
	if cfg.IsDevelopment() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
