package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

// MatchLogger emits the structured event log of the matching engine. Events
// carry the correlation id so a batch can be traced end to end.
type MatchLogger struct {
	logger *slog.Logger
}

func NewMatchLogger(logger *slog.Logger) *MatchLogger {
	return &MatchLogger{
		logger: logger,
	}
}

func (ml *MatchLogger) LogIndicesBuilt(ctx context.Context, ingredientCount int, duration time.Duration) {
	ml.logger.InfoContext(ctx, "matching indices built",
		slog.String("event_type", "indices_built"),
		slog.Int("ingredient_count", ingredientCount),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ml *MatchLogger) LogBatchStarted(ctx context.Context, batchSize int) {
	ml.logger.InfoContext(ctx, "match batch started",
		slog.String("event_type", "match_batch_started"),
		slog.Int("batch_size", batchSize),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ml *MatchLogger) LogBatchCompleted(ctx context.Context, summary *models.MatchSummary, duration time.Duration) {
	ml.logger.InfoContext(ctx, "match batch completed",
		slog.String("event_type", "match_batch_completed"),
		slog.Int("total", summary.Total),
		slog.Int("matched", summary.Matched),
		slog.Int("requires_new", summary.RequiresNew),
		slog.Float64("average_confidence", summary.AverageConfidence),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ml *MatchLogger) LogCacheHit(ctx context.Context, imported *models.ImportedIngredient) {
	ml.logger.DebugContext(ctx, "match cache hit",
		slog.String("event_type", "match_cache_hit"),
		slog.String("ingredient_type", imported.Type),
		slog.String("ingredient_name", imported.Name),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ml *MatchLogger) LogCacheCleared(ctx context.Context, clearedEntries int) {
	ml.logger.InfoContext(ctx, "match cache cleared",
		slog.String("event_type", "match_cache_cleared"),
		slog.Int("cleared_entries", clearedEntries),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ml *MatchLogger) LogUnknownType(ctx context.Context, imported *models.ImportedIngredient) {
	ml.logger.WarnContext(ctx, "unknown ingredient type",
		slog.String("event_type", "match_unknown_type"),
		slog.String("ingredient_type", imported.Type),
		slog.String("ingredient_name", imported.Name),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (ml *MatchLogger) LogMatchDegraded(ctx context.Context, imported *models.ImportedIngredient, reason string) {
	ml.logger.WarnContext(ctx, "match degraded to new ingredient",
		slog.String("event_type", "match_degraded"),
		slog.String("ingredient_type", imported.Type),
		slog.String("ingredient_name", imported.Name),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if traceID, ok := ctx.Value("trace_id").(string); ok {
		return traceID
	}

	return ""
}
