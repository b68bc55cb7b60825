package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	matchOutcomeMatched     = "matched"
	matchOutcomeRequiresNew = "requires_new"
)

type PrometheusMetrics struct {
	matchesTotal       *prometheus.CounterVec
	matchDuration      prometheus.Histogram
	matchesDegraded    *prometheus.CounterVec
	cacheEvents        *prometheus.CounterVec
	cacheClearedTotal  prometheus.Counter
	indexBuildDuration prometheus.Histogram
	indexSize          prometheus.Gauge
	ingredientsCreated *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		matchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingredient_matches_total",
				Help: "Total number of ingredient match decisions",
			},
			[]string{"ingredient_type", "outcome"},
		),
		matchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ingredient_match_duration_milliseconds",
				Help:    "Single ingredient match duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		matchesDegraded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingredient_matches_degraded_total",
				Help: "Total number of matches degraded to a new-ingredient outcome by a failure",
			},
			[]string{"ingredient_type"},
		),
		cacheEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingredient_match_cache_events_total",
				Help: "Match result cache hits and misses",
			},
			[]string{"ingredient_type", "event"},
		),
		cacheClearedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ingredient_match_cache_cleared_total",
				Help: "Total number of explicit match cache clears",
			},
		),
		indexBuildDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ingredient_index_build_duration_milliseconds",
				Help:    "Matching index build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		indexSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ingredient_index_size",
				Help: "Number of catalog ingredients in the matching indices",
			},
		),
		ingredientsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_ingredients_created_total",
				Help: "Total number of catalog ingredients created",
			},
			[]string{"ingredient_type"},
		),
	}
}

func (m *PrometheusMetrics) RecordMatch(ingredientType, outcome string, duration time.Duration) {
	m.matchesTotal.WithLabelValues(ingredientType, outcome).Inc()
	m.matchDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordMatchDegraded(ingredientType string) {
	m.matchesDegraded.WithLabelValues(ingredientType).Inc()
}

func (m *PrometheusMetrics) RecordCacheHit(ingredientType string) {
	m.cacheEvents.WithLabelValues(ingredientType, "hit").Inc()
}

func (m *PrometheusMetrics) RecordCacheMiss(ingredientType string) {
	m.cacheEvents.WithLabelValues(ingredientType, "miss").Inc()
}

func (m *PrometheusMetrics) RecordCacheClear(clearedEntries int) {
	m.cacheClearedTotal.Inc()
}

func (m *PrometheusMetrics) RecordIndexBuild(duration time.Duration, ingredientCount int) {
	m.indexBuildDuration.Observe(float64(duration.Milliseconds()))
	m.indexSize.Set(float64(ingredientCount))
}

func (m *PrometheusMetrics) RecordIngredientCreated(ingredientType string) {
	m.ingredientsCreated.WithLabelValues(ingredientType).Inc()
}
