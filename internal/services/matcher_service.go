package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackmisner/BrewTracker-sub011/internal/models"
)

var (
	// ErrIndicesNotBuilt means a caller asked for a match before loading the
	// catalog into the engine. That is an integration bug, not a data-quality
	// problem, so it surfaces as an error instead of a requires-new fallback.
	ErrIndicesNotBuilt = errors.New("matching indices have not been built")
)

// MatcherOptions are the tunable thresholds of the engine. Defaults live in
// the config package; the zero value is not usable.
type MatcherOptions struct {
	// AcceptanceThreshold is the minimum confidence (exclusive) for an
	// automatic match.
	AcceptanceThreshold float64
	// SearchThreshold is the coarse index retrieval cutoff, expressed as a
	// maximum distance (1 - similarity).
	SearchThreshold float64
	// MismatchPenalty multiplies the confidence when a significant numeric
	// mismatch is present.
	MismatchPenalty float64
	// MaxCandidates caps how many scored candidates a result carries.
	MaxCandidates int
}

type matcherService struct {
	options MatcherOptions
	scorer  *ConfidenceScorer
	logger  *MatchLogger
	metrics MetricsRecorderInterface

	mu      sync.RWMutex
	indices map[string]*CategoryIndex
	cache   map[string]*models.MatchResult
}

// NewMatcherService creates the ingredient matching engine. Indices must be
// built from a catalog snapshot before any matching call.
func NewMatcherService(options MatcherOptions, logger *MatchLogger, metrics MetricsRecorderInterface) MatcherServiceInterface {
	return &matcherService{
		options: options,
		scorer:  NewConfidenceScorer(options.MismatchPenalty),
		logger:  logger,
		metrics: metrics,
		cache:   make(map[string]*models.MatchResult),
	}
}

// BuildIndices replaces the engine's per-type indices with ones built from the
// given catalog snapshot. The result cache is left alone; callers decide when
// cached outcomes are stale via ClearCache.
func (s *matcherService) BuildIndices(ctx context.Context, catalog models.CatalogByType) {
	start := time.Now()

	indices := make(map[string]*CategoryIndex, len(models.AllIngredientTypes()))
	total := 0
	for _, ingredientType := range models.AllIngredientTypes() {
		ingredients := catalog[ingredientType]
		indices[ingredientType] = NewCategoryIndex(ingredientType, ingredients, s.options.SearchThreshold)
		total += len(ingredients)
	}

	s.mu.Lock()
	s.indices = indices
	s.mu.Unlock()

	duration := time.Since(start)
	s.logger.LogIndicesBuilt(ctx, total, duration)
	s.metrics.RecordIndexBuild(duration, total)
}

// MatchBatch matches imported ingredients in input order. A failure while
// matching one ingredient degrades that ingredient to a requires-new outcome
// and never aborts the rest of the batch.
func (s *matcherService) MatchBatch(ctx context.Context, imported []*models.ImportedIngredient) ([]*models.MatchResult, error) {
	if !s.indicesBuilt() {
		return nil, ErrIndicesNotBuilt
	}

	start := time.Now()
	s.logger.LogBatchStarted(ctx, len(imported))

	results := make([]*models.MatchResult, 0, len(imported))
	for _, ingredient := range imported {
		results = append(results, s.matchGuarded(ctx, ingredient))
	}

	summary := s.Summarize(results)
	s.logger.LogBatchCompleted(ctx, summary, time.Since(start))

	return results, nil
}

// MatchOne matches a single imported ingredient against the built indices,
// consulting the result cache first.
func (s *matcherService) MatchOne(ctx context.Context, imported *models.ImportedIngredient) (*models.MatchResult, error) {
	if !s.indicesBuilt() {
		return nil, ErrIndicesNotBuilt
	}

	return s.matchGuarded(ctx, imported), nil
}

// ClearCache drops every cached match result. Call after the catalog changes;
// the engine never invalidates implicitly.
func (s *matcherService) ClearCache(ctx context.Context) {
	s.mu.Lock()
	cleared := len(s.cache)
	s.cache = make(map[string]*models.MatchResult)
	s.mu.Unlock()

	s.logger.LogCacheCleared(ctx, cleared)
	s.metrics.RecordCacheClear(cleared)
}

// Summarize aggregates batch results for reviewer-facing display. Confidence
// tiers and the average cover matched results only.
func (s *matcherService) Summarize(results []*models.MatchResult) *models.MatchSummary {
	summary := &models.MatchSummary{
		Total:  len(results),
		ByType: make(map[string]models.TypeSummary),
	}

	confidenceSum := 0.0
	for _, result := range results {
		typeSummary := summary.ByType[result.Imported.Type]
		typeSummary.Total++

		if result.RequiresNew {
			summary.RequiresNew++
			typeSummary.RequiresNew++
		} else {
			summary.Matched++
			typeSummary.Matched++
			confidenceSum += result.Confidence

			switch {
			case result.Confidence >= 0.8:
				summary.HighConfidence++
			case result.Confidence >= 0.6:
				summary.MediumConfidence++
			default:
				summary.LowConfidence++
			}
		}

		summary.ByType[result.Imported.Type] = typeSummary
	}

	if summary.Matched > 0 {
		summary.AverageConfidence = confidenceSum / float64(summary.Matched)
	}

	return summary
}

// matchGuarded isolates a single ingredient's matching behind a panic
// recovery boundary so one malformed record cannot take down a batch.
func (s *matcherService) matchGuarded(ctx context.Context, imported *models.ImportedIngredient) (result *models.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.LogMatchDegraded(ctx, imported, fmt.Sprintf("panic: %v", r))
			s.metrics.RecordMatchDegraded(imported.Type)
			result = s.requiresNewResult(imported, nil)
		}
	}()

	return s.match(ctx, imported)
}

func (s *matcherService) match(ctx context.Context, imported *models.ImportedIngredient) *models.MatchResult {
	start := time.Now()

	if !models.IsValidIngredientType(imported.Type) {
		s.logger.LogUnknownType(ctx, imported)
		s.metrics.RecordMatch(imported.Type, matchOutcomeRequiresNew, time.Since(start))
		return s.requiresNewResult(imported, nil)
	}

	signature := cacheSignature(imported)
	if cached := s.cachedResult(signature); cached != nil {
		s.logger.LogCacheHit(ctx, imported)
		s.metrics.RecordCacheHit(imported.Type)
		return cached
	}
	s.metrics.RecordCacheMiss(imported.Type)

	s.mu.RLock()
	index := s.indices[imported.Type]
	s.mu.RUnlock()

	candidates := s.scoreCandidates(imported, index.Search(imported.Name))

	result := s.decide(imported, candidates)

	s.mu.Lock()
	s.cache[signature] = result
	s.mu.Unlock()

	outcome := matchOutcomeMatched
	if result.RequiresNew {
		outcome = matchOutcomeRequiresNew
	}
	s.metrics.RecordMatch(imported.Type, outcome, time.Since(start))

	return result
}

// scoreCandidates runs the confidence scorer over index hits and returns them
// ordered by confidence descending, capped at MaxCandidates.
func (s *matcherService) scoreCandidates(imported *models.ImportedIngredient, raw []RawCandidate) []*models.MatchCandidate {
	candidates := make([]*models.MatchCandidate, 0, len(raw))
	for _, candidate := range raw {
		confidence, reasons := s.scorer.Score(imported, candidate.Ingredient, candidate.Similarity)
		candidates = append(candidates, &models.MatchCandidate{
			Ingredient: candidate.Ingredient,
			Confidence: confidence,
			NameScore:  candidate.Similarity,
			Reasons:    reasons,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	if len(candidates) > s.options.MaxCandidates {
		candidates = candidates[:s.options.MaxCandidates]
	}

	return candidates
}

// decide applies the acceptance threshold: strictly above it, the best
// candidate wins; at or below it, the import needs a new catalog entry.
func (s *matcherService) decide(imported *models.ImportedIngredient, candidates []*models.MatchCandidate) *models.MatchResult {
	if len(candidates) > 0 && candidates[0].Confidence > s.options.AcceptanceThreshold {
		return &models.MatchResult{
			Imported:   imported,
			Candidates: candidates,
			BestMatch:  candidates[0],
			Confidence: candidates[0].Confidence,
		}
	}

	return s.requiresNewResult(imported, candidates)
}

func (s *matcherService) requiresNewResult(imported *models.ImportedIngredient, candidates []*models.MatchCandidate) *models.MatchResult {
	confidence := 0.0
	if len(candidates) > 0 {
		confidence = candidates[0].Confidence
	}

	return &models.MatchResult{
		Imported:      imported,
		Candidates:    candidates,
		Confidence:    confidence,
		RequiresNew:   true,
		NewIngredient: synthesizeNewIngredient(imported),
	}
}

func (s *matcherService) indicesBuilt() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indices != nil
}

func (s *matcherService) cachedResult(signature string) *models.MatchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[signature]
}

// cacheSignature identifies an imported record by its type, raw name and the
// numeric attributes that discriminate products within the type. Two imports
// with the same signature get the same outcome within a session.
func cacheSignature(imported *models.ImportedIngredient) string {
	switch imported.Type {
	case models.IngredientTypeGrain:
		return fmt.Sprintf("%s|%s|%s|%s", imported.Type, imported.Name, formatSignatureValue(imported.Color), formatSignatureValue(imported.Potential))
	case models.IngredientTypeHop:
		return fmt.Sprintf("%s|%s|%s", imported.Type, imported.Name, formatSignatureValue(imported.AlphaAcid))
	case models.IngredientTypeYeast:
		return fmt.Sprintf("%s|%s|%s", imported.Type, imported.Name, formatSignatureValue(imported.Attenuation))
	default:
		return fmt.Sprintf("%s|%s", imported.Type, imported.Name)
	}
}

func formatSignatureValue(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}
