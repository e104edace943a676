// Package ranking turns a structured quote request into an ordered list of
// inflatables. The pipeline is: load catalog, augment the query semantically
// when possible, hard-filter, resolve availability, classify the profile,
// score, and sort. Every semantic step degrades to the rule-based path on
// failure; a ranking request only errors when the catalog or scheduling
// store is unreachable.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmuchance/bouncematch/internal/availability"
	"github.com/dmuchance/bouncematch/internal/domain"
	"github.com/dmuchance/bouncematch/internal/logger"
	"github.com/dmuchance/bouncematch/internal/repository"
)

// Augmenter is the semantic layer as the ranking engine consumes it. All
// methods degrade internally: Analyze returns a zero Augmentation instead of
// an error, Personalize returns only the entries it managed to produce.
type Augmenter interface {
	// Enabled reports whether the semantic stack is configured at all.
	Enabled() bool

	// Analyze extracts structured attributes from the free-text description
	// and runs the vector search. Ran=false means the rule-based path.
	Analyze(ctx context.Context, q domain.QuoteRequest) domain.Augmentation

	// Personalize rewrites the reason strings of the leading candidates.
	// The returned map only holds ids it produced reasons for.
	Personalize(ctx context.Context, q domain.QuoteRequest, candidates []domain.RankedCandidate) map[string][]string
}

// Service defines the interface for ranking operations
type Service interface {
	Rank(ctx context.Context, q domain.QuoteRequest) (*domain.RankingResult, error)
}

// rankingService implements the Service interface
type rankingService struct {
	catalog   repository.Catalog
	resolver  availability.Resolver
	augmenter Augmenter
	cfg       ScoringConfig
}

// NewService creates a new ranking service
func NewService(catalog repository.Catalog, resolver availability.Resolver, augmenter Augmenter, cfg ScoringConfig) Service {
	return &rankingService{
		catalog:   catalog,
		resolver:  resolver,
		augmenter: augmenter,
		cfg:       cfg,
	}
}

// Rank executes the full matching pipeline for one quote request.
func (s *rankingService) Rank(ctx context.Context, q domain.QuoteRequest) (*domain.RankingResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRankingStarted, "event_type", q.EventType, "event_date", q.EventDate)

	items, err := s.catalog.ListActiveInflatables(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalog, err)
	}

	tags, err := s.catalog.ListActiveTags(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadTags, err)
	}
	tagsByID := make(map[string]domain.Tag, len(tags))
	for _, t := range tags {
		tagsByID[t.ID] = t
	}

	aug := s.augmenter.Analyze(ctx, q)
	if !aug.Ran && s.augmenter.Enabled() {
		log.Warn(LogMsgSemanticSkipped)
	}
	eff := aug.Effective(q)

	candidates := HardFilter(items, eff, aug.Similarities)

	ids := make([]string, len(candidates))
	for i := range candidates {
		ids[i] = candidates[i].ID
	}
	availableByID, err := s.resolver.ResolveAll(ctx, ids, eff.EventDate)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgResolveDates, err)
	}

	profile := ClassifyProfile(eff.EventType, eff.AgeMin, eff.AgeMax)

	ranked := make([]domain.RankedCandidate, 0, len(candidates))
	availableCount := 0
	for i := range candidates {
		item := &candidates[i]

		var similarity *float64
		if sim, ok := aug.Similarities[item.ID]; ok {
			similarity = &sim
		}
		result := ScoreCandidate(s.cfg, profile, item, tagsByID, eff, similarity)

		isAvailable := availableByID[item.ID]
		if isAvailable {
			availableCount++
		}
		ranked = append(ranked, domain.RankedCandidate{
			InflatableID:    item.ID,
			Inflatable:      item,
			Score:           result.Score,
			Reasons:         result.Reasons,
			Penalties:       result.Penalties,
			IsAvailable:     isAvailable,
			CalculatedPrice: item.BasePrice,
		})
	}

	// Available items first, then score descending. The stable sort keeps
	// the catalog's sort_order as the final tie-break.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].IsAvailable != ranked[j].IsAvailable {
			return ranked[i].IsAvailable
		}
		return ranked[i].Score > ranked[j].Score
	})

	// Ranks follow sort position 1..N; tied scores still take consecutive
	// distinct ranks.
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	if aug.Ran {
		s.personalize(ctx, eff, ranked)
	}

	log.Info(LogMsgRankingCompleted,
		"profile", string(profile),
		"total", len(ranked),
		"available", availableCount,
		"semantic", aug.Ran)

	return &domain.RankingResult{
		Results:         ranked,
		Profile:         profile,
		TotalCount:      len(ranked),
		AvailableCount:  availableCount,
		SemanticEnabled: aug.Ran,
	}, nil
}

// personalize replaces the reason strings of the leading candidates with
// LLM-written ones. Missing entries keep their rule-based reasons; the whole
// step is best-effort.
func (s *rankingService) personalize(ctx context.Context, q domain.QuoteRequest, ranked []domain.RankedCandidate) {
	top := ranked
	if len(top) > PersonalizeTopCount {
		top = top[:PersonalizeTopCount]
	}
	if len(top) == 0 {
		return
	}

	personalized := s.augmenter.Personalize(ctx, q, top)
	for i := range top {
		if reasons, ok := personalized[top[i].InflatableID]; ok && len(reasons) > 0 {
			ranked[i].Reasons = reasons
		}
	}
}
