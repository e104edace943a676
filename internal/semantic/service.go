package semantic

import (
	"context"
	"sync"

	"github.com/dmuchance/bouncematch/internal/domain"
	"github.com/dmuchance/bouncematch/internal/logger"
	"github.com/dmuchance/bouncematch/internal/metrics"
	"github.com/dmuchance/bouncematch/internal/repository"
)

// Service is the query-time semantic augmenter. Every method is best-effort:
// a failed model call or vector query logs, bumps the degradation counter,
// and returns whatever was gathered so far.
type Service struct {
	llm     LLM
	cache   *EmbeddingCache
	vectors repository.VectorIndex
	enabled bool
}

// NewService creates a new semantic service
func NewService(llm LLM, cache *EmbeddingCache, vectors repository.VectorIndex) *Service {
	return &Service{
		llm:     llm,
		cache:   cache,
		vectors: vectors,
		enabled: true,
	}
}

// Disabled returns a service that reports Enabled()=false and augments
// nothing. Used when the semantic credentials are not configured.
func Disabled() *Service {
	return &Service{}
}

// Enabled reports whether the semantic stack is configured.
func (s *Service) Enabled() bool {
	return s.enabled
}

// Analyze extracts structured attributes from the free-text description and
// runs the vector search. Ran=true only when the vector search delivered;
// extraction results are kept even when the later steps degrade.
func (s *Service) Analyze(ctx context.Context, q domain.QuoteRequest) domain.Augmentation {
	if !s.enabled || q.UserDescription == "" {
		return domain.Augmentation{}
	}
	log := logger.FromContext(ctx)

	var aug domain.Augmentation

	// Extraction and embedding are independent model calls; run them in
	// parallel so the slower one bounds the latency.
	var (
		wg         sync.WaitGroup
		extracted  domain.ExtractedAttributes
		extractErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		extracted, extractErr = extractAttributes(ctx, s.llm, q.UserDescription)
	}()

	embedding, err := s.embed(ctx, q.UserDescription)
	wg.Wait()

	if extractErr != nil {
		log.Warn(LogMsgExtractionFailed, "error", extractErr)
		metrics.SemanticDegradations.WithLabelValues(metrics.StageExtraction).Inc()
	} else {
		aug.Extracted = extracted
	}

	if err != nil {
		log.Warn(LogMsgEmbeddingFailed, "error", err)
		metrics.SemanticDegradations.WithLabelValues(metrics.StageEmbedding).Inc()
		return aug
	}

	hits, err := s.vectors.Query(ctx, embedding, SearchThreshold, SearchTopK)
	if err != nil {
		log.Warn(LogMsgVectorQueryFailed, "error", err)
		metrics.SemanticDegradations.WithLabelValues(metrics.StageVectorQuery).Inc()
		return aug
	}

	similarities := make(map[string]float64, len(hits))
	for _, hit := range hits {
		similarities[hit.InflatableID] = hit.Score
	}

	aug.Ran = true
	aug.Similarities = similarities
	return aug
}

// Personalize rewrites the reason strings of the leading candidates. On any
// failure the rule-based reasons stay; the caller never sees an error.
func (s *Service) Personalize(ctx context.Context, q domain.QuoteRequest, candidates []domain.RankedCandidate) map[string][]string {
	if !s.enabled || len(candidates) == 0 {
		return nil
	}

	personalized, err := personalizeReasons(ctx, s.llm, q, candidates)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPersonalizationFailed, "error", err)
		metrics.SemanticDegradations.WithLabelValues(metrics.StagePersonalization).Inc()
		return nil
	}
	return personalized
}

// embed returns the embedding for a text, consulting the cache first.
func (s *Service) embed(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := s.cache.Get(text); ok {
		return cached, nil
	}
	embedding, err := s.llm.CreateEmbedding(ctx, text)
	if err != nil {
		return nil, err
	}
	s.cache.Put(text, embedding)
	return embedding, nil
}
