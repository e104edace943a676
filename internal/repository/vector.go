package repository

import (
	"context"

	"github.com/dmuchance/bouncematch/internal/domain"
)

// VectorIndex defines the interface for the semantic search store.
// Upserts are idempotent per inflatable id, so concurrent indexing runs
// racing on the same id converge to last-write-wins.
type VectorIndex interface {
	// Upsert inserts or replaces the document keyed by its InflatableID.
	Upsert(ctx context.Context, doc *domain.SearchDocument) error

	// Query returns up to topK documents with cosine similarity >= threshold
	// against the given embedding, most similar first.
	Query(ctx context.Context, embedding []float32, threshold float64, topK int) ([]domain.Similarity, error)
}
