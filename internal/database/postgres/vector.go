package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmuchance/bouncematch/internal/domain"
	"github.com/dmuchance/bouncematch/internal/repository"
)

// VectorRepository implements the vector index on pgvector
type VectorRepository struct {
	pool *pgxpool.Pool
}

// NewVectorRepository creates a new VectorRepository
func NewVectorRepository(pool *pgxpool.Pool) repository.VectorIndex {
	return &VectorRepository{pool: pool}
}

// Upsert inserts or replaces the search document keyed by inflatable id
func (r *VectorRepository) Upsert(ctx context.Context, doc *domain.SearchDocument) error {
	metadata, err := json.Marshal(doc.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal search metadata: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO inflatable_search (inflatable_id, content, embedding, metadata, updated_at)
		 VALUES ($1, $2, $3::vector, $4, $5)
		 ON CONFLICT (inflatable_id) DO UPDATE SET
		   content = EXCLUDED.content,
		   embedding = EXCLUDED.embedding,
		   metadata = EXCLUDED.metadata,
		   updated_at = EXCLUDED.updated_at`,
		doc.InflatableID, doc.Content, vectorLiteral(doc.Embedding), metadata, doc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert search document: %w", err)
	}
	return nil
}

// Query returns the topK most similar documents above the threshold
func (r *VectorRepository) Query(ctx context.Context, embedding []float32, threshold float64, topK int) ([]domain.Similarity, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT inflatable_id, 1 - (embedding <=> $1::vector) AS similarity
		 FROM inflatable_search
		 WHERE 1 - (embedding <=> $1::vector) >= $2
		 ORDER BY embedding <=> $1::vector
		 LIMIT $3`,
		vectorLiteral(embedding), threshold, topK)
	if err != nil {
		return nil, fmt.Errorf("failed to query vector index: %w", err)
	}
	defer rows.Close()

	var hits []domain.Similarity
	for rows.Next() {
		var h domain.Similarity
		if err := rows.Scan(&h.InflatableID, &h.Score); err != nil {
			return nil, fmt.Errorf("failed to scan similarity: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read similarities: %w", err)
	}
	return hits, nil
}

// vectorLiteral renders an embedding in pgvector's input syntax: [x,y,z]
func vectorLiteral(embedding []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range embedding {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}
