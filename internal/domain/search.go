package domain

import "time"

// SearchDocument is the indexed representation of one inflatable in the
// vector store: the canonical text, its embedding, and display metadata.
// Keyed by InflatableID with insert-or-replace semantics.
type SearchDocument struct {
	InflatableID string                 `json:"inflatable_id"`
	Content      string                 `json:"content"`
	Embedding    []float32              `json:"embedding"`
	Metadata     map[string]interface{} `json:"metadata"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// Similarity is one vector-search hit: an indexed item and its cosine
// similarity to the query embedding, in [0,1].
type Similarity struct {
	InflatableID string  `json:"inflatable_id"`
	Score        float64 `json:"similarity"`
}

// SyncReport summarizes a batch indexing run. Per-item failures are
// collected, not fatal.
type SyncReport struct {
	Synced int      `json:"synced"`
	Errors []string `json:"errors"`
	Total  int      `json:"total"`
}
