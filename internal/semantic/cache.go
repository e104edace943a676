package semantic

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// EmbeddingCache memoizes embedding vectors by input text, so repeated
// queries and re-syncs of unchanged content skip the API round trip. Keys are
// content hashes; the cache never stores the raw text.
type EmbeddingCache struct {
	entries *lru.Cache[string, []float32]
}

// NewEmbeddingCache creates a new bounded embedding cache
func NewEmbeddingCache(size int) (*EmbeddingCache, error) {
	entries, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, err
	}
	return &EmbeddingCache{entries: entries}, nil
}

// Get returns the cached embedding for a text, if present.
func (c *EmbeddingCache) Get(text string) ([]float32, bool) {
	return c.entries.Get(cacheKey(text))
}

// Put stores the embedding for a text, evicting the least recently used
// entry when the cache is full.
func (c *EmbeddingCache) Put(text string, embedding []float32) {
	c.entries.Add(cacheKey(text), embedding)
}

// Len reports the number of cached embeddings.
func (c *EmbeddingCache) Len() int {
	return c.entries.Len()
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
