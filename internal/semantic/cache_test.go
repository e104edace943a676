package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingCache(t *testing.T) {
	cache, err := NewEmbeddingCache(2)
	require.NoError(t, err)

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Put("a", []float32{1, 2})
	cache.Put("b", []float32{3, 4})

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2}, got)

	// Inserting a third entry evicts the least recently used one ("b")
	cache.Put("c", []float32{5, 6})
	assert.Equal(t, 2, cache.Len())
	_, ok = cache.Get("b")
	assert.False(t, ok)
	_, ok = cache.Get("a")
	assert.True(t, ok)
}
