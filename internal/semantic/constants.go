package semantic

import "time"

// Vector search tuning
const (
	SearchTopK      = 12  // candidates requested from the vector index
	SearchThreshold = 0.3 // minimum cosine similarity to count as a hit
)

// Personalization
const (
	PersonalizeMaxReasons = 3 // reasons requested per candidate
)

// Outbound client settings
const (
	RequestTimeout       = 10 * time.Second
	EmbeddingCacheSize   = 512
	BreakerMaxRequests   = 3
	BreakerInterval      = 15 * time.Second
	BreakerTimeout       = 30 * time.Second
	BreakerMinRequests   = 3
	BreakerFailureRatio  = 0.6
	CompletionTemp       = 0.0
	EmbeddingEndpoint    = "/embeddings"
	CompletionEndpoint   = "/chat/completions"
)

// Indexing
const (
	SyncBatchSize  = 20
	SyncBatchDelay = 500 * time.Millisecond
)

// Log messages
const (
	LogMsgExtractionFailed      = "Attribute extraction failed, continuing without it"
	LogMsgEmbeddingFailed       = "Embedding failed, falling back to rule-based ranking"
	LogMsgVectorQueryFailed     = "Vector query failed, falling back to rule-based ranking"
	LogMsgPersonalizationFailed = "Personalization failed, keeping rule-based reasons"
	LogMsgSyncStarted           = "Catalog sync started"
	LogMsgSyncCompleted         = "Catalog sync completed"
	LogMsgItemSyncFailed        = "Item sync failed"
)

// Error messages
const (
	ErrMsgCompletionRequest = "completion request failed: %w"
	ErrMsgCompletionStatus  = "completion request returned status %d"
	ErrMsgCompletionEmpty   = "completion response had no choices"
	ErrMsgEmbeddingRequest  = "embedding request failed: %w"
	ErrMsgEmbeddingStatus   = "embedding request returned status %d"
	ErrMsgEmbeddingEmpty    = "embedding response had no data"
	ErrMsgBuildEmbedding    = "failed to embed %q: %w"
	ErrMsgUpsertDocument    = "failed to upsert search document for %s: %w"
)
