package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameRankingsServed       = "rankings_served_total"
	MetricNameRankingDuration      = "ranking_duration_seconds"
	MetricNameSemanticDegradations = "semantic_degradations_total"
	MetricNameItemsIndexed         = "items_indexed_total"
	MetricNameIndexSyncErrors      = "index_sync_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextRankingsServed       = "Total number of ranking requests served"
	HelpTextRankingDuration      = "Ranking pipeline latency in seconds"
	HelpTextSemanticDegradations = "Total number of times the semantic path degraded to rule-based ranking"
	HelpTextItemsIndexed         = "Total number of inflatables written to the vector index"
	HelpTextIndexSyncErrors      = "Total number of per-item failures during index sync"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelProfile  = "profile"
	LabelSemantic = "semantic"
	LabelStage    = "stage"
)

// Semantic pipeline stages reported on degradation
const (
	StageExtraction      = "extraction"
	StageEmbedding       = "embedding"
	StageVectorQuery     = "vector_query"
	StagePersonalization = "personalization"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RankingLatencyBuckets skews higher than the HTTP buckets because the
// semantic path includes model API round trips
var RankingLatencyBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 20}
