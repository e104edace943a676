package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Reindex Worker
// ============================================================================

// Log messages for reindex worker operations
const (
	LogMsgReindexScheduled = "Catalog reindex scheduled"
	LogMsgReindexStarting  = "Catalog reindex starting"
	LogMsgReindexCompleted = "Catalog reindex completed"
	LogMsgReindexFailed    = "Catalog reindex failed"
	LogMsgReindexShutdown  = "Reindex worker shutdown complete"
)

// DefaultReindexInterval is how often the background worker refreshes the
// whole vector index when no interval is configured
const DefaultReindexInterval = 24 * time.Hour

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 4
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100
)
