package worker

import (
	"context"
	"sync"
	"time"

	"github.com/dmuchance/bouncematch/internal/domain"
	"github.com/dmuchance/bouncematch/internal/logger"
)

// CatalogIndexer is the indexing surface the workers consume.
type CatalogIndexer interface {
	SyncAll(ctx context.Context) (*domain.SyncReport, error)
}

// ReindexJob is a full catalog reindex run on the worker pool.
type ReindexJob struct {
	Indexer CatalogIndexer
}

// Process runs the full sync and logs the report.
func (j *ReindexJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReindexStarting)

	report, err := j.Indexer.SyncAll(ctx)
	if err != nil {
		return err
	}

	log.Info(LogMsgReindexCompleted,
		"synced", report.Synced,
		"failed", len(report.Errors),
		"total", report.Total)
	return nil
}

// ReindexWorker periodically enqueues a full-catalog reindex on the pool so
// the vector index stays consistent with catalog edits made outside the sync
// endpoints.
type ReindexWorker struct {
	indexer  CatalogIndexer
	pool     *Pool
	interval time.Duration
	timer    *time.Timer
	shutdown chan struct{}
	mu       sync.Mutex
}

// NewReindexWorker creates a new ReindexWorker
func NewReindexWorker(indexer CatalogIndexer, pool *Pool, interval time.Duration) *ReindexWorker {
	if interval <= 0 {
		interval = DefaultReindexInterval
	}
	return &ReindexWorker{
		indexer:  indexer,
		pool:     pool,
		interval: interval,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first run
func (w *ReindexWorker) Start() {
	w.scheduleNext()
}

func (w *ReindexWorker) scheduleNext() {
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.interval, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		w.pool.Enqueue(&ReindexJob{Indexer: w.indexer})
		w.scheduleNext()
	})
	w.mu.Unlock()

	log.Info(LogMsgReindexScheduled, "next_run_at", time.Now().UTC().Add(w.interval))
}

// Shutdown cancels the pending timer. In-flight reindex jobs belong to the
// pool and are drained by its Stop.
func (w *ReindexWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	close(w.shutdown)

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	log.Info(LogMsgReindexShutdown)
	return nil
}
