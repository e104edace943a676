package bootstrap

import (
	"context"
	"log/slog"

	"github.com/dmuchance/bouncematch/internal/server"
	"github.com/dmuchance/bouncematch/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server        *server.Server
	ReindexWorker *worker.ReindexWorker
	WorkerPool    *worker.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It stops the HTTP server first so no new requests arrive, then cancels the
// reindex worker's pending timer, then drains the worker pool. Errors during
// shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	// Worker and pool only exist when semantic search is configured.
	if components.ReindexWorker != nil {
		if err := components.ReindexWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgReindexShutdownFailed, "error", err)
		}
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}
