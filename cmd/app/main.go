package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmuchance/bouncematch/internal/availability"
	"github.com/dmuchance/bouncematch/internal/bootstrap"
	"github.com/dmuchance/bouncematch/internal/config"
	"github.com/dmuchance/bouncematch/internal/database"
	"github.com/dmuchance/bouncematch/internal/database/postgres"
	"github.com/dmuchance/bouncematch/internal/handler"
	"github.com/dmuchance/bouncematch/internal/ranking"
	"github.com/dmuchance/bouncematch/internal/semantic"
	"github.com/dmuchance/bouncematch/internal/server"
	"github.com/dmuchance/bouncematch/internal/worker"
)

const (
	dbMaxConns      = 10
	dbMaxIdleTime   = 30 * time.Minute
	dbMaxLifetime   = time.Hour
	shutdownTimeout = 10 * time.Second
	poolWorkers     = 1
	poolQueueSize   = 4

	logMsgStarting       = "Starting bouncematch"
	logMsgConfLoaded     = "Configuration loaded"
	logMsgShutdownSignal = "Shutdown signal received"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info(logMsgStarting, "version", cfg.Version, "environment", cfg.Environment)
	slog.Info(logMsgConfLoaded, "port", cfg.Port, "semantic", cfg.SemanticEnabled())

	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)
	resolver := availability.NewResolver(repos.Scheduling)

	// The semantic stack only activates with full credentials; without
	// them ranking falls back to the rule-based pipeline and the sync
	// endpoints report the feature as unavailable.
	augmenter := semantic.Disabled()
	var syncService handler.SyncService
	var reindexWorker *worker.ReindexWorker
	var workerPool *worker.Pool

	if cfg.SemanticEnabled() {
		vectorPool, err := database.NewPool(cfg.GetVectorDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
		if err != nil {
			log.Fatalf("Failed to connect to vector store: %v", err)
		}
		defer vectorPool.Close()

		vectorRepo := postgres.NewVectorRepository(vectorPool)
		llm := semantic.NewOpenRouterClient(cfg.OpenRouterURL, cfg.OpenRouterKey, cfg.EmbeddingModel, cfg.CompletionModel)

		cache, err := semantic.NewEmbeddingCache(semantic.EmbeddingCacheSize)
		if err != nil {
			log.Fatalf("Failed to create embedding cache: %v", err)
		}

		augmenter = semantic.NewService(llm, cache, vectorRepo)

		indexer := semantic.NewIndexer(repos.Catalog, llm, cache, vectorRepo)
		syncService = indexer

		workerPool = worker.NewPool(poolWorkers, poolQueueSize)
		workerPool.Start()

		reindexWorker = worker.NewReindexWorker(indexer, workerPool, worker.DefaultReindexInterval)
		reindexWorker.Start()
	}

	rankingService := ranking.NewService(repos.Catalog, resolver, augmenter, ranking.DefaultScoringConfig())

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.AdminAPIKey, cfg.TrustedProxies, dbPool, rankingService, syncService)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	case sig := <-quit:
		slog.Info(logMsgShutdownSignal, "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:        srv,
		ReindexWorker: reindexWorker,
		WorkerPool:    workerPool,
	})
}
