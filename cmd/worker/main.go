package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/config"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/logger"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/repository/cache"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/repository/postgres"
	redisRepo "github.com/MitxelSantos/dashboard-casos-fa/internal/repository/redis"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/worker"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/worker/refresh"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Snapshot Refresh Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup))

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	healthCtx, healthCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer healthCancel()

	if err := db.Health(healthCtx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(healthCtx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	// 6. Initialize repositories
	caseRepo := postgres.NewCaseRepository(db, log)
	epizootiaRepo := postgres.NewEpizootiaRepository(db, log)
	geographyRepo := postgres.NewGeographyRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 7. Initialize use cases
	datasetUC := usecase.NewDatasetUseCase(caseRepo, epizootiaRepo, geographyRepo, log)

	// 8. Initialize workers
	refreshWorker := refresh.NewSnapshotRefreshWorker(
		streamRepo,
		cacheRepo,
		datasetUC,
		cfg.Worker.ConsumerGroup,
		log,
	)

	// 9. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(refreshWorker)

	// 10. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
