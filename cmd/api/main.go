package main

// @title Dashboard Fiebre Amarilla Tolima API
// @version 1.0.0
// @description Servicio de vigilancia epidemiológica de fiebre amarilla para el departamento del Tolima. Mantiene sesiones de dashboard con filtros y navegación geográfica sincronizados sobre casos humanos y epizootias.
// @description
// @description Capacidades principales:
// @description - Sesiones con criterio de filtros y navegación departamento → municipio → vereda
// @description - Interacciones de mapa: clic simple informa, doble clic desciende
// @description - Métricas agregadas del conjunto filtrado con nivel de riesgo
// @description - Estadística global del snapshot y referencia geográfica

// @contact.name Secretaría de Salud del Tolima
// @contact.email vigilancia@saludtolima.gov.co

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/MitxelSantos/dashboard-casos-fa/docs/swagger"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/config"
	httpDelivery "github.com/MitxelSantos/dashboard-casos-fa/internal/delivery/http"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/delivery/http/handler"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/logger"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/repository/cache"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/repository/postgres"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Dashboard Fiebre Amarilla API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

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
	log.Info("PostgreSQL connected")

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
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	caseRepo := postgres.NewCaseRepository(db, log)
	epizootiaRepo := postgres.NewEpizootiaRepository(db, log)
	geographyRepo := postgres.NewGeographyRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	datasetUC := usecase.NewDatasetUseCase(caseRepo, epizootiaRepo, geographyRepo, log)

	// Carga inicial del snapshot antes de aceptar tráfico.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 60*time.Second)
	snap, err := datasetUC.Load(loadCtx)
	loadCancel()
	if err != nil {
		log.Fatal("Failed to load initial dataset", zap.Error(err))
	}
	log.Info("Initial dataset loaded",
		zap.Int64("version", snap.Version),
		zap.Int("casos", len(snap.Casos)),
		zap.Int("epizootias", len(snap.Epizootias)))

	sessionUC := usecase.NewSessionUseCase(
		datasetUC,
		cacheRepo,
		log,
		cfg.Dashboard,
		cfg.Cache.MetricsCacheTTL,
	)

	statsUC := usecase.NewStatsUseCase(
		datasetUC,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	sessionHandler := handler.NewSessionHandler(sessionUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, sessionHandler, statsHandler)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
