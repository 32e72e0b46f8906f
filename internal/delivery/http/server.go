package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/config"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/delivery/http/handler"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/delivery/http/middleware"
)

// Server - servidor HTTP sobre Fiber.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	sessionHandler *handler.SessionHandler
	statsHandler   *handler.StatsHandler
}

// NewServer - creación del servidor HTTP.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	sessionHandler *handler.SessionHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Dashboard Fiebre Amarilla Tolima",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		sessionHandler: sessionHandler,
		statsHandler:   statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - configuración de middleware.
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - configuración de rutas.
func (s *Server) setupRoutes() {
	// Documentación Swagger
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Sesiones del dashboard
	api.Post("/sessions", s.sessionHandler.Create)
	api.Get("/sessions/:id", s.sessionHandler.Get)
	api.Delete("/sessions/:id", s.sessionHandler.Delete)
	api.Get("/sessions/:id/data", s.sessionHandler.Data)
	api.Get("/sessions/:id/metrics", s.sessionHandler.Metrics)
	api.Put("/sessions/:id/filters", s.sessionHandler.UpdateFilters)
	api.Post("/sessions/:id/interactions", s.sessionHandler.Interact)
	api.Post("/sessions/:id/navigation/drill-up", s.sessionHandler.DrillUp)
	api.Post("/sessions/:id/navigation/reset", s.sessionHandler.ResetNavigation)

	// Referencia y estadística
	api.Get("/geography", s.statsHandler.GetGeography)
	api.Get("/stats", s.statsHandler.GetStatistics)
}

// Start - arranque del servidor HTTP.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - apagado ordenado del servidor HTTP.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - manejador de errores no atendidos por las rutas.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "HTTP_ERROR",
				"message": err.Error(),
			},
		})
	}
}
