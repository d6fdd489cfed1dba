package server

import (
	"context"
	"fmt"
	"time"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/config"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/logger"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/metrics"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "github.com/WalkerVVV/TransitIQ-Enhanced/docs/swagger"
)

// Pinger is a dependency whose reachability is reported by /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body returned by /healthz.
type HealthResponse struct {
	// Status is "ok" or "degraded".
	Status string `json:"status"`
	// Message explains a degraded status.
	Message string `json:"message,omitempty"`
}

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig
}

// New creates a new Server instance with configured middleware.
// The cache pinger may be nil, in which case /healthz always reports ok.
func New(cfg *config.AppConfig, m *metrics.Metrics, cache Pinger) *Server {
	bodyLimit := cfg.MaxUploadMB * 1024 * 1024
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "transitiq",
		BodyLimit:             bodyLimit,
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger:   logger.Get(),
		SkipURIs: []string{"/healthz", "/metrics"},
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if cache == nil {
			return c.JSON(HealthResponse{Status: "ok"})
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := cache.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(HealthResponse{
				Status:  "degraded",
				Message: err.Error(),
			})
		}
		return c.JSON(HealthResponse{Status: "ok"})
	})

	return &Server{
		App: app,
		cfg: cfg,
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}
