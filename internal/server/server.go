package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ridwanfathin/gst-billing-service/internal/config"
	"github.com/ridwanfathin/gst-billing-service/internal/handler"
	"github.com/ridwanfathin/gst-billing-service/internal/middleware"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted by the server
type Handlers struct {
	Root     *handler.RootHandler
	Shops    *handler.ShopHandler
	Invoices *handler.InvoiceHandler
}

// Server represents the HTTP server for the GST billing service
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	handlers   Handlers
	gatherer   prometheus.Gatherer
	logger     *zap.Logger
	config     *config.Config
}

// NewServer creates and configures a new server instance.
// gatherer backs /metrics; nil means the default Prometheus registry.
func NewServer(cfg *config.Config, logger *zap.Logger, gatherer prometheus.Gatherer, handlers Handlers) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestResponseLogger(logger, middleware.LoggerConfig{
		SkipPaths: []string{"/health", "/metrics"},
		LogBodies: cfg.LogLevel == "debug",
	}))

	server := &Server{
		router:   router,
		handlers: handlers,
		gatherer: gatherer,
		logger:   logger,
		config:   cfg,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	server.setupRoutes()

	return server
}

// GetRouter returns the gin router instance
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// setupRoutes configures all application routes
func (s *Server) setupRoutes() {
	if s.handlers.Root != nil {
		s.router.GET("/health", s.handlers.Root.Health)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	// API documentation endpoints
	// Access the Swagger UI at http://localhost:8080/api-docs/index.html
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)

	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})

	api := s.router.Group("/api")
	if s.handlers.Root != nil {
		api.GET("/", s.handlers.Root.Root)
	}
	if s.handlers.Shops != nil {
		s.handlers.Shops.Register(api)
	}
	if s.handlers.Invoices != nil {
		s.handlers.Invoices.Register(api)
	}
}

// Start begins listening for requests and handles graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.Int("port", s.config.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-quit:
		s.logger.Info("shutting down server", zap.String("signal", sig.String()))
	}

	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("server exited gracefully")
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
