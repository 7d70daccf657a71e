package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "github.com/ridwanfathin/gst-billing-service/docs"
	"github.com/ridwanfathin/gst-billing-service/internal/config"
	"github.com/ridwanfathin/gst-billing-service/internal/database"
	"github.com/ridwanfathin/gst-billing-service/internal/handler"
	"github.com/ridwanfathin/gst-billing-service/internal/logger"
	"github.com/ridwanfathin/gst-billing-service/internal/metrics"
	"github.com/ridwanfathin/gst-billing-service/internal/pdf"
	"github.com/ridwanfathin/gst-billing-service/internal/repository"
	"github.com/ridwanfathin/gst-billing-service/internal/server"
	"github.com/ridwanfathin/gst-billing-service/internal/service"
	"github.com/ridwanfathin/gst-billing-service/internal/storage"
)

const startupTimeout = 30 * time.Second

// @title GST Billing API
// @version 1.0
// @description Invoices for Indian GST: CGST/SGST totals, amounts in words and PDF tax invoices.
// @BasePath /
func main() {
	// Load configuration
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Fatal("server error", zap.Error(err))
	}

	fmt.Println("Server shutdown complete")
}

func run(cfg *config.Config, appLogger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	var (
		invoiceRepo repository.InvoiceRepository
		shopRepo    repository.ShopRepository
		ping        func(context.Context) error
	)

	// Initialize repository
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		appLogger.Warn("using in-memory storage")
		repo := repository.NewMemoryRepository()
		invoiceRepo, shopRepo = repo, repo
	default:
		db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()

		if cfg.RunMigrations {
			appLogger.Info("applying database migrations")
			if err := db.RunMigrations(); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
		}

		pool := db.GetPool()
		invoiceRepo = repository.NewPostgresInvoiceRepository(pool)
		shopRepo = repository.NewPostgresShopRepository(pool)
		ping = pool.Ping
	}

	// Invoice PDF archive is optional
	var archiver service.InvoiceArchiver
	if cfg.ArchiveEnabled() {
		s3Archiver, err := storage.NewS3Archiver(&storage.Config{
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			AccessKeySecret: cfg.S3AccessKeySecret,
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
		})
		if err != nil {
			return fmt.Errorf("configure invoice archive: %w", err)
		}
		archiver = s3Archiver
		appLogger.Info("invoice archive enabled", zap.String("bucket", cfg.S3Bucket))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Create services
	invoiceService := service.NewInvoiceService(
		invoiceRepo,
		pdf.NewInvoiceRenderer(),
		archiver,
		metrics.New(registry),
		appLogger.Named("invoice"),
		cfg.MaxWorkers,
	)
	shopService := service.NewShopService(shopRepo, appLogger.Named("shop"))

	// Create and configure server
	appServer := server.NewServer(cfg, appLogger.Named("http"), registry, server.Handlers{
		Root:     handler.NewRootHandler(cfg.StorageDriver, ping),
		Shops:    handler.NewShopHandler(shopService),
		Invoices: handler.NewInvoiceHandler(invoiceService),
	})

	// Start server (blocking call)
	return appServer.Start()
}
