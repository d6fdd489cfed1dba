package main

import (
	"context"
	"log"
	"time"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/cache"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/config"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/httpclient"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/logger"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/metrics"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/server"
	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/core/validation"
	analyticsadapter "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/adapters"
	analyticshandler "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/handler"
	analyticsservice "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/service"
	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
	refhandler "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/handler"
	reportservice "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reports/service"
	shipadapter "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/adapters"
	shipservice "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/service"

	"go.uber.org/zap"
)

// @title TransitIQ API
// @version 1.0
// @description Shipment analytics: ingests carrier exports and reports SLA, zone, carrier and cost KPIs with routing recommendations.
// @contact.name API Support
// @contact.email support@transitiq.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	m := metrics.New()

	// Initialize Result Cache
	redisCache, err := cache.NewRedisAdapter(cfg.Cache.RedisURL, "transitiq")
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Warn("Redis unreachable, analyses will not be retrievable", zap.Error(err))
	} else {
		l.Info("Redis connection verified")
	}
	cancel()

	ref := refdomain.Default()
	validator := validation.New()

	// Initialize Ingestion
	remoteClient := httpclient.NewPublicClient(cfg.Remote.Timeout())
	if cfg.Remote.AllowPrivateNetworks {
		l.Warn("Remote fetch may reach private networks")
		remoteClient = httpclient.NewClient(cfg.Remote.Timeout())
	}
	fetcher := shipadapter.NewRemoteFetcher(remoteClient, cfg.Remote.MaxBytes, cfg.Remote.Hosts()...)
	normalizer := shipservice.NewNormalizer(ref, m)
	ingestSvc := shipservice.NewIngestService(shipadapter.NewCSVReader(), shipadapter.NewExcelReader(), fetcher, normalizer, m)
	demo := shipservice.NewDemoGenerator(ref, cfg.Demo, time.Now)

	// Initialize Analytics Service & Handler
	engine := analyticsservice.NewEngine(ref, m)
	store := analyticsadapter.NewRedisResultStore(redisCache, cfg.Cache.ResultTTL())
	analysisSvc := analyticsservice.NewAnalysisService(ingestSvc, demo, engine, store, m)
	exporter := reportservice.NewExportService(m)
	analysisHdl := analyticshandler.NewAnalysisHandler(analysisSvc, exporter, validator)

	referenceHdl := refhandler.NewReferenceHandler(ref, validator)

	srv := server.New(cfg, m, redisCache)

	// Register Routes
	srv.App.Post("/analysis", analysisHdl.Upload)
	srv.App.Post("/analysis/remote", analysisHdl.Remote)
	srv.App.Get("/analysis/demo", analysisHdl.Demo)
	srv.App.Get("/analysis/:id", analysisHdl.Get)
	srv.App.Get("/analysis/:id/records", analysisHdl.Records)
	srv.App.Get("/analysis/:id/export.xlsx", analysisHdl.ExportWorkbook)
	srv.App.Get("/analysis/:id/summary.csv", analysisHdl.ExportSummary)
	srv.App.Get("/carriers/options", referenceHdl.GetCarrierOptions)
	srv.App.Get("/reference", referenceHdl.GetReference)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
