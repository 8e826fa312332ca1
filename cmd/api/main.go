package main

import (
	"context"
	"log"
	"time"

	"carrier-intel/internal/core/cache"
	"carrier-intel/internal/core/config"
	"carrier-intel/internal/core/database"
	"carrier-intel/internal/core/logger"
	"carrier-intel/internal/core/server"
	"carrier-intel/internal/features/analytics/adapters"
	"carrier-intel/internal/features/analytics/domain"
	analyticshandler "carrier-intel/internal/features/analytics/handler"
	"carrier-intel/internal/features/analytics/ports"
	analyticsservice "carrier-intel/internal/features/analytics/service"

	"go.uber.org/zap"
)

// @title Carrier Intel API
// @version 1.0
// @description Carrier performance intelligence: per-carrier metrics, scores, insights and routing recommendations over shipment tracking data.
// @contact.name API Support
// @contact.email support@carrierintel.dev
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
		zap.String("shipment_source", cfg.Analytics.ShipmentSource),
	)

	ctx := context.Background()

	// Shipment source: direct Postgres access or the order management API.
	var source ports.ShipmentSource
	switch cfg.Analytics.ShipmentSource {
	case "api":
		apiSource := adapters.NewOrderAPIShipmentSource(cfg.OrderAPI)
		if err := apiSource.HealthCheck(ctx); err != nil {
			l.Fatal("Order API health check failed", zap.Error(err))
		}
		l.Info("Order API connection verified")
		source = apiSource
	default:
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			l.Fatal("Database connection failed", zap.Error(err))
		}
		defer db.Close()
		l.Info("Database connection verified")
		source = adapters.NewPostgresShipmentSource(db)
	}

	// Report snapshot cache.
	redisCache, err := cache.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	reportCache := adapters.NewRedisReportCache(redisCache)
	reportTTL := time.Duration(cfg.Analytics.ReportTTLSeconds) * time.Second

	analyticsSvc := analyticsservice.NewAnalyticsService(source, reportCache, domain.DefaultScoringConfig(), reportTTL)
	analyticsHdl := analyticshandler.NewAnalyticsHandler(analyticsSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/analytics/:tenant/report", analyticsHdl.GetCarrierReport)
	srv.App.Get("/analytics/:tenant/insights", analyticsHdl.GetInsights)
	srv.App.Get("/analytics/:tenant/routing", analyticsHdl.GetRouting)
	srv.App.Get("/analytics/:tenant/dashboard", analyticsHdl.GetDashboard)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
