package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"devlogapi/internal/config"
	"devlogapi/internal/database"
	"devlogapi/internal/database/migration"
	handlers "devlogapi/internal/http/handler"
	"devlogapi/internal/http/middleware"
	"devlogapi/internal/otel"
	"devlogapi/internal/repository/postgres"
	"devlogapi/internal/service"
	"devlogapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if
	// present)
	cfg := config.Load()
	loc := time.UTC
	ctx := context.Background()

	// Initialize OTLP tracing; degrades to a no-op when the exporter is
	// unreachable or the SDK is disabled.
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize the S3-compatible asset store (MinIO-supported)
	assetStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Initialize repositories and services
	contentRepo := postgres.NewContentPostgres(db)
	projectRepo := postgres.NewProjectPostgres(db)
	versionRepo := postgres.NewVersionPostgres(db)

	contentSvc := service.NewContentService(contentRepo, versionRepo)
	projectSvc := service.NewProjectService(projectRepo, versionRepo)
	assetSvc := service.NewAssetService(assetStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware.
	// RequestID adds/propagates X-Request-ID and stores it in context.
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs.
	app.Use(middleware.Logger())
	// Trace inbound requests.
	app.Use(otelfiber.Middleware())

	// Request metrics plus the /metrics scrape endpoint.
	reg := prometheus.NewRegistry()
	promMw, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMw.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, contentSvc, projectSvc, assetSvc)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
