package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripapi/internal/config"
	"tripapi/internal/database"
	"tripapi/internal/database/migration"
	handlers "tripapi/internal/http/handler"
	"tripapi/internal/http/middleware"
	"tripapi/internal/logsheet"
	tracing "tripapi/internal/otel"
	"tripapi/internal/repository/postgres"
	"tripapi/internal/routing"
	"tripapi/internal/service"
	"tripapi/internal/storage"
)

// @title Trip API
// @version 1.0
// @description Plans truck trips over OSRM routes and renders driver log sheets.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Routing: OSRM client, optionally behind the Redis route cache
	osrm, err := routing.NewOSRMClient(cfg.Routing, reg)
	if err != nil {
		log.Fatalf("failed to initialize routing client: %v", err)
	}
	var router routing.Router = osrm
	if cfg.Redis.Enabled() {
		rdb, err := routing.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		cache := routing.NewRedisRouteCache(rdb, time.Duration(cfg.Redis.RouteTTLSec)*time.Second)
		router = routing.NewCachedRouter(osrm, cache, cfg.Routing.Profile, loc)
	}

	// Log sheet archive is optional
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	layout, err := logsheet.LoadLayout(cfg.LogSheet.LayoutPath)
	if err != nil {
		log.Fatalf("failed to load log sheet layout: %v", err)
	}
	renderer := logsheet.NewRenderer(layout, cfg.LogSheet.TemplatePath, loc)

	tripRepo := postgres.NewTripPostgres(db)
	sheetRepo := postgres.NewLogSheetPostgres(db)
	tripSvc := service.NewTripService(router, tripRepo, sheetRepo, objStore, loc)
	sheetSvc := service.NewLogSheetService(tripRepo, sheetRepo, objStore, renderer, loc,
		time.Duration(cfg.LogSheet.URLExpirySec)*time.Second)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(loc),
	})

	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register http metrics: %v", err)
	}

	app.Use(recover.New())
	app.Use(cors.New())
	// RequestID first so every later middleware sees the id
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(loc))
	app.Use(metrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterRoutes(app, db, tripSvc, sheetSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", handlers.SwaggerUI(cfg.AppHost))

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Printf("graceful shutdown failed: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	if err := app.Listen(addr); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("failed to start server: %v", err)
	}
}
