package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/Eursukkul/booking-microservice/dockmate-service/config"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/catalog"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/clock"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/handler"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/metrics"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/middleware"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/repository"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/service"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/session"
	"github.com/Eursukkul/booking-microservice/dockmate-service/pkg/database"
	"github.com/Eursukkul/booking-microservice/dockmate-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to load vendor catalog: %v", err)
	}
	log.Printf("[Catalog] loaded %d vendors from %s source", cat.Len(), cfg.CatalogSource)

	// RabbitMQ publisher is optional: tickets still work without a broker.
	var publisher service.TicketPublisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Printf("WARN: RABBITMQ_URL not set, ticket events will not be published")
	}

	clk := clock.NewSystem(loc)
	sessions := session.NewManager(cfg.SessionTTL, clk)
	sessions.StartSweeper(ctx, time.Minute)

	schedulingSvc := service.NewSchedulingService(
		cat,
		sessions,
		clk,
		publisher,
		metrics.NewSchedulingMetrics(prometheus.DefaultRegisterer),
		service.Options{
			WindowDays:        cfg.WindowDays,
			MaxWindowDays:     cfg.MaxWindowDays,
			RequireBoatLength: cfg.RequireBoatLength,
		},
	)

	e := newServer(schedulingSvc, cfg.SessionTTL)

	srvErr := make(chan error, 1)
	go func() {
		log.Printf("DockMate Service starting on :%s", cfg.ServerPort)
		srvErr <- e.Start(":" + cfg.ServerPort)
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", err)
		}
	case <-ctx.Done():
		log.Printf("shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("server shutdown error: %v", err)
	}
	log.Printf("server stopped")
}

// newServer builds the Echo instance with middleware and every route.
func newServer(svc service.SchedulingService, sessionTTL time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "dockmate-service"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.Session(sessionTTL))
	handler.NewSchedulingHandler(svc).RegisterRoutes(api)
	return e
}

// loadCatalog builds the read-only vendor catalog from the configured source.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case config.CatalogFile:
		return catalog.LoadFile(cfg.CatalogFile)
	case config.CatalogPostgres:
		startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := database.NewPostgresDB(startupCtx, cfg.DSN())
		if err != nil {
			return nil, err
		}
		// The catalog is read once; the pool is not needed afterwards.
		defer database.Close(db)

		repo := repository.NewVendorRepository(db)
		if cfg.CatalogSeed {
			seed, err := seedCatalog(cfg)
			if err != nil {
				return nil, err
			}
			if err := catalog.Seed(startupCtx, seed, repo); err != nil {
				return nil, err
			}
		}
		return catalog.FromSource(startupCtx, repo)
	default:
		return catalog.Default(), nil
	}
}

// seedCatalog picks the YAML file when it exists, otherwise the built-in
// vendors.
func seedCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if _, err := os.Stat(cfg.CatalogFile); err == nil {
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.Default(), nil
}
