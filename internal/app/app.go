package app

import (
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/guttosm/cryptopulse/config"
	"github.com/guttosm/cryptopulse/internal/api"
	"github.com/guttosm/cryptopulse/internal/ingestion"
	"github.com/guttosm/cryptopulse/internal/logger"
	"github.com/guttosm/cryptopulse/internal/observability"
	"github.com/guttosm/cryptopulse/internal/service"
	"github.com/guttosm/cryptopulse/internal/storage"
	"github.com/guttosm/cryptopulse/internal/storage/memory"
	"github.com/guttosm/cryptopulse/internal/storage/migrations"
)

// schemaMigrator is an indirection used by BuildService; overridden in tests
// where the database is a sqlmock.
var schemaMigrator = migrations.Up

// BuildService wires the storage backend, price folder, metrics and service
// layer described by cfg.
//
// Responsibilities:
//   - Opens PostgreSQL and applies migrations, or builds an in-memory store.
//   - Resolves the prices timezone and code source.
//   - Registers Prometheus collectors on a fresh registry.
//
// Returns the service, its metrics and a cleanup function releasing the
// storage backend.
func BuildService(cfg config.Config) (*service.Service, *observability.Metrics, func(), error) {
	loc, err := cfg.Prices.Location()
	if err != nil {
		return nil, nil, nil, err
	}

	var (
		repo    storage.Repository
		cleanup = func() {}
	)
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		repo = memory.New()
	case config.DriverPostgres, "":
		db, err := postgresOpener(cfg)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		if err := schemaMigrator(db); err != nil {
			_ = db.Close()
			return nil, nil, nil, fmt.Errorf("failed to migrate postgres: %w", err)
		}
		repo = storage.NewPostgresRepository(db)
		cleanup = closer(db)
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	metrics := observability.NewMetrics("", prometheus.NewRegistry())
	folder := ingestion.NewFolder(cfg.Prices.Dir, cfg.Prices.FileSuffix)

	svc := service.NewService(repo, folder, service.Options{
		Location:        loc,
		Parallel:        cfg.Prices.Parallel,
		CodesFromFolder: cfg.Prices.CodesSource == config.CodesFromFolder,
		Metrics:         metrics,
	})

	logger.L().Info().
		Str("storage", cfg.Storage.Driver).
		Str("prices_dir", cfg.Prices.Dir).
		Str("timezone", loc.String()).
		Str("codes_source", cfg.Prices.CodesSource).
		Msg("service initialized")

	return svc, metrics, cleanup, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the service layer with BuildService().
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	svc, metrics, cleanup, err := BuildService(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc, svc.Location())

	// Setup Gin router with routes
	router := api.NewRouter(handler, api.RouterConfig{
		Timeout: cfg.Server.RequestTimeout,
		Metrics: metrics,
	})

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(svc.Ping)
	healthHandler.Register(router)

	return router, cleanup, nil
}

func closer(db *sql.DB) func() {
	return func() {
		_ = db.Close()
	}
}
