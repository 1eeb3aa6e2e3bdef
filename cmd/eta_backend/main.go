package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/ecotrack/emission_tracking_app/internal/core/services"
	"github.com/ecotrack/emission_tracking_app/internal/handlers"
	"github.com/ecotrack/emission_tracking_app/internal/middleware"
	"github.com/ecotrack/emission_tracking_app/internal/observability"
	"github.com/ecotrack/emission_tracking_app/internal/platform/config"
	"github.com/ecotrack/emission_tracking_app/internal/platform/refdata"
	"github.com/ecotrack/emission_tracking_app/internal/repositories/database/pgsql"
	"github.com/ecotrack/emission_tracking_app/internal/repositories/database/sqlite"
	"github.com/ecotrack/emission_tracking_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portsrepo "github.com/ecotrack/emission_tracking_app/internal/core/ports/repositories"
	portssvc "github.com/ecotrack/emission_tracking_app/internal/core/ports/services"

	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Emission Tracking Backend API
// @version 1.0
// @description Exchange-rate lookups and emission calculations for the tracking form.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Static reference data: constructed once, validated, then shared
	// read-only across requests. A validation failure here means the
	// country/template tables are internally inconsistent.
	refData, err := refdata.New()
	if err != nil {
		logger.Error("Reference data validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateRepo, cleanup, err := openRateStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to open rate store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := &portssvc.ServiceContainer{
		ExchangeRate: services.NewExchangeRateService(rateRepo),
		Emission:     services.NewEmissionService(refData),
	}

	metrics := observability.NewMetrics()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, metrics)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage_driver", cfg.StorageDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openRateStore opens the configured storage backend, applies the schema
// migration (a no-op on an already-populated store) and returns the rate
// repository plus a cleanup function.
func openRateStore(cfg *config.Config, logger *slog.Logger) (portsrepo.ExchangeRateReader, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverPgsql:
		return openPgsqlStore(cfg, logger)
	default:
		return openSQLiteStore(cfg, logger)
	}
}

func openSQLiteStore(cfg *config.Config, logger *slog.Logger) (portsrepo.ExchangeRateReader, func(), error) {
	// A dedicated connection for migrations; the migrate instance owns and
	// closes it. The main connection is opened afterwards.
	migrationDB, err := database.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	driver, err := migratesqlite.WithInstance(migrationDB, &migratesqlite.Config{})
	if err != nil {
		migrationDB.Close()
		return nil, nil, err
	}
	if err := runMigrations("file://migrations/sqlite", "sqlite3", driver, logger); err != nil {
		return nil, nil, err
	}

	db, err := database.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("SQLite rate store opened", slog.String("path", cfg.SQLitePath))

	return sqlite.NewExchangeRateRepository(db), func() { db.Close() }, nil
}

func openPgsqlStore(cfg *config.Config, logger *slog.Logger) (portsrepo.ExchangeRateReader, func(), error) {
	pool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := migratepg.WithInstance(migrationDB, &migratepg.Config{})
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	if err := runMigrations("file://migrations/postgres", "postgres", driver, logger); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return pgsql.NewPgxExchangeRateRepository(pool), func() { pool.Close() }, nil
}

func runMigrations(sourceURL, databaseName string, driver migratedb.Driver, logger *slog.Logger) error {
	m, err := migrate.NewWithDatabaseInstance(sourceURL, databaseName, driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
