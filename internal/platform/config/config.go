package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverPgsql  = "pgsql"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// StorageDriver selects the rate store adapter: "sqlite" (the local file
	// written by the ingestion scraper, the default) or "pgsql".
	StorageDriver string
	SQLitePath    string
	DatabaseURL   string

	// CORSAllowedOrigins is the comma-separated origin list for the browser
	// frontend.
	CORSAllowedOrigins []string

	// RateLimit is an ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_DRIVER", DriverSQLite)
	viper.SetDefault("SQLITE_PATH", "exchange_rates.db")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.StorageDriver = viper.GetString("STORAGE_DRIVER")
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	switch cfg.StorageDriver {
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			log.Println("Warning: SQLITE_PATH environment variable not set.")
		}
	case DriverPgsql:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	default:
		log.Printf("Warning: Unknown STORAGE_DRIVER %q. Defaulting to %s.\n", cfg.StorageDriver, DriverSQLite)
		cfg.StorageDriver = DriverSQLite
	}

	return cfg, nil
}
