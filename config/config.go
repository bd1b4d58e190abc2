package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Code sources accepted by CODES_SOURCE.
const (
	CodesFromRegistry = "registry"
	CodesFromFolder   = "folder"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	STORAGE_DRIVER=postgres
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=cryptopulse
//	POSTGRES_SSLMODE=disable
//	PRICES_DIR=./data/prices
//	PRICES_FILE_SUFFIX=_values.csv
//	PRICES_TIMEZONE=UTC
//	CODES_SOURCE=registry
//	SCAN_PARALLEL=0
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Storage  StorageConfig  // Which persistence backend to use
	Postgres PostgresConfig // PostgreSQL connection settings
	Prices   PricesConfig   // Price files location and parsing options
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	RequestTimeout time.Duration // Per-request deadline applied by the router
}

// StorageConfig selects the persistence backend for codes and summaries.
type StorageConfig struct {
	Driver string // "postgres" or "memory"
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// PricesConfig describes where the per-code price files live and how they are read.
//
// Fields:
//   - Dir: folder containing one "<CODE><FileSuffix>" file per asset.
//   - FileSuffix: suffix appended to the code to build the file name.
//   - Timezone: IANA zone used to derive the calendar day of a timestamp.
//   - CodesSource: "registry" (codes table) or "folder" (file names).
//   - Parallel: how many files an all-codes scan parses at once (0 = NumCPU).
type PricesConfig struct {
	Dir         string
	FileSuffix  string
	Timezone    string
	CodesSource string
	Parallel    int
}

// Location resolves Timezone, falling back to UTC when empty.
func (p PricesConfig) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() terminates
//     the app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REQUEST_TIMEOUT", "10s")

	viper.SetDefault("STORAGE_DRIVER", DriverPostgres)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "cryptopulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("PRICES_DIR", "./data/prices")
	viper.SetDefault("PRICES_FILE_SUFFIX", "_values.csv")
	viper.SetDefault("PRICES_TIMEZONE", "UTC")
	viper.SetDefault("CODES_SOURCE", CodesFromRegistry)
	viper.SetDefault("SCAN_PARALLEL", 0)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		},
		Storage: StorageConfig{
			Driver: viper.GetString("STORAGE_DRIVER"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Prices: PricesConfig{
			Dir:         viper.GetString("PRICES_DIR"),
			FileSuffix:  viper.GetString("PRICES_FILE_SUFFIX"),
			Timezone:    viper.GetString("PRICES_TIMEZONE"),
			CodesSource: viper.GetString("CODES_SOURCE"),
			Parallel:    viper.GetInt("SCAN_PARALLEL"),
		},
	}

	AppConfig.Postgres.URL = BuildPostgresURL(AppConfig.Postgres)

	validateConfig()
}

// BuildPostgresURL renders the DSN used by database/sql.
func BuildPostgresURL(p PostgresConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing or hold unsupported values.
func validateConfig() {
	if problems := checkConfig(AppConfig); len(problems) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", problems)
	}
}

// checkConfig lists the names of missing or invalid variables.
func checkConfig(cfg Config) []string {
	var problems []string

	if cfg.Server.Port == "" {
		problems = append(problems, "SERVER_PORT")
	}
	if cfg.Prices.Dir == "" {
		problems = append(problems, "PRICES_DIR")
	}
	if cfg.Prices.FileSuffix == "" {
		problems = append(problems, "PRICES_FILE_SUFFIX")
	}
	if _, err := cfg.Prices.Location(); err != nil {
		problems = append(problems, "PRICES_TIMEZONE")
	}
	if cfg.Prices.Parallel < 0 {
		problems = append(problems, "SCAN_PARALLEL")
	}
	switch cfg.Prices.CodesSource {
	case CodesFromRegistry, CodesFromFolder:
	default:
		problems = append(problems, "CODES_SOURCE")
	}

	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if cfg.Postgres.Host == "" {
			problems = append(problems, "POSTGRES_HOST")
		}
		if cfg.Postgres.Port == 0 {
			problems = append(problems, "POSTGRES_PORT")
		}
		if cfg.Postgres.User == "" {
			problems = append(problems, "POSTGRES_USER")
		}
		if cfg.Postgres.Password == "" {
			problems = append(problems, "POSTGRES_PASSWORD")
		}
		if cfg.Postgres.DBName == "" {
			problems = append(problems, "POSTGRES_DB")
		}
	default:
		problems = append(problems, "STORAGE_DRIVER")
	}

	return problems
}
