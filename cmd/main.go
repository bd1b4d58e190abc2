package main

//
//  @title           cryptopulse API
//  @version         1.0
//  @description     Crypto price summaries, rankings and monthly history.
//  @termsOfService  https://github.com/guttosm/cryptopulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/cryptopulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        cryptos
//  @tag.description Price summaries computed from the price files
//
//  @tag.name        codes
//  @tag.description Registry of supported crypto codes
//
//  @tag.name        history
//  @tag.description Stored summaries merged over a lookback in months
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/guttosm/cryptopulse/config"
	_ "github.com/guttosm/cryptopulse/docs" // swagger docs
	"github.com/guttosm/cryptopulse/internal/app"
	"github.com/guttosm/cryptopulse/internal/export"
	"github.com/guttosm/cryptopulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runBatch executes one of the non-server modes against a freshly built service.
func runBatch(ctx context.Context, mode string, months int, out string) error {
	svc, _, cleanup, err := app.BuildService(config.AppConfig)
	if err != nil {
		return err
	}
	defer cleanup()

	switch mode {
	case "ingest":
		n, err := svc.Ingest(ctx)
		if err != nil {
			return err
		}
		logger.L().Info().Int("summaries", n).Msg("ingestion completed successfully")

	case "seed":
		n, err := svc.SeedCodes(ctx)
		if err != nil {
			return err
		}
		logger.L().Info().Int("codes", n).Msg("seed completed successfully")

	case "export":
		if out == "" {
			return errors.New("export: --out is required")
		}
		history, err := svc.GetHistoryAll(ctx, strconv.Itoa(months))
		if err != nil {
			return err
		}
		if err := export.WriteFile(out, history); err != nil {
			return err
		}
		logger.L().Info().Str("out", out).Int("rows", len(history)).Msg("export completed successfully")

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
	return nil
}

// main is the entry point of the cryptopulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API exposing summaries, codes and history.
//   - ingest: Summarizes every known code's price file and stores the result.
//   - seed:   Registers every code that has a price file in PRICES_DIR.
//   - export: Writes the ranked history of the last --months to --out (.parquet, .csv or .json).
//
// Flags:
//   - --mode:   Execution mode. Default: "api".
//   - --dir:    Directory containing the price files. Defaults to PRICES_DIR.
//   - --port:   Port for the API server. Defaults to value from config (SERVER_PORT).
//   - --months: Lookback for export. Default: 12.
//   - --out:    Output file for export.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api, ingest, seed or export")
	dir := flag.String("dir", config.AppConfig.Prices.Dir, "Directory with <CODE>_values.csv files")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	months := flag.Int("months", 12, "Lookback in months for export (1-36)")
	out := flag.String("out", "", "Output file for export (.parquet, .csv or .json)")
	flag.Parse()

	config.AppConfig.Prices.Dir = *dir

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "ingest", "seed", "export":
		logger.L().Info().Str("mode", *mode).Msg("running batch")
		if err := runBatch(ctx, *mode, *months, *out); err != nil {
			logger.L().Fatal().Err(err).Str("mode", *mode).Msg("batch failed")
		}

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
