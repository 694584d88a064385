package main

//
//  @title           Indian Stock API
//  @version         1.0
//  @description     Server-rendered stock dashboards for Indian market indices.
//  @termsOfService  https://github.com/pawansinha0612/indian-stock-api
//  @contact.name    API Support
//  @contact.url     https://github.com/pawansinha0612/indian-stock-api
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        dashboard
//  @tag.description Server-rendered index dashboard pages
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pawansinha0612/indian-stock-api/config"
	_ "github.com/pawansinha0612/indian-stock-api/docs" // swagger docs
	"github.com/pawansinha0612/indian-stock-api/internal/app"
	"github.com/pawansinha0612/indian-stock-api/internal/domain/models"
	"github.com/pawansinha0612/indian-stock-api/internal/export"
	"github.com/pawansinha0612/indian-stock-api/internal/logger"
	"github.com/pawansinha0612/indian-stock-api/internal/marketdata"
	"github.com/pawansinha0612/indian-stock-api/internal/render"
	"github.com/pawansinha0612/indian-stock-api/internal/service"
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
//   - cleanup (func()): Cleanup callback to release resources (e.g., idle upstream connections).
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

// runExport wires the upstream client, renderer, and dashboard service
// directly (no HTTP server) and writes one static page per registered index.
//
// Parameters:
//   - ctx (context.Context): Context propagated to every upstream fetch.
//   - cfg (config.Config): Loaded application configuration.
//   - out (string): Output directory for the exported pages.
//   - parallel (int): Concurrency limit for export.WritePages (0=auto).
//
// Returns:
//   - error: first error encountered (if any).
func runExport(ctx context.Context, cfg config.Config, out string, parallel int) error {
	client := marketdata.NewHTTPClient(cfg.Upstream)
	defer client.Close()

	renderer, err := render.New()
	if err != nil {
		return err
	}
	svc := service.NewDashboardService(client, renderer)

	return export.WritePages(ctx, svc, models.Indices(), out, parallel)
}

// main is the entry point of the indian-stock-api application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the HTTP server exposing the index dashboard pages.
//   - export: Renders every registered index page once and writes static HTML files.
//
// Flags:
//   - --mode:     Execution mode ("api" or "export"). Default: "api".
//   - --out:      Output directory for exported pages. Default: "./public".
//   - --parallel: How many pages to render concurrently (0=auto up to CPU).
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or export")
	out := flag.String("out", "./public", "Output directory for exported pages")
	parallel := flag.Int("parallel", 0, "How many pages to render concurrently (0=auto up to CPU)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

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

	case "export":
		// Export mode: render each index page once and write it to disk
		logger.L().Info().Msg("running export")

		if err := runExport(ctx, config.AppConfig, *out, *parallel); err != nil {
			logger.L().Fatal().Err(err).Msg("export failed")
		}
		logger.L().Info().Msg("export completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
