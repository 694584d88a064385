package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawansinha0612/indian-stock-api/config"
	"github.com/pawansinha0612/indian-stock-api/internal/api"
	"github.com/pawansinha0612/indian-stock-api/internal/marketdata"
	"github.com/pawansinha0612/indian-stock-api/internal/render"
	"github.com/pawansinha0612/indian-stock-api/internal/service"
)

// clientCtor is an indirection used by InitializeApp; overridden in tests
// to avoid real upstream connections.
var clientCtor = marketdata.NewHTTPClient

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream market-data client from configuration.
//   - Parses the dashboard template bundle and verifies its render targets.
//   - Creates the service layer (fetch-and-render cycles).
//   - Configures the Gin router with all page routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (idle upstream connections).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream market-data client
	// indirection for unit testing
	client := clientCtor(cfg.Upstream)

	// Dashboard renderer; fails here, before any request or fetch,
	// if the template bundle lacks a render target
	renderer, err := render.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	// Initialize service layer (business logic)
	svc := service.NewDashboardService(client, renderer)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return client.Ping(ctx)
	})
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		client.Close()
	}

	return router, cleanup, nil
}
