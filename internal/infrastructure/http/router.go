// Package http hosts the local observability listener used while the
// interactive mode runs: liveness, readiness against the remote API, and
// Prometheus exposition. It serves no business endpoints.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ubatuba-events/events-client/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(api handlers.APIPinger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// --- Global middleware ---
	e.Use(middleware.Recover())

	// --- Probes and metrics ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(api)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the remote API up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
