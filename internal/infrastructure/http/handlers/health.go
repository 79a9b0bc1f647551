package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// APIPinger checks remote API reachability.
type APIPinger interface {
	Ping(ctx context.Context) error
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Checks that the remote events API answers before declaring ready.
type ReadinessHandler struct {
	api APIPinger
}

func NewReadinessHandler(api APIPinger) *ReadinessHandler {
	return &ReadinessHandler{api: api}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	api := dependencyStatus{Status: "ok"}
	code := http.StatusOK
	if err := h.api.Ping(ctx); err != nil {
		api = dependencyStatus{Status: "unreachable", Error: err.Error()}
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, map[string]dependencyStatus{"events_api": api})
}
