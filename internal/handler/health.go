package handler

import (
    "context"
    "database/sql"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
    db *sql.DB
}

// NewHealthHandler constructs the health handler.
func NewHealthHandler(db *sql.DB) *HealthHandler {
    return &HealthHandler{db: db}
}

// Healthz handles GET /healthz.
func (h *HealthHandler) Healthz(c echo.Context) error {
    status := "ok"
    code := http.StatusOK

    ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
    defer cancel()
    if err := h.db.PingContext(ctx); err != nil {
        status = "degraded"
        code = http.StatusServiceUnavailable
    }
    return c.JSON(code, map[string]string{"status": status})
}
