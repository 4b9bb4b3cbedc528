// Package router assembles the echo engine: global middleware,
// public endpoints and the protected API groups.
package router

import (
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "github.com/prometheus/client_golang/prometheus/promhttp"
    "github.com/redis/go-redis/v9"

    "github.com/mvalenciah/sport-venue-reservation/internal/config"
    "github.com/mvalenciah/sport-venue-reservation/internal/handler"
    "github.com/mvalenciah/sport-venue-reservation/internal/middleware"
    "github.com/mvalenciah/sport-venue-reservation/internal/model"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
    Auth        *handler.AuthHandler
    SportVenue  *handler.SportVenueHandler
    Reservation *handler.ReservationHandler
    Health      *handler.HealthHandler
}

// New builds the echo engine.  rdb may be nil; the cache and rate
// limiter then run as pass-throughs.
func New(cfg *config.Config, h Handlers, rdb *redis.Client) *echo.Echo {
    e := echo.New()
    e.HideBanner = true
    e.Validator = handler.NewValidator()
    e.HTTPErrorHandler = handler.HTTPErrorHandler

    e.Use(echomw.Recover())
    e.Use(middleware.Prometheus())
    e.Use(middleware.RequestLogger())
    e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

    e.GET("/healthz", h.Health.Healthz)
    e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

    api := e.Group("/api/v1")

    auth := api.Group("/auth")
    auth.POST("/register", h.Auth.Register)
    auth.POST("/login", h.Auth.Login)
    auth.GET("/activate", h.Auth.Activate)

    jwt := middleware.JWTAuth(cfg.JWTSecret)
    adminOnly := middleware.RequireRole(model.AdminRole)
    userOnly := middleware.RequireRole(model.UserRole)
    anyRole := middleware.RequireRole(model.AdminRole, model.UserRole)

    users := api.Group("/users", jwt)
    users.GET("/me", h.Auth.Me, anyRole)
    users.GET("/:id", h.Auth.FindByID, anyRole)
    users.PUT("", h.Auth.Update, anyRole)
    users.DELETE("/:id", h.Auth.Delete, adminOnly)

    cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

    venues := api.Group("/sport-venues", jwt)
    venues.GET("", h.SportVenue.Find, anyRole, cache)
    venues.GET("/:id", h.SportVenue.FindByID, anyRole, cache)
    venues.POST("", h.SportVenue.Create, adminOnly)
    venues.PUT("/:id", h.SportVenue.Update, adminOnly)
    venues.DELETE("/:id", h.SportVenue.Delete, adminOnly)

    reservations := api.Group("/reservations", jwt)
    reservations.POST("", h.Reservation.Create, userOnly)
    reservations.GET("", h.Reservation.Find, adminOnly)
    reservations.GET("/user", h.Reservation.FindByUser, userOnly)
    reservations.GET("/:id", h.Reservation.FindByID, anyRole)
    reservations.GET("/sport-venues/:id", h.Reservation.FindBySportVenue, anyRole)
    reservations.PUT("/:id", h.Reservation.Update, adminOnly)
    reservations.DELETE("/soft-delete/:id", h.Reservation.SoftDelete, userOnly)
    reservations.DELETE("/:id", h.Reservation.Delete, adminOnly)

    return e
}
