package main

import (
    "github.com/joho/godotenv"
    "go.uber.org/zap"

    "github.com/mvalenciah/sport-venue-reservation/internal/config"
    "github.com/mvalenciah/sport-venue-reservation/internal/database"
    "github.com/mvalenciah/sport-venue-reservation/internal/handler"
    "github.com/mvalenciah/sport-venue-reservation/internal/logger"
    "github.com/mvalenciah/sport-venue-reservation/internal/queue"
    "github.com/mvalenciah/sport-venue-reservation/internal/repository"
    "github.com/mvalenciah/sport-venue-reservation/internal/router"
    "github.com/mvalenciah/sport-venue-reservation/internal/service"
    "github.com/mvalenciah/sport-venue-reservation/internal/usecase"
)

func main() {
    // missing .env is fine in containerized deployments
    _ = godotenv.Load()

    cfg, err := config.Load()
    if err != nil {
        logger.Fatal("configuration error", zap.Error(err))
    }
    logger.Set(logger.NewLogger(cfg.AppEnv))
    defer logger.Sync()

    db, err := database.Open(cfg.DSN())
    if err != nil {
        logger.Fatal("database connection failed", zap.Error(err))
    }
    defer db.Close()

    rdb := config.NewRedisClient()
    if rdb == nil {
        logger.Warn("redis unavailable, cache and rate limiting disabled")
    }

    userRepo := repository.NewUserRepo(db)
    tokenRepo := repository.NewTokenRepo(db)
    venueRepo := repository.NewSportVenueRepo(db)
    reservationRepo := repository.NewReservationRepo(db)

    publisher := service.NewPublisher(cfg.RabbitURL)

    authUC := usecase.NewAuthUseCases(userRepo, tokenRepo, publisher, usecase.AuthConfig{
        JWTSecret:          cfg.JWTSecret,
        AccessTokenTTLMin:  cfg.AccessTokenTTLMin,
        BcryptCost:         cfg.BcryptCost,
        ActivationTTLHours: cfg.ActivationTTLHours,
        ActivationBaseURL:  cfg.ActivationBaseURL,
    })
    venueUC := usecase.NewSportVenueUseCases(venueRepo)
    reservationUC := usecase.NewReservationUseCases(reservationRepo, userRepo, publisher)

    go queue.StartMailConsumer(cfg.RabbitURL)

    e := router.New(cfg, router.Handlers{
        Auth:        handler.NewAuthHandler(authUC),
        SportVenue:  handler.NewSportVenueHandler(venueUC),
        Reservation: handler.NewReservationHandler(reservationUC),
        Health:      handler.NewHealthHandler(db),
    }, rdb)

    logger.Info("server starting",
        zap.String("env", cfg.AppEnv), zap.String("port", cfg.AppPort))
    if err := e.Start(":" + cfg.AppPort); err != nil {
        logger.Fatal("server stopped", zap.Error(err))
    }
}
