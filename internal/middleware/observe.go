package middleware

import (
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/mvalenciah/sport-venue-reservation/internal/logger"
    "github.com/mvalenciah/sport-venue-reservation/internal/metrics"
)

// RequestLogger logs one structured line per request.
func RequestLogger() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            if err != nil {
                c.Error(err)
            }
            req := c.Request()
            logger.Info("http request",
                zap.String("method", req.Method),
                zap.String("path", req.URL.Path),
                zap.Int("status", c.Response().Status),
                zap.String("ip", c.RealIP()),
                zap.Duration("latency", time.Since(start)),
            )
            return nil
        }
    }
}

// Prometheus records the request counter and latency histogram.  The
// route template is used as the label so path parameters do not blow
// up cardinality.  It expects to wrap RequestLogger, which resolves
// errors into response statuses before control returns here.
func Prometheus() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            route := c.Path()
            if route == "" {
                route = "unmatched"
            }
            method := c.Request().Method
            metrics.HTTPRequestsTotal.WithLabelValues(method, route,
                strconv.Itoa(c.Response().Status)).Inc()
            metrics.HTTPRequestDuration.WithLabelValues(method, route).
                Observe(time.Since(start).Seconds())
            return err
        }
    }
}
