// Package logger wraps a process-wide zap logger.  Development mode
// uses a colorized console encoder; production emits JSON with
// ISO8601 timestamps.  LOG_LEVEL overrides the default level.
package logger

import (
    "os"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

var log *zap.Logger

func init() {
    log = NewLogger("dev")
}

// NewLogger builds a zap logger for the given environment name.
func NewLogger(env string) *zap.Logger {
    var config zap.Config
    if env == "prod" || env == "production" {
        config = zap.NewProductionConfig()
        config.EncoderConfig.TimeKey = "timestamp"
        config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
    } else {
        config = zap.NewDevelopmentConfig()
        config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
    }

    if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
        var level zapcore.Level
        if err := level.UnmarshalText([]byte(lvl)); err == nil {
            config.Level = zap.NewAtomicLevelAt(level)
        }
    }

    l, _ := config.Build()
    return l
}

// Set replaces the process-wide logger, typically once at startup
// after the environment is known.
func Set(l *zap.Logger) { log = l }

// Get returns the process-wide logger.
func Get() *zap.Logger { return log }

func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { log.Fatal(msg, fields...) }

// Sync flushes buffered log entries.  Call on shutdown.
func Sync() error { return log.Sync() }
