// Package config loads the runtime configuration from environment
// variables.  A .env file, when present, is loaded by the caller
// before any of these functions run.
package config

import (
    "fmt"
    "os"
    "strconv"
    "time"
)

// Config carries the core settings of the service.  Fields without a
// default are required; Load fails fast when one is missing so a
// misconfigured deployment dies at startup rather than mid-request.
type Config struct {
    AppEnv  string
    AppPort string

    DBHost string
    DBPort string
    DBUser string
    DBPass string
    DBName string

    JWTSecret         string
    AccessTokenTTLMin int
    BcryptCost        int

    ActivationTTLHours int
    ActivationBaseURL  string

    RabbitURL string
}

// Load reads the core configuration.  It returns an error naming the
// first missing required variable.
func Load() (*Config, error) {
    cfg := &Config{
        AppEnv:             getenv("APP_ENV", "development"),
        AppPort:            getenv("APP_PORT", "8080"),
        DBHost:             getenv("DB_HOST", "127.0.0.1"),
        DBPort:             getenv("DB_PORT", "3306"),
        DBName:             getenv("DB_NAME", "sport_venue_reservation"),
        AccessTokenTTLMin:  envInt("ACCESS_TOKEN_TTL_MIN", 15),
        BcryptCost:         envInt("BCRYPT_COST", 10),
        ActivationTTLHours: envInt("ACTIVATION_TOKEN_TTL_HOURS", 24),
        RabbitURL:          getenv("RABBITMQ_URL", ""),
    }

    var err error
    if cfg.DBUser, err = require("DB_USER"); err != nil {
        return nil, err
    }
    if cfg.DBPass, err = require("DB_PASSWORD"); err != nil {
        return nil, err
    }
    if cfg.JWTSecret, err = require("JWT_SECRET"); err != nil {
        return nil, err
    }

    cfg.ActivationBaseURL = getenv("ACTIVATION_BASE_URL",
        "http://localhost:"+cfg.AppPort+"/api/v1/auth/activate")
    return cfg, nil
}

// DSN builds the MySQL connection string.  parseTime makes the
// driver scan DATE and TIMESTAMP columns into time.Time; the UTC
// location keeps stored timestamps unambiguous.
func (c *Config) DSN() string {
    return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
        c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func require(key string) (string, error) {
    v := os.Getenv(key)
    if v == "" {
        return "", fmt.Errorf("missing required environment variable %s", key)
    }
    return v, nil
}

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func envInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        return def
    }
    return n
}

func envBool(key string, def bool) bool {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    b, err := strconv.ParseBool(v)
    if err != nil {
        return def
    }
    return b
}

func envDur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    d, err := time.ParseDuration(v)
    if err != nil {
        return def
    }
    return d
}
