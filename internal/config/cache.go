package config

import "time"

// CacheConfig tunes the Redis response cache.  Only GET responses
// are cached; IncludeQuery folds the query string into the key so
// filtered listings cache separately.
type CacheConfig struct {
    Enabled      bool
    TTL          time.Duration
    IncludeQuery bool
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads the cache settings from the environment.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      envBool("CACHE_ENABLED", true),
        TTL:          envDur("CACHE_TTL", 30*time.Second),
        IncludeQuery: envBool("CACHE_INCLUDE_QUERY", true),
        Prefix:       getenv("CACHE_PREFIX", "cache"),
        MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
    }
}
