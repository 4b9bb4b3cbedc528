package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/binary"
    "encoding/json"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/mvalenciah/sport-venue-reservation/internal/config"
)

// bodyRecorder captures the response while still streaming it to the
// client.  Capture stops at limit bytes; oversized bodies are simply
// not cached.
type bodyRecorder struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int64
    limit  int64
}

func (w *bodyRecorder) WriteHeader(code int) {
    w.status = code
    w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
    w.size += int64(len(b))
    if w.limit <= 0 || w.size <= w.limit {
        w.buf.Write(b)
    }
    return w.ResponseWriter.Write(b)
}

// cacheKey derives a stable Redis key from the request.  The route
// template keeps keys bounded; the query string distinguishes
// filtered lookups such as the available-venues listing.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
    r := c.Request()
    parts := []string{r.Method, c.Path()}
    if cfg.IncludeQuery {
        parts = append(parts, r.URL.RawQuery)
    }
    sum := sha1.Sum([]byte(strings.Join(parts, "|")))
    return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// The cached payload packs status, headers and body into one value:
// [4 bytes status][4 bytes header length][header JSON][body].

func encodeCached(status int, header http.Header, body []byte) ([]byte, error) {
    hdrJSON, err := json.Marshal(header)
    if err != nil {
        return nil, err
    }
    out := make([]byte, 8+len(hdrJSON)+len(body))
    binary.BigEndian.PutUint32(out[0:4], uint32(status))
    binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
    copy(out[8:], hdrJSON)
    copy(out[8+len(hdrJSON):], body)
    return out, nil
}

func decodeCached(bs []byte) (status int, header http.Header, body []byte, ok bool) {
    if len(bs) < 8 {
        return 0, nil, nil, false
    }
    status = int(binary.BigEndian.Uint32(bs[0:4]))
    hlen := int(binary.BigEndian.Uint32(bs[4:8]))
    if hlen < 0 || 8+hlen > len(bs) {
        return 0, nil, nil, false
    }
    header = make(http.Header)
    if hlen > 0 {
        if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
            return 0, nil, nil, false
        }
    }
    return status, header, bs[8+hlen:], true
}

// ResponseCache serves successful GET responses from Redis.  The
// venue catalog and reservation listings are read-heavy; a short TTL
// takes the repeated JOIN queries off the database without letting
// bookings look stale for long.  A nil client or a disabled config
// turns the middleware into a pass-through.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }

            ctx := c.Request().Context()
            key := cacheKey(cfg, c)

            if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
                if status, hdr, body, ok := decodeCached(bs); ok {
                    for k, vals := range hdr {
                        if strings.EqualFold(k, "Content-Length") {
                            continue
                        }
                        for _, v := range vals {
                            c.Response().Header().Add(k, v)
                        }
                    }
                    c.Response().Header().Set("X-Cache", "HIT")
                    c.Response().WriteHeader(status)
                    _, werr := c.Response().Write(body)
                    return werr
                }
            }

            rec := &bodyRecorder{
                ResponseWriter: c.Response().Writer,
                status:         http.StatusOK,
                limit:          int64(cfg.MaxBodyBytes),
            }
            c.Response().Writer = rec
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            cacheable := rec.status == http.StatusOK &&
                (rec.limit <= 0 || rec.size <= rec.limit)
            if cacheable {
                hdr := make(http.Header, len(c.Response().Header()))
                for k, vals := range c.Response().Header() {
                    hdr[k] = append([]string(nil), vals...)
                }
                if payload, err := encodeCached(rec.status, hdr, rec.buf.Bytes()); err == nil {
                    _ = rdb.SetEx(context.Background(), key, payload, ttl).Err()
                }
            }
            return nil
        }
    }
}
