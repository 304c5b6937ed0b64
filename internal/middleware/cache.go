package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/car-rental-platform/internal/config"
)

// cachedResponse is the envelope stored in Redis for a cache entry.  Only
// the status, content type and body are kept; other headers are cheap to
// regenerate and would bloat the entry.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// captureWriter tees the response body into a buffer up to a byte limit
// while still streaming it to the client.
type captureWriter struct {
	http.ResponseWriter
	status   int
	buf      bytes.Buffer
	overflow bool
	limit    int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if !cw.overflow {
		if cw.limit > 0 && cw.buf.Len()+len(b) > cw.limit {
			cw.overflow = true
		} else {
			cw.buf.Write(b)
		}
	}
	return cw.ResponseWriter.Write(b)
}

// cacheKey derives a stable key from the matched route and raw query.  The
// tail is hashed so long query strings stay within Redis key size norms.
func cacheKey(prefix, route, query string) string {
	sum := sha1.Sum([]byte(route + "?" + query))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewResponseCache caches successful responses of the configured methods in
// Redis.  Responses that overflow MaxBodyBytes, or that finish with a
// non-200 status, are never stored.  Write endpoints evict the whole
// namespace via InvalidateCache so stale catalogue reads cannot outlive a
// mutation by more than one round trip.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passthrough
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c.Path(), c.Request().URL.RawQuery)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var entry cachedResponse
				if json.Unmarshal(raw, &entry) == nil {
					if entry.ContentType != "" {
						c.Response().Header().Set(echo.HeaderContentType, entry.ContentType)
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(entry.Status)
					_, werr := c.Response().Write(entry.Body)
					return werr
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && !cw.overflow {
				entry := cachedResponse{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.buf.Bytes(),
				}
				if raw, err := json.Marshal(entry); err == nil {
					_ = rdb.Set(context.Background(), key, raw, ttl).Err()
				}
			}
			return nil
		}
	}
}

// InvalidateCache deletes every entry under the cache prefix.  It runs
// best-effort; a failed eviction only means entries age out by TTL.
func InvalidateCache(ctx context.Context, rdb *redis.Client, prefix string) {
	if rdb == nil {
		return
	}
	iter := rdb.Scan(ctx, 0, prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		_ = rdb.Del(ctx, keys...).Err()
	}
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error { return next(c) }
}
