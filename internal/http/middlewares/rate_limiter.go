package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
)

// clientKey prefers the owner identity over the client address, so one
// busy owner behind a shared proxy cannot starve the others.
func clientKey(c echo.Context) string {
	if owner, ok := c.Get(OwnerContextKey).(string); ok && owner != "" {
		return owner
	}
	return c.RealIP()
}

// RateLimiter is a fixed-window in-memory limiter, used when no redis
// address is configured. Windows reset lazily on the next request.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := clientKey(c)

			mu.Lock()
			b, ok := buckets[key]
			if !ok || now.Sub(b.start) > window {
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}

// RedisRateLimiter is the same fixed window kept in redis, shared across
// replicas. It fails open when redis is unreachable; losing rate limiting
// briefly beats failing every request.
func RedisRateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	windowSec := int64(window.Seconds())

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			slot := time.Now().Unix() / windowSec
			key := "ratelimit:" + clientKey(c) + ":" + strconv.FormatInt(slot, 10)

			count, err := client.Do(ctx, client.B().Incr().Key(key).Build()).AsInt64()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				_ = client.Do(ctx, client.B().Expire().Key(key).Seconds(windowSec).Build()).Error()
			}

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
