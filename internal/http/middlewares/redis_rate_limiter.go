package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
)

// RedisRateLimiter is the shared-counter variant of RateLimiter for
// deployments running more than one instance. Counters live in Redis
// under one key per client IP, expiring after the window. Redis
// failures fail open so the API stays reachable without Redis.
func RedisRateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := "rate_limit:" + c.RealIP()

			count, err := client.Do(
				ctx,
				client.B().Incr().Key(key).Build(),
			).AsInt64()
			if err != nil {
				log.Printf("rate limiter: redis incr failed: %v", err)
				return next(c)
			}

			if count == 1 {
				if err := client.Do(
					ctx,
					client.B().Expire().Key(key).Seconds(int64(window.Seconds())).Build(),
				).Error(); err != nil {
					log.Printf("rate limiter: redis expire failed: %v", err)
				}
			}

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
