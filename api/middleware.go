package api

import (
	"time"

	"ringside/service"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// RateLimitMiddleware enforces a fixed-window per-client request cap
// backed by a shared counter, so the limit holds across instances.
func RateLimitMiddleware(limiter service.RateLimiter, perMinute int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		windowStart := time.Now().UTC().Truncate(time.Minute)

		count, err := limiter.Increment(c.Context(), c.IP(), windowStart)
		if err != nil {
			// Counting failures must not take the API down
			log.WithError(err).Warn("Rate limit counter unavailable")
			return c.Next()
		}

		if count > perMinute {
			return jsonError(c, fiber.StatusTooManyRequests, "rate limit exceeded")
		}

		return c.Next()
	}
}
