package monitoring

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewMiddleware records request count and latency per matched route pattern.
func NewMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		HttpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		HttpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}
