package middleware

import (
	"strconv"
	"time"

	"grocery/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request latency by method, route pattern and status.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		metrics.HTTPLatency.
			WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(responseStatus(c, err))).
			Observe(time.Since(start).Seconds())
		return err
	}
}
