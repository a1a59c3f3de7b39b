package middleware

import (
	"strconv"
	"time"

	"gamelibrary-backend/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics collects HTTP request metrics. Requests are labelled by route
// pattern, not raw path, so ids do not explode label cardinality.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := c.Method()

		metrics.RequestInProgress.WithLabelValues(method).Inc()
		defer metrics.RequestInProgress.WithLabelValues(method).Dec()

		startTime := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		path := "unmatched"
		if route := c.Route(); route != nil && route.Path != "/" && route.Path != "" {
			path = route.Path
		}

		labels := []string{strconv.Itoa(status), method, path}
		metrics.RequestCounter.WithLabelValues(labels...).Inc()
		metrics.RequestDuration.WithLabelValues(labels...).Observe(time.Since(startTime).Seconds())

		return err
	}
}
