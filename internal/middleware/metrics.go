package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewMetricsMiddleware records request count and latency per matched route.
func (m *middleware) NewMetricsMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.metrics.ObserveRequest(ctx.Method(), ctx.Route().Path, status, time.Since(start))

		return err
	}
}
