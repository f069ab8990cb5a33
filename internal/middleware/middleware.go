package middleware

import (
	"ProjectBlog/pkg/metrics"
	"ProjectBlog/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewSessionMiddleware() fiber.Handler
	RequireSession(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	NewMetricsMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type middleware struct {
	rateLimitter        *rateLimiter
	requestIDMiddleware fiber.Handler
	sessions            session.ISession
	metrics             *metrics.Metrics
	log                 *logrus.Logger
}

// New builds the shared middleware set. m may be nil.
func New(logger *logrus.Logger, sessions session.ISession, m *metrics.Metrics) Middleware {
	return &middleware{
		rateLimitter:        newRateLimiter(5, 20),
		requestIDMiddleware: NewRequestIDMiddleware(),
		sessions:            sessions,
		metrics:             m,
		log:                 logger,
	}
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
