package middleware

import (
	"ProjectBlog/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewSessionMiddleware resolves the session user, when there is one, into
// Locals so handlers and templates can see it. A broken session is treated as
// anonymous.
func (m *middleware) NewSessionMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, err := m.sessions.Load(ctx)
		if err != nil {
			m.log.WithFields(logrus.Fields{
				"request_id": m.GetRequestID(ctx),
				"error":      err.Error(),
			}).Warn("Failed to load session")
			return ctx.Next()
		}

		if user != nil {
			ctx.Locals(session.LocalsUser, user)
		}

		return ctx.Next()
	}
}

// RequireSession redirects anonymous visitors to the login page.
func (m *middleware) RequireSession(ctx *fiber.Ctx) error {
	if _, err := session.GetUserLoginData(ctx); err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": m.GetRequestID(ctx),
			"path":       ctx.Path(),
		}).Debug("No session, redirecting to login")
		return ctx.Redirect("/login")
	}

	return ctx.Next()
}
