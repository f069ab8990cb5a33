package authHandler

import (
	authService "ProjectBlog/internal/api/auth/service"
	"ProjectBlog/internal/middleware"
	"ProjectBlog/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	authService authService.AuthService
	middleware  middleware.Middleware
	sessions    session.ISession
}

func New(
	log *logrus.Logger,
	as authService.AuthService,
	middleware middleware.Middleware,
	sessions session.ISession) *AuthHandler {
	return &AuthHandler{
		log:         log,
		authService: as,
		middleware:  middleware,
		sessions:    sessions,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	srv.Get("/register", h.HandleRegisterPage)
	srv.Post("/register", h.middleware.NewRateLimiter, h.HandleRegister)

	srv.Get("/login", h.HandleLoginPage)
	srv.Post("/login", h.middleware.NewRateLimiter, h.HandleLogin)

	srv.Get("/logout", h.HandleLogout)
}
