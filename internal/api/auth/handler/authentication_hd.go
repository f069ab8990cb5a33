package authHandler

import (
	"ProjectBlog/internal/api/auth"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/response"
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	viewRegister = "register"
	viewLogin    = "login"
)

func (h *AuthHandler) HandleRegisterPage(ctx *fiber.Ctx) error {
	return ctx.Render(viewRegister, fiber.Map{
		"error":    "",
		"fullName": "",
		"email":    "",
	})
}

func (h *AuthHandler) HandleRegister(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	var req auth.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to parse registration form")
		return h.renderRegister(ctx, fiber.StatusBadRequest, req, "Invalid form submission.")
	}

	if _, err := h.authService.User().RegisterUser(c, req); err != nil {
		if errors.Is(err, auth.ErrInternal) {
			return ctx.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}

		var respErr *response.Error
		if errors.As(err, &respErr) {
			return h.renderRegister(ctx, respErr.Code, req, respErr.Error())
		}

		h.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Unexpected registration failure")
		return ctx.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return ctx.Redirect("/login")
}

func (h *AuthHandler) renderRegister(ctx *fiber.Ctx, status int, req auth.RegisterRequest, message string) error {
	return ctx.Status(status).Render(viewRegister, fiber.Map{
		"error":    message,
		"fullName": req.FullName,
		"email":    req.Email,
	})
}

func (h *AuthHandler) HandleLoginPage(ctx *fiber.Ctx) error {
	return ctx.Render(viewLogin, fiber.Map{
		"error": "",
		"email": "",
	})
}

func (h *AuthHandler) HandleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	var req auth.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to parse login form")
		return h.renderLogin(ctx, fiber.StatusBadRequest, req.Email, "Invalid form submission.")
	}

	user, err := h.authService.Auth().Login(c, req)
	if err != nil {
		return h.renderLogin(ctx, response.StatusCode(err), req.Email, err.Error())
	}

	if err := h.sessions.Establish(ctx, user); err != nil {
		h.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
			"error":      err.Error(),
		}).Error("Failed to establish session")
		return h.renderLogin(ctx, fiber.StatusInternalServerError, req.Email, auth.ErrDatabase.Error())
	}

	h.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("User logged in")

	return ctx.Redirect("/")
}

func (h *AuthHandler) renderLogin(ctx *fiber.Ctx, status int, email string, message string) error {
	return ctx.Status(status).Render(viewLogin, fiber.Map{
		"error": message,
		"email": email,
	})
}

// HandleLogout destroys the session, if any, and always lands on the home page.
func (h *AuthHandler) HandleLogout(ctx *fiber.Ctx) error {
	if err := h.sessions.Destroy(ctx); err != nil {
		h.log.WithFields(logrus.Fields{
			"request_id": h.middleware.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to destroy session")
	}

	return ctx.Redirect("/")
}
