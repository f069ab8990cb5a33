package config

import (
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/view"
	"ProjectBlog/web"
	"errors"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           "Blog",
			BodyLimit:         10 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     true,
			CaseSensitive:     true,
			EnablePrintRoutes: true,
			JSONEncoder:       jsoniter.Marshal,
			JSONDecoder:       jsoniter.Unmarshal,
			Views:             view.New(web.Templates(), web.TemplatesDir, view.Funcs()),
			PassLocalsToViews: true,
			ErrorHandler:      newErrorHandler(logger),
		})

	return app
}

// newErrorHandler answers errors no handler dealt with. fiber's own errors keep
// their status; anything else is logged and hidden behind a plain 500.
func newErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).SendString(fiberErr.Message)
		}

		logger.WithFields(logrus.Fields{
			"request_id": ctx.Locals(contextPkg.LocalsRequestID),
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"error":      err.Error(),
		}).Error("Unhandled error")

		return ctx.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
}
