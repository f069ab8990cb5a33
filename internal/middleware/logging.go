package middleware

import (
	"ProjectBlog/pkg/log"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

var sensitiveFields = []string{
	"password", "confirmPassword", "password_confirmation",
	"token", "secret", "key", "auth", "credential", "authorization",
}

func LoggerConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, ok := c.Locals(RequestIDKey).(string)
		if !ok || requestID == "" {
			requestID = "unknown"
		}

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		if err != nil && status == fiber.StatusInternalServerError {
			return err
		}

		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    latency.Milliseconds(),
			"ip":            c.IP(),
			"user_agent":    c.Get("User-Agent"),
			"referer":       c.Get("Referer"),
			"response_size": len(c.Response().Body()),
		}

		if body := c.Request().Body(); len(body) > 0 {
			logFields["request_body"] = sanitizeRequestBody(string(c.Request().Header.ContentType()), string(body))
		}

		if status >= 500 {
			log.Error(logFields, "Server error")
		} else if status >= 400 {
			log.Warn(logFields, "Client error")
		} else {
			log.Info(logFields, "Success")
		}

		return err
	}
}

func sanitizeRequestBody(contentType string, body string) string {
	switch {
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		var jsonBody map[string]interface{}
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(body), &jsonBody); err != nil {
			return "[non-JSON body]"
		}

		for _, field := range sensitiveFields {
			if _, exists := jsonBody[field]; exists {
				jsonBody[field] = "[SECRET]"
			}
		}

		sanitized, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(jsonBody)
		if err != nil {
			return "[sanitization-failed]"
		}
		return string(sanitized)

	case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
		values, err := url.ParseQuery(body)
		if err != nil {
			return "[malformed form body]"
		}

		for _, field := range sensitiveFields {
			if values.Has(field) {
				values.Set(field, "[SECRET]")
			}
		}
		return values.Encode()

	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		return "[multipart body]"
	}

	return "[unsupported body]"
}
