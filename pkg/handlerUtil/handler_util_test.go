package handlerUtil_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"ProjectBlog/pkg/handlerUtil"
	"ProjectBlog/pkg/response"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func newApp(err error) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	h := handlerUtil.New(logger)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return h.Handle(c, "req-1", err, c.Path(), "test")
	})
	return app
}

func decode(t *testing.T, resp *http.Response) handlerUtil.ErrorResponse {
	t.Helper()
	defer resp.Body.Close()

	var body handlerUtil.ErrorResponse
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHandle_ResponseErrorKeepsCodeAndMessage(t *testing.T) {
	app := newApp(response.NewError(http.StatusBadRequest, "All required fields must be filled"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, "All required fields must be filled", body.Message)
}

func TestHandle_UnknownErrorIsHidden(t *testing.T) {
	app := newApp(errors.New("pq: connection refused"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode(t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, "Internal Server Error", body.Message)
	assert.Equal(t, "req-1", body.TraceID)
}
