package session

import (
	"ProjectBlog/internal/entity"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionApp(t *testing.T) *fiber.App {
	t.Helper()
	sessions := New(Config{})
	app := fiber.New()

	app.Get("/login", func(c *fiber.Ctx) error {
		return sessions.Establish(c, entity.UserLoginData{ID: 42, Email: "ada@example.com"})
	})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		user, err := sessions.Load(c)
		if err != nil {
			return err
		}
		if user == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(user.Email)
	})
	app.Get("/logout", func(c *fiber.Ctx) error {
		return sessions.Destroy(c)
	})

	return app
}

func doGet(t *testing.T, app *fiber.App, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	return nil
}

func TestSessionLifecycle(t *testing.T) {
	app := newSessionApp(t)

	assert.Equal(t, "anonymous", body(t, doGet(t, app, "/whoami")))

	loginResp := doGet(t, app, "/login")
	cookie := sessionCookie(loginResp)
	require.NotNil(t, cookie)

	assert.Equal(t, "ada@example.com", body(t, doGet(t, app, "/whoami", cookie)))

	doGet(t, app, "/logout", cookie)
	assert.Equal(t, "anonymous", body(t, doGet(t, app, "/whoami", cookie)))
}

func TestEstablishRotatesSessionID(t *testing.T) {
	app := newSessionApp(t)

	first := sessionCookie(doGet(t, app, "/login"))
	require.NotNil(t, first)

	second := sessionCookie(doGet(t, app, "/login", first))
	require.NotNil(t, second)
	assert.NotEqual(t, first.Value, second.Value)

	assert.Equal(t, "anonymous", body(t, doGet(t, app, "/whoami", first)))
	assert.Equal(t, "ada@example.com", body(t, doGet(t, app, "/whoami", second)))
}

func TestDestroyWithoutSessionIsNoop(t *testing.T) {
	app := newSessionApp(t)

	resp := doGet(t, app, "/logout")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doGet(t, app, "/logout")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetUserLoginData(t *testing.T) {
	app := fiber.New()
	app.Get("/anon", func(c *fiber.Ctx) error {
		_, err := GetUserLoginData(c)
		assert.ErrorIs(t, err, fiber.ErrUnauthorized)
		return nil
	})
	app.Get("/user", func(c *fiber.Ctx) error {
		c.Locals(LocalsUser, &entity.UserLoginData{ID: 7, Email: "x@y.z"})
		user, err := GetUserLoginData(c)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		return nil
	})

	doGet(t, app, "/anon")
	doGet(t, app, "/user")
}
