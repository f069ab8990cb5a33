package authHandler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"ProjectBlog/internal/api/auth"
	authHandler "ProjectBlog/internal/api/auth/handler"
	authService "ProjectBlog/internal/api/auth/service"
	"ProjectBlog/internal/entity"
	"ProjectBlog/internal/middleware"
	"ProjectBlog/internal/testutil"
	"ProjectBlog/pkg/session"
	"ProjectBlog/pkg/view"
	"ProjectBlog/web"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

type fakeAuth struct {
	registerErr error
	loginErr    error
	user        entity.UserLoginData
}

func (f *fakeAuth) User() authService.UserDomain { return f }
func (f *fakeAuth) Auth() authService.AuthDomain { return f }

func (f *fakeAuth) GetByEmail(context.Context, string) (entity.User, error) {
	return entity.User{}, nil
}

func (f *fakeAuth) RegisterUser(context.Context, auth.RegisterRequest) (int64, error) {
	if f.registerErr != nil {
		return 0, f.registerErr
	}
	return 1, nil
}

func (f *fakeAuth) Login(context.Context, auth.LoginRequest) (entity.UserLoginData, error) {
	if f.loginErr != nil {
		return entity.UserLoginData{}, f.loginErr
	}
	return f.user, nil
}

func newApp(svc *fakeAuth) *fiber.App {
	logger := testutil.NewLogger()
	sessions := session.New(session.Config{})
	mw := middleware.New(logger, sessions, nil)

	app := fiber.New(fiber.Config{
		Views:             view.New(web.Templates(), web.TemplatesDir, view.Funcs()),
		PassLocalsToViews: true,
	})
	authHandler.New(logger, svc, mw, sessions).Start(app)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, values url.Values) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

var registration = url.Values{
	"fullName":        {"Ada Lovelace"},
	"email":           {"ada@example.com"},
	"password":        {"engine42"},
	"confirmPassword": {"engine42"},
}

func TestRegister_RedirectsToLogin(t *testing.T) {
	resp, _ := postForm(t, newApp(&fakeAuth{}), "/register", registration)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

func TestRegister_ReRendersWithMessage(t *testing.T) {
	resp, body := postForm(t, newApp(&fakeAuth{registerErr: auth.ErrPasswordMismatch}), "/register", registration)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Passwords do not match.")
	assert.Contains(t, body, `value="Ada Lovelace"`)
	assert.Contains(t, body, `value="ada@example.com"`)
	assert.NotContains(t, body, "engine42")
}

func TestRegister_InternalErrorIsGeneric(t *testing.T) {
	resp, body := postForm(t, newApp(&fakeAuth{registerErr: auth.ErrInternal}), "/register", registration)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", body)

	resp, body = postForm(t, newApp(&fakeAuth{registerErr: errors.New("boom")}), "/register", registration)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", body)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{auth.ErrEmailNotFound, http.StatusNotFound},
		{auth.ErrIncorrectPassword, http.StatusUnauthorized},
		{auth.ErrDatabase, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			resp, body := postForm(t, newApp(&fakeAuth{loginErr: tt.err}), "/login",
				url.Values{"email": {"ada@example.com"}, "password": {"nope"}})

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Contains(t, body, tt.err.Error())
			assert.Contains(t, body, `value="ada@example.com"`)
		})
	}
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	app := newApp(&fakeAuth{user: entity.UserLoginData{ID: 3, Email: "ada@example.com"}})

	resp, _ := postForm(t, app, "/login", url.Values{"email": {"ada@example.com"}, "password": {"engine42"}})

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))

	var names []string
	for _, c := range resp.Cookies() {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "session_id")
}

func TestLogout_AlwaysRedirectsHome(t *testing.T) {
	resp, err := newApp(&fakeAuth{}).Test(httptest.NewRequest(http.MethodGet, "/logout", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
}

func TestPages_Render(t *testing.T) {
	app := newApp(&fakeAuth{})

	for path, heading := range map[string]string{"/register": "Create an account", "/login": "Log in"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, string(body), heading, path)
	}
}
