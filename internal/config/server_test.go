package config

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"ProjectBlog/internal/testutil"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	env := LoadEnv()
	env.DBDriver = DriverSQLite
	env.DBPath = filepath.Join(dir, "blog.db")
	env.DBAutoMigrate = true
	env.RedisAddress = ""
	env.StorageDriver = StorageLocal
	env.UploadDir = filepath.Join(dir, "uploads")

	logger := testutil.NewLogger()
	server, err := NewServer(env,
		WithFiber(NewFiber(logger)),
		WithLogger(logger),
		WithValidator(NewValidator()),
		WithDatabase(),
		WithSessionStore(),
		WithImageStorage(),
		WithMetrics(),
		WithMiddleware(),
		WithUtils(),
		WithBcryptUtils(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.db.Close() })

	require.NoError(t, server.RegisterHandler())
	server.mount()

	return server
}

type client struct {
	t       *testing.T
	app     *fiber.App
	cookies []*http.Cookie
}

func (c *client) do(req *http.Request) (*http.Response, string) {
	c.t.Helper()
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	resp, err := c.app.Test(req, int((10 * time.Second).Milliseconds()))
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if cookies := resp.Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}

	body, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, string(body)
}

func (c *client) get(path string) (*http.Response, string) {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) postForm(path string, values url.Values) (*http.Response, string) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return c.do(req)
}

func (c *client) postJSON(path string, body interface{}) (*http.Response, map[string]interface{}) {
	payload, err := jsoniter.Marshal(body)
	require.NoError(c.t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, raw := c.do(req)

	var out map[string]interface{}
	require.NoError(c.t, jsoniter.UnmarshalFromString(raw, &out), raw)
	return resp, out
}

func TestServer_HealthAndAssets(t *testing.T) {
	server := newTestServer(t)
	c := &client{t: t, app: server.engine}

	resp, body := c.get("/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Server is Healthy!"}`, body)

	resp, _ = c.get("/public/css/style.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = c.get("/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No posts yet.")
}

func TestServer_RegisterLoginPostCommentFlow(t *testing.T) {
	server := newTestServer(t)
	c := &client{t: t, app: server.engine}

	registration := url.Values{
		"fullName":        {"Ada Lovelace"},
		"email":           {"ada@example.com"},
		"password":        {"engine42"},
		"confirmPassword": {"engine42"},
	}

	resp, _ := c.postForm("/register", registration)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

	resp, body := c.postForm("/register", registration)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Email already exists or database error.")
	assert.Contains(t, body, `value="Ada Lovelace"`)

	resp, body = c.postForm("/login", url.Values{"email": {"ada@example.com"}, "password": {"wrong-pass"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Incorrect password.")

	resp, _ = c.get("/blogs/post")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

	resp, _ = c.postForm("/login", url.Values{"email": {"ada@example.com"}, "password": {"engine42"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
	require.NotEmpty(t, c.cookies)

	resp, body = c.get("/blogs/post")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Write a post")
	assert.Contains(t, body, "ada@example.com")

	resp, out := c.postJSON("/blogs/post", map[string]interface{}{
		"title":    "Analytical Engines",
		"content":  "Notes on the engine.",
		"category": "Technology",
		"blog_tag": "history",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, out)
	assert.Equal(t, true, out["success"])
	blogID := int64(out["blogId"].(float64))
	require.Positive(t, blogID)

	resp, out = c.postJSON("/blogs/comment", map[string]interface{}{
		"idblog":        blogID,
		"comment_name":  "Charles",
		"comment_email": "charles@example.com",
		"comment_msg":   "Splendid.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, out)
	commentID := int64(out["commentId"].(float64))

	resp, out = c.postJSON("/blogs/reply", map[string]interface{}{
		"idcomment":   commentID,
		"reply_name":  "Ada",
		"reply_email": "ada@example.com",
		"reply_msg":   "Thank you.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, out)

	resp, body = c.get("/blogs/read/" + strconv.FormatInt(blogID, 10))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Analytical Engines")
	assert.Contains(t, body, "Technology")
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "Splendid.")
	assert.Contains(t, body, "Thank you.")

	resp, body = c.get("/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Analytical Engines")

	resp, body = c.get("/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "blog_posts_created_total 1")

	resp, _ = c.get("/logout")
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	resp, _ = c.get("/blogs/post")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

func TestServer_ReadMissingPost(t *testing.T) {
	server := newTestServer(t)
	c := &client{t: t, app: server.engine}

	resp, body := c.get("/blogs/read/404")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Blog not found", body)
}

func TestNewServer_RequiresCollaborators(t *testing.T) {
	_, err := NewServer(Env{}, WithLogger(testutil.NewLogger()))
	assert.Error(t, err)

	_, err = NewServer(Env{DBDriver: "mysql"}, WithFiber(fiber.New()), WithLogger(testutil.NewLogger()), WithDatabase())
	assert.Error(t, err)
}

func TestCookieKey(t *testing.T) {
	key := CookieKey("I_know_your_secret")

	assert.Len(t, key, 44)
	assert.Equal(t, key, CookieKey("I_know_your_secret"))
	assert.NotEqual(t, key, CookieKey("other"))
}

func TestLoadEnv_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "SESSION_SECRET", "SESSION_TTL", "DB_DRIVER", "DB_AUTO_MIGRATE", "STORAGE_DRIVER", "UPLOAD_DIR"} {
		t.Setenv(key, "")
	}

	env := LoadEnv()
	assert.Equal(t, "3000", env.AppPort)
	assert.Equal(t, "I_know_your_secret", env.SessionSecret)
	assert.Equal(t, 24*time.Hour, env.SessionTTL)
	assert.Equal(t, DriverPostgres, env.DBDriver)
	assert.True(t, env.DBAutoMigrate)
	assert.Equal(t, StorageLocal, env.StorageDriver)
	assert.Equal(t, "./uploads", env.UploadDir)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("APP_ENV", "production")

	env := LoadEnv()
	assert.Equal(t, "8080", env.AppPort)
	assert.Equal(t, 2*time.Hour, env.SessionTTL)
	assert.Equal(t, DriverSQLite, env.DBDriver)
	assert.False(t, env.DBAutoMigrate)
	assert.Equal(t, 3, env.RedisDB)
	assert.True(t, env.IsProduction())
}

type validated struct {
	Message string `json:"comment_msg" validate:"required"`
}

func TestNewValidator_UsesJSONNames(t *testing.T) {
	err := NewValidator().Struct(validated{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comment_msg")
}
