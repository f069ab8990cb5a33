package session

import (
	"ProjectBlog/internal/entity"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	keyUserID    = "user_id"
	keyUserEmail = "user_email"

	// LocalsUser is the fiber Locals key holding *entity.UserLoginData for an
	// authenticated request. Templates see it as .user.
	LocalsUser = "user"
)

type Config struct {
	// Storage defaults to fiber's in-memory storage when nil.
	Storage      fiber.Storage
	Expiration   time.Duration
	CookieSecure bool
}

type ISession interface {
	Establish(c *fiber.Ctx, user entity.UserLoginData) error
	Load(c *fiber.Ctx) (*entity.UserLoginData, error)
	Destroy(c *fiber.Ctx) error
}

type manager struct {
	store *session.Store
}

func New(cfg Config) ISession {
	if cfg.Expiration <= 0 {
		cfg.Expiration = 24 * time.Hour
	}

	store := session.New(session.Config{
		Storage:        cfg.Storage,
		Expiration:     cfg.Expiration,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: "Lax",
	})

	return &manager{store: store}
}

// Establish binds user to a new session id and persists it. Any id the
// caller arrived with is deleted from storage.
func (m *manager) Establish(c *fiber.Ctx, user entity.UserLoginData) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}

	if err := sess.Regenerate(); err != nil {
		return err
	}

	sess.Set(keyUserID, user.ID)
	sess.Set(keyUserEmail, user.Email)

	return sess.Save()
}

// Load returns the session user, or nil when the request carries no
// authenticated session.
func (m *manager) Load(c *fiber.Ctx) (*entity.UserLoginData, error) {
	sess, err := m.store.Get(c)
	if err != nil {
		return nil, err
	}
	if sess.Fresh() {
		return nil, nil
	}

	id, ok := sess.Get(keyUserID).(int64)
	if !ok || id == 0 {
		return nil, nil
	}
	email, _ := sess.Get(keyUserEmail).(string)

	return &entity.UserLoginData{ID: id, Email: email}, nil
}

// Destroy removes the session from storage and expires the cookie. Calling it
// without a session is a no-op.
func (m *manager) Destroy(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

func GetUserLoginData(c *fiber.Ctx) (entity.UserLoginData, error) {
	user, ok := c.Locals(LocalsUser).(*entity.UserLoginData)
	if !ok || user == nil {
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return *user, nil
}
