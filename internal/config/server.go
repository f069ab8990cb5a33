package config

import (
	"ProjectBlog/database/migration"
	"ProjectBlog/database/postgres"
	"ProjectBlog/database/sqlite"
	authHandler "ProjectBlog/internal/api/auth/handler"
	authRepository "ProjectBlog/internal/api/auth/repository"
	authService "ProjectBlog/internal/api/auth/service"
	blogs "ProjectBlog/internal/api/blog"
	blogHandler "ProjectBlog/internal/api/blog/handler"
	blogsRepository "ProjectBlog/internal/api/blog/repository"
	blogsService "ProjectBlog/internal/api/blog/service"
	"ProjectBlog/internal/middleware"
	"ProjectBlog/pkg/bcrypt"
	"ProjectBlog/pkg/metrics"
	"ProjectBlog/pkg/redis"
	"ProjectBlog/pkg/s3"
	"ProjectBlog/pkg/session"
	"ProjectBlog/pkg/storage"
	"ProjectBlog/pkg/utils"
	"ProjectBlog/web"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const uploadsPath = "/uploads"

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	env          Env
	db           *sqlx.DB
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	bcryptUtils  bcrypt.IBcrypt
	handlers     []handler
	sessions     session.ISession
	redisStorage *redis.Storage
	images       storage.ItfStorage
	metrics      *metrics.Metrics
	mounted      bool
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(env Env, options ...ServerOption) (*Server, error) {
	server := &Server{env: env}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase opens the store named by DB_DRIVER and, unless disabled,
// brings its schema up to date.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := OpenDatabase(s.env)
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if s.env.DBAutoMigrate {
			if err := migration.Up(db); err != nil {
				_ = db.Close()
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}

		s.db = db
		return nil
	}
}

// OpenDatabase connects to the configured store without migrating it.
func OpenDatabase(env Env) (*sqlx.DB, error) {
	switch env.DBDriver {
	case DriverPostgres:
		return postgres.New(postgres.Config{
			Host:     env.DBHost,
			Port:     env.DBPort,
			User:     env.DBUser,
			Password: env.DBPassword,
			Name:     env.DBName,
			SSLMode:  env.DBSSLMode,
		})
	case DriverSQLite:
		return sqlite.New(env.DBPath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}
}

// WithSessionStore keeps sessions in redis when REDIS_ADDRESS is set and in
// process memory otherwise.
func WithSessionStore() ServerOption {
	return func(s *Server) error {
		cfg := session.Config{
			Expiration:   s.env.SessionTTL,
			CookieSecure: s.env.IsProduction(),
		}

		if s.env.RedisAddress != "" {
			store, err := redis.New(redis.Config{
				Address:  s.env.RedisAddress,
				Password: s.env.RedisPassword,
				DB:       s.env.RedisDB,
			})
			if err != nil {
				return fmt.Errorf("failed to connect session store: %w", err)
			}
			s.redisStorage = store
			cfg.Storage = store
		}

		s.sessions = session.New(cfg)
		return nil
	}
}

func WithImageStorage() ServerOption {
	return func(s *Server) error {
		var (
			images storage.ItfStorage
			err    error
		)

		switch s.env.StorageDriver {
		case StorageS3:
			images, err = s3.New(s3.Config{
				Region:          s.env.AWSRegion,
				AccessKeyID:     s.env.AWSAccessKeyID,
				SecretAccessKey: s.env.AWSSecretAccessKey,
				BucketName:      s.env.AWSBucketName,
				KeyPrefix:       "uploads/",
			})
		case StorageLocal, "":
			images, err = storage.NewLocal(s.env.UploadDir, uploadsPath)
		default:
			err = fmt.Errorf("unsupported STORAGE_DRIVER %q", s.env.StorageDriver)
		}
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize image storage: %v", err)
			}
			return fmt.Errorf("failed to create image storage: %w", err)
		}

		s.images = images
		return nil
	}
}

func WithMetrics() ServerOption {
	return func(s *Server) error {
		s.metrics = metrics.New()
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.sessions == nil {
			return fmt.Errorf("session store must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.sessions, s.metrics)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() error {
	if err := blogs.ValidateCategories(blogs.Categories); err != nil {
		return fmt.Errorf("invalid category table: %w", err)
	}

	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.bcryptUtils, s.metrics)
	authHandlers := authHandler.New(s.log, authServices, s.middleware, s.sessions)

	// Blog Domain
	blogsRepo := blogsRepository.New(s.db, s.log)
	blogsServices := blogsService.NewBlogsService(s.log, blogsRepo, s.images, s.utils, s.metrics)
	blogsHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogsServices)

	s.handlers = append(s.handlers, authHandlers, blogsHandlers)
	return nil
}

// mount installs the middleware chain, the asset routes and every registered
// handler. It runs once.
func (s *Server) mount() {
	if s.mounted {
		return
	}
	s.mounted = true

	s.engine.Use(recover.New())
	s.engine.Use(encryptcookie.New(encryptcookie.Config{
		Key: CookieKey(s.env.SessionSecret),
	}))
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewMetricsMiddleware())
	s.engine.Use(s.middleware.NewSessionMiddleware())

	s.engine.Use("/public", filesystem.New(filesystem.Config{
		Root: http.FS(web.Static()),
	}))
	if s.env.StorageDriver != StorageS3 {
		s.engine.Static(uploadsPath, s.env.UploadDir)
	}

	s.setupHealthCheck()
	s.setupMetrics()

	for _, h := range s.handlers {
		h.Start(s.engine)
	}
}

func (s *Server) Run() error {
	s.mount()

	return s.engine.Listen(fmt.Sprintf(":%s", s.env.AppPort))
}

// Shutdown stops accepting requests, waits up to timeout for in-flight ones
// and releases the store connections.
func (s *Server) Shutdown(timeout time.Duration) error {
	err := s.engine.ShutdownWithTimeout(timeout)

	if s.redisStorage != nil {
		if cerr := s.redisStorage.Close(); cerr != nil {
			s.log.Warnf("Failed to close redis: %v", cerr)
		}
	}
	if cerr := s.db.Close(); cerr != nil {
		s.log.Warnf("Failed to close database: %v", cerr)
	}

	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

func (s *Server) setupMetrics() {
	if s.metrics == nil {
		return
	}
	s.engine.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
}

// CookieKey derives the 32-byte encryptcookie key from the session secret.
func CookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
