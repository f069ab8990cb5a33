package blogHandler

import (
	blogsService "ProjectBlog/internal/api/blog/service"
	"ProjectBlog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogsService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	srv.Get("/", h.HandleHome)
	srv.Get("/post_blog", h.middleware.RequireSession, h.HandlePostPage)

	blogs := srv.Group("/blogs")

	// Logged-in only
	blogs.Get("/blogs", h.middleware.RequireSession, h.HandleFeed)
	blogs.Get("/post", h.middleware.RequireSession, h.HandlePostPage)
	blogs.Post("/post", h.middleware.RequireSession, h.CreatePost)
	blogs.Post("/upload-image", h.middleware.RequireSession, h.UploadImage)

	// Public
	blogs.Get("/read/:id", h.ReadPost)
	blogs.Post("/comment", h.middleware.NewRateLimiter, h.AddComment)
	blogs.Post("/reply", h.middleware.NewRateLimiter, h.AddReply)
}
