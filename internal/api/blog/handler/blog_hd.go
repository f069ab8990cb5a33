package blogHandler

import (
	blogs "ProjectBlog/internal/api/blog"
	blogsService "ProjectBlog/internal/api/blog/service"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/handlerUtil"
	"ProjectBlog/pkg/log"
	"ProjectBlog/pkg/response"
	"ProjectBlog/pkg/session"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	viewIndex    = "index"
	viewPostBlog = "post_blog"
	viewReadBlog = "read_blog"
)

// HandleHome renders the newest posts. A failing store shows an empty feed.
func (h *BlogsHandler) HandleHome(ctx *fiber.Ctx) error {
	views := h.recent(ctx)

	return ctx.Render(viewIndex, fiber.Map{
		"blogs": views,
	})
}

// HandleFeed renders the newest post as featured and the rest below it.
func (h *BlogsHandler) HandleFeed(ctx *fiber.Ctx) error {
	views := h.recent(ctx)

	var featured *entity.BlogView
	if len(views) > 0 {
		featured = &views[0]
		views = views[1:]
	}

	return ctx.Render(viewIndex, fiber.Map{
		"featuredBlog": featured,
		"blogs":        views,
	})
}

func (h *BlogsHandler) recent(ctx *fiber.Ctx) []entity.BlogView {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	views, err := h.blogsService.ListRecent(c, blogsService.DefaultRecentLimit)
	if err != nil {
		h.log.WithFields(log.Fields{
			"request_id": h.middleware.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to list recent posts")
		return []entity.BlogView{}
	}

	return views
}

func (h *BlogsHandler) HandlePostPage(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	categories, err := h.blogsService.GetAllCategories(c)
	if err != nil {
		h.log.WithFields(log.Fields{
			"request_id": h.middleware.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to load categories")
		categories = []entity.BlogCategory{}
	}

	return ctx.Render(viewPostBlog, fiber.Map{
		"categories":      categories,
		"knownCategories": blogs.Categories,
	})
}

func (h *BlogsHandler) CreatePost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create post request")

	userData, err := session.GetUserLoginData(ctx)
	if err != nil {
		return ctx.Redirect("/login")
	}

	var req blogs.CreatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path(), blogs.ErrInvalidPostInput)
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path(), blogs.ErrInvalidPostInput)
	}

	blogID, err := h.blogsService.CreatePost(c, userData.ID, userData.Email, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.CreatePostResponse{
			Success: true,
			Message: "Blog post created successfully",
			BlogID:  blogID,
		})
	}
}

// ReadPost renders one post with its comment threads. Failures answer in
// plain text since the caller is a browser navigation.
func (h *BlogsHandler) ReadPost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusNotFound).SendString(blogs.ErrBlogNotFound.Error())
	}

	view, threads, err := h.blogsService.ReadPost(c, int64(id))
	if err != nil {
		if response.StatusCode(err) == fiber.StatusNotFound {
			return ctx.Status(fiber.StatusNotFound).SendString(blogs.ErrBlogNotFound.Error())
		}

		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"blog_id":    id,
			"error":      err.Error(),
		}).Error("Failed to read post")
		return ctx.Status(fiber.StatusInternalServerError).SendString(blogs.ErrInternalServer.Error())
	}

	return ctx.Render(viewReadBlog, fiber.Map{
		"blog":     view,
		"comments": threads,
	})
}
