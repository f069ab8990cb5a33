package blogHandler

import (
	blogs "ProjectBlog/internal/api/blog"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/handlerUtil"
	"ProjectBlog/pkg/log"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *BlogsHandler) AddComment(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req blogs.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path(), blogs.ErrMissingFields)
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path(), blogs.ErrMissingFields)
	}

	commentID, err := h.blogsService.AddComment(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_comment")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"blog_id":    req.BlogID,
		"comment_id": commentID,
	}).Info("Comment added")

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.CreateCommentResponse{
			Success:   true,
			Message:   "Comment added successfully",
			CommentID: commentID,
		})
	}
}

func (h *BlogsHandler) AddReply(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req blogs.CreateReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path(), blogs.ErrMissingFields)
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path(), blogs.ErrMissingFields)
	}

	replyID, err := h.blogsService.AddReply(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "add_reply")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.CreateReplyResponse{
			Success: true,
			Message: "Reply added successfully",
			ReplyID: replyID,
		})
	}
}
