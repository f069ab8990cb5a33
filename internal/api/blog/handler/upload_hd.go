package blogHandler

import (
	blogs "ProjectBlog/internal/api/blog"
	blogsService "ProjectBlog/internal/api/blog/service"
	contextPkg "ProjectBlog/pkg/context"
	"ProjectBlog/pkg/handlerUtil"
	"ProjectBlog/pkg/log"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// UploadImage stores the multipart field "image" and answers with its URL.
func (h *BlogsHandler) UploadImage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	header, err := ctx.FormFile("image")
	if err != nil {
		return errHandler.Handle(ctx, requestID, blogs.ErrNoFileUploaded, ctx.Path(), "upload_image")
	}

	file, err := header.Open()
	if err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"filename":   header.Filename,
			"error":      err.Error(),
		}).Error("Failed to open uploaded file")
		return errHandler.Handle(ctx, requestID, blogs.ErrFailedToUpload, ctx.Path(), "upload_image")
	}
	defer file.Close()

	url, err := h.blogsService.StoreImage(c, blogsService.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "upload_image")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.UploadImageResponse{
			Success: true,
			URL:     url,
		})
	}
}
