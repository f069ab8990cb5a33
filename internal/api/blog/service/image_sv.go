package blogService

import (
	blogs "ProjectBlog/internal/api/blog"
	contextPkg "ProjectBlog/pkg/context"
	"bytes"
	"context"
	"io"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	MaxImageSize    = 5 * 1024 * 1024
	imageFieldName  = "image"
	uploadsRejected = "rejected"
	uploadsStored   = "stored"
)

var imageMimeType = regexp.MustCompile(`(?i)^image/(png|jpe?g|gif|webp)$`)

// StoreImage persists an image upload and returns its public URL. Only the
// declared content type is checked, not the bytes.
func (s *blogsService) StoreImage(ctx context.Context, upload ImageUpload) (string, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if upload.Body == nil {
		return "", blogs.ErrNoFileUploaded
	}

	if !imageMimeType.MatchString(upload.ContentType) {
		s.log.WithFields(logrus.Fields{
			"request_id":   requestID,
			"content_type": upload.ContentType,
		}).Warn("Rejected non-image upload")
		s.metrics.IncUploads(uploadsRejected)
		return "", blogs.ErrInvalidFileType
	}

	if upload.Size > MaxImageSize {
		s.metrics.IncUploads(uploadsRejected)
		return "", blogs.ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(upload.Body, MaxImageSize+1))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read upload")
		return "", blogs.ErrFailedToUpload
	}
	if len(data) > MaxImageSize {
		s.metrics.IncUploads(uploadsRejected)
		return "", blogs.ErrFileTooLarge
	}

	name, err := s.utils.NewUploadName(imageFieldName, upload.Filename, time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate upload name")
		return "", blogs.ErrFailedToUpload
	}

	url, err := s.images.Put(ctx, name, bytes.NewReader(data), upload.ContentType)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       name,
			"error":      err.Error(),
		}).Error("Failed to store image")
		return "", blogs.ErrFailedToUpload
	}

	s.metrics.IncUploads(uploadsStored)

	return url, nil
}
