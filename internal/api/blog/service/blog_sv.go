package blogService

import (
	blogs "ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *blogsService) ListRecent(ctx context.Context, limit int) ([]entity.BlogView, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if limit < 1 {
		limit = DefaultRecentLimit
	}

	repo := s.blogsRepo.NewClient()

	views, err := repo.Blogs.ListRecent(ctx, limit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"limit":      limit,
			"error":      err.Error(),
		}).Error("Failed to list recent blogs")
		return nil, err
	}

	return views, nil
}

// CreatePost validates req, makes sure its category row exists and inserts the
// post. The category check and insert are not atomic: losing a race on the
// category insert fails the request with ErrCreateCategory.
func (s *blogsService) CreatePost(ctx context.Context, userID int64, authorDisplay string, req blogs.CreatePostRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Title == "" || req.Content == "" || req.Category == "" {
		return 0, blogs.ErrInvalidPostInput
	}

	category, ok := blogs.LookupCategory(req.Category)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   req.Category,
		}).Warn("Unknown blog category")
		return 0, blogs.ErrInvalidCategory
	}

	repo := s.blogsRepo.NewClient()

	exists, err := repo.Categories.Exists(ctx, category.ID)
	if err != nil {
		return 0, blogs.ErrCheckCategory
	}

	if !exists {
		if err := repo.Categories.CreateCategory(ctx, category.Entity()); err != nil {
			if errors.Is(err, blogs.ErrCategoryExists) {
				s.log.WithFields(logrus.Fields{
					"request_id":  requestID,
					"category_id": category.ID,
				}).Warn("Lost category insert race")
			}
			return 0, blogs.ErrCreateCategory
		}
	}

	if authorDisplay == "" {
		authorDisplay = "Unknown"
	}

	id, err := repo.Blogs.CreateBlog(ctx, entity.Blog{
		Title:      req.Title,
		Body:       req.Content,
		ImageURL:   req.ImageURL,
		Author:     authorDisplay,
		CreatedAt:  time.Now().UTC(),
		CategoryID: category.ID,
		Tag:        req.Tag,
		UserID:     userID,
	})
	if err != nil {
		return 0, blogs.ErrCreateBlog
	}

	s.metrics.IncPosts()

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    id,
		"user_id":    userID,
	}).Info("Blog post created")

	return id, nil
}

// ReadPost returns the post and its comment threads. A failure loading
// comments yields an empty thread list instead of an error.
func (s *blogsService) ReadPost(ctx context.Context, id int64) (entity.BlogView, []entity.CommentThread, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo := s.blogsRepo.NewClient()

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return entity.BlogView{}, nil, blogs.ErrBlogNotFound
		}
		return entity.BlogView{}, nil, blogs.ErrInternalServer
	}

	rows, err := repo.Comments.GetThreadRows(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    id,
		}).Warn("Serving blog without comments")
		return blog, []entity.CommentThread{}, nil
	}

	return blog, blogs.AssembleThreads(rows), nil
}

func (s *blogsService) GetAllCategories(ctx context.Context) ([]entity.BlogCategory, error) {
	return s.blogsRepo.NewClient().Categories.GetAllCategories(ctx)
}
