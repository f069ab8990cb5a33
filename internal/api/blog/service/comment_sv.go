package blogService

import (
	blogs "ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	"context"
)

func (s *blogsService) AddComment(ctx context.Context, req blogs.CreateCommentRequest) (int64, error) {
	if req.BlogID == 0 || req.Name == "" || req.Email == "" || req.Message == "" {
		return 0, blogs.ErrMissingFields
	}

	repo := s.blogsRepo.NewClient()

	id, err := repo.Comments.CreateComment(ctx, entity.Comment{
		BlogID:  req.BlogID,
		Name:    req.Name,
		Email:   req.Email,
		Website: req.Website,
		Message: req.Message,
	})
	if err != nil {
		return 0, blogs.ErrAddComment
	}

	s.metrics.IncComments()

	return id, nil
}

func (s *blogsService) AddReply(ctx context.Context, req blogs.CreateReplyRequest) (int64, error) {
	if req.CommentID == 0 || req.Name == "" || req.Email == "" || req.Message == "" {
		return 0, blogs.ErrMissingFields
	}

	repo := s.blogsRepo.NewClient()

	id, err := repo.Comments.CreateReply(ctx, entity.Reply{
		CommentID: req.CommentID,
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
	})
	if err != nil {
		return 0, blogs.ErrAddReply
	}

	s.metrics.IncReplies()

	return id, nil
}
