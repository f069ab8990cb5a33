package blogRepository

import (
	"ProjectBlog/internal/entity"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient() Client
}

func (r *repository) NewClient() Client {
	return Client{
		Blogs:      &blogsRepository{q: r.DB, log: r.log},
		Categories: &categoriesRepository{q: r.DB, log: r.log},
		Comments:   &commentsRepository{q: r.DB, log: r.log},
	}
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) (int64, error)
		GetBlogByID(ctx context.Context, id int64) (entity.BlogView, error)
		ListRecent(ctx context.Context, limit int) ([]entity.BlogView, error)
	}

	Categories interface {
		GetAllCategories(ctx context.Context) ([]entity.BlogCategory, error)
		Exists(ctx context.Context, id int64) (bool, error)
		CreateCategory(ctx context.Context, category entity.BlogCategory) error
	}

	Comments interface {
		CreateComment(ctx context.Context, comment entity.Comment) (int64, error)
		CreateReply(ctx context.Context, reply entity.Reply) (int64, error)
		GetThreadRows(ctx context.Context, blogID int64) ([]entity.CommentReplyRow, error)
	}
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type categoriesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type commentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
