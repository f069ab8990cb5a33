package blogRepository

import (
	blogs "ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BlogViewDB struct {
	ID              sql.NullInt64  `db:"id"`
	Title           sql.NullString `db:"title"`
	Body            sql.NullString `db:"body"`
	ImageURL        sql.NullString `db:"image_url"`
	Author          sql.NullString `db:"author"`
	CreatedAt       sql.NullTime   `db:"created_at"`
	CategoryID      sql.NullInt64  `db:"category_id"`
	Tag             sql.NullString `db:"tag"`
	UserID          sql.NullInt64  `db:"user_id"`
	CategoryTitle   sql.NullString `db:"category_title"`
	AuthorFirstName sql.NullString `db:"author_first_name"`
	AuthorLastName  sql.NullString `db:"author_last_name"`
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(i int64) sql.NullInt64 {
	return sql.NullInt64{Int64: i, Valid: i != 0}
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"title":       blog.Title,
		"body":        blog.Body,
		"image_url":   nullString(blog.ImageURL),
		"author":      blog.Author,
		"created_at":  blog.CreatedAt,
		"category_id": nullInt64(blog.CategoryID),
		"tag":         nullString(blog.Tag),
		"user_id":     blog.UserID,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return 0, err
	}

	return id, nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id int64) (entity.BlogView, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogViewDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBlogByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.BlogView{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogByID no rows found")
			return entity.BlogView{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.BlogView{}, err
	}

	return r.makeBlogView(blog), nil
}

func (r *blogsRepository) ListRecent(ctx context.Context, limit int) ([]entity.BlogView, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blogsList []BlogViewDB

	argsKV := map[string]interface{}{
		"limit": limit,
	}

	query, args, err := sqlx.Named(queryListRecent, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListRecent named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &blogsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListRecent execution err")
		return nil, err
	}

	views := make([]entity.BlogView, 0, len(blogsList))
	for _, blogDB := range blogsList {
		views = append(views, r.makeBlogView(blogDB))
	}

	return views, nil
}

func (r *blogsRepository) makeBlogView(blog BlogViewDB) entity.BlogView {
	return entity.BlogView{
		Blog: entity.Blog{
			ID:         blog.ID.Int64,
			Title:      blog.Title.String,
			Body:       blog.Body.String,
			ImageURL:   blog.ImageURL.String,
			Author:     blog.Author.String,
			CreatedAt:  blog.CreatedAt.Time,
			CategoryID: blog.CategoryID.Int64,
			Tag:        blog.Tag.String,
			UserID:     blog.UserID.Int64,
		},
		CategoryTitle:   blog.CategoryTitle.String,
		AuthorFirstName: blog.AuthorFirstName.String,
		AuthorLastName:  blog.AuthorLastName.String,
	}
}
