package blogRepository

import (
	"ProjectBlog/database/sqlerr"
	blogs "ProjectBlog/internal/api/blog"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type CategoryDB struct {
	ID    sql.NullInt64  `db:"id"`
	Title sql.NullString `db:"title"`
}

func (r *categoriesRepository) GetAllCategories(ctx context.Context) ([]entity.BlogCategory, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var categoriesList []CategoryDB

	if err := r.q.SelectContext(ctx, &categoriesList, queryGetAllCategories); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllCategories execution err")
		return nil, err
	}

	categories := make([]entity.BlogCategory, 0, len(categoriesList))
	for _, categoryDB := range categoriesList {
		categories = append(categories, entity.BlogCategory{
			ID:    categoryDB.ID.Int64,
			Title: categoryDB.Title.String,
		})
	}

	return categories, nil
}

func (r *categoriesRepository) Exists(ctx context.Context, id int64) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCountCategoryByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Exists named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	var count int
	if err := r.q.GetContext(ctx, &count, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": id,
			"error":       err.Error(),
		}).Error("Exists execution err")
		return false, err
	}

	return count > 0, nil
}

// CreateCategory inserts category with its fixed id. A concurrent insert of
// the same id surfaces as blogs.ErrCategoryExists.
func (r *categoriesRepository) CreateCategory(ctx context.Context, category entity.BlogCategory) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":    category.ID,
		"title": category.Title,
	}

	query, args, err := sqlx.Named(queryCreateCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateCategory")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		if sqlerr.IsUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"category_id": category.ID,
				"error":       err.Error(),
			}).Warn("Category was created concurrently")
			return blogs.ErrCategoryExists
		}

		r.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": category.ID,
			"error":       err.Error(),
		}).Error("Database error when creating category")
		return err
	}

	return nil
}
