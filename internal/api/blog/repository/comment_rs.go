package blogRepository

import (
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ThreadRowDB struct {
	CommentID      sql.NullInt64  `db:"comment_id"`
	BlogID         sql.NullInt64  `db:"blog_id"`
	CommentName    sql.NullString `db:"comment_name"`
	CommentEmail   sql.NullString `db:"comment_email"`
	CommentWebsite sql.NullString `db:"comment_website"`
	CommentMessage sql.NullString `db:"comment_message"`
	ReplyID        sql.NullInt64  `db:"reply_id"`
	ReplyName      sql.NullString `db:"reply_name"`
	ReplyEmail     sql.NullString `db:"reply_email"`
	ReplyMessage   sql.NullString `db:"reply_message"`
}

func (r *commentsRepository) CreateComment(ctx context.Context, comment entity.Comment) (int64, error) {
	argsKV := map[string]interface{}{
		"blog_id":    comment.BlogID,
		"name":       comment.Name,
		"email":      comment.Email,
		"website":    nullString(comment.Website),
		"message":    comment.Message,
		"created_at": time.Now().UTC(),
	}

	return r.insertReturningID(ctx, queryCreateComment, argsKV, "CreateComment")
}

func (r *commentsRepository) CreateReply(ctx context.Context, reply entity.Reply) (int64, error) {
	argsKV := map[string]interface{}{
		"comment_id": reply.CommentID,
		"name":       reply.Name,
		"email":      reply.Email,
		"message":    reply.Message,
		"created_at": time.Now().UTC(),
	}

	return r.insertReturningID(ctx, queryCreateReply, argsKV, "CreateReply")
}

func (r *commentsRepository) insertReturningID(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for " + operation)
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return 0, err
	}

	return id, nil
}

// GetThreadRows returns one row per comment/reply pair, comments newest first
// and replies oldest first within a comment.
func (r *commentsRepository) GetThreadRows(ctx context.Context, blogID int64) ([]entity.CommentReplyRow, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rowsDB []ThreadRowDB

	query, args, err := sqlx.Named(queryGetThreadRows, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetThreadRows named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rowsDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"error":      err.Error(),
		}).Error("GetThreadRows execution err")
		return nil, err
	}

	rows := make([]entity.CommentReplyRow, 0, len(rowsDB))
	for _, row := range rowsDB {
		rows = append(rows, r.makeRow(row))
	}

	return rows, nil
}

func (r *commentsRepository) makeRow(row ThreadRowDB) entity.CommentReplyRow {
	result := entity.CommentReplyRow{
		Comment: entity.Comment{
			ID:      row.CommentID.Int64,
			BlogID:  row.BlogID.Int64,
			Name:    row.CommentName.String,
			Email:   row.CommentEmail.String,
			Website: row.CommentWebsite.String,
			Message: row.CommentMessage.String,
		},
	}

	if row.ReplyID.Valid {
		result.Reply = &entity.Reply{
			ID:        row.ReplyID.Int64,
			CommentID: row.CommentID.Int64,
			Name:      row.ReplyName.String,
			Email:     row.ReplyEmail.String,
			Message:   row.ReplyMessage.String,
		}
	}

	return result
}
