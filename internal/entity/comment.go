package entity

type Comment struct {
	ID      int64  `db:"id"`
	BlogID  int64  `db:"blog_id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Website string `db:"website"`
	Message string `db:"message"`
}

type Reply struct {
	ID        int64  `db:"id"`
	CommentID int64  `db:"comment_id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Message   string `db:"message"`
}

// CommentReplyRow is one row of the comment LEFT JOIN reply result. Reply is
// nil for a comment without replies.
type CommentReplyRow struct {
	Comment Comment
	Reply   *Reply
}

// CommentThread is a comment with its replies in ascending id order.
type CommentThread struct {
	Comment
	Replies []Reply
}
