package blogs

type CreatePostRequest struct {
	Title    string `json:"title" form:"title" validate:"required"`
	Content  string `json:"content" form:"content" validate:"required"`
	Category string `json:"category" form:"category" validate:"required"`
	Tag      string `json:"blog_tag" form:"blog_tag"`
	ImageURL string `json:"blog_image" form:"blog_image"`
}

type CreatePostResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	BlogID  int64  `json:"blogId"`
}

type CreateCommentRequest struct {
	BlogID  int64  `json:"idblog" form:"idblog" validate:"required"`
	Name    string `json:"comment_name" form:"comment_name" validate:"required"`
	Email   string `json:"comment_email" form:"comment_email" validate:"required"`
	Website string `json:"comment_website" form:"comment_website"`
	Message string `json:"comment_msg" form:"comment_msg" validate:"required"`
}

type CreateCommentResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CommentID int64  `json:"commentId"`
}

type CreateReplyRequest struct {
	CommentID int64  `json:"idcomment" form:"idcomment" validate:"required"`
	Name      string `json:"reply_name" form:"reply_name" validate:"required"`
	Email     string `json:"reply_email" form:"reply_email" validate:"required"`
	Message   string `json:"reply_msg" form:"reply_msg" validate:"required"`
}

type CreateReplyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ReplyID int64  `json:"replyId"`
}

type UploadImageResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
