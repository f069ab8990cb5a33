package blogService

import (
	blogs "ProjectBlog/internal/api/blog"
	blogsRepository "ProjectBlog/internal/api/blog/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/metrics"
	"ProjectBlog/pkg/storage"
	"ProjectBlog/pkg/utils"
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultRecentLimit is the size of the home and blogs feeds.
const DefaultRecentLimit = 6

type IBlogsService interface {
	ListRecent(ctx context.Context, limit int) ([]entity.BlogView, error)
	CreatePost(ctx context.Context, userID int64, authorDisplay string, req blogs.CreatePostRequest) (int64, error)
	ReadPost(ctx context.Context, id int64) (entity.BlogView, []entity.CommentThread, error)
	AddComment(ctx context.Context, req blogs.CreateCommentRequest) (int64, error)
	AddReply(ctx context.Context, req blogs.CreateReplyRequest) (int64, error)
	StoreImage(ctx context.Context, upload ImageUpload) (string, error)
	GetAllCategories(ctx context.Context) ([]entity.BlogCategory, error)
}

// ImageUpload is an uploaded file as declared by the client. Size may be 0
// when unknown; the body is still cut off at the limit.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
	images    storage.ItfStorage
	utils     utils.IUtils
	metrics   *metrics.Metrics
}

// NewBlogsService wires the blog service. m may be nil.
func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	images storage.ItfStorage,
	utils utils.IUtils,
	m *metrics.Metrics,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		images:    images,
		utils:     utils,
		metrics:   m,
	}
}
