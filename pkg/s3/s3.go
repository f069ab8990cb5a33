package s3

import (
	"ProjectBlog/pkg/storage"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	KeyPrefix       string
}

type s3Client struct {
	uploader   *s3manager.Uploader
	bucketName string
	keyPrefix  string
}

// New returns an image store backed by an S3 bucket. Objects must be publicly
// readable for the returned locations to render in posts.
func New(cfg Config) (storage.ItfStorage, error) {
	if cfg.BucketName == "" {
		return nil, errors.New("s3 bucket name is required")
	}

	sess, err := newSession(cfg)
	if err != nil {
		return nil, err
	}

	return &s3Client{
		uploader:   s3manager.NewUploader(sess),
		bucketName: cfg.BucketName,
		keyPrefix:  cfg.KeyPrefix,
	}, nil
}

func (s *s3Client) Put(ctx context.Context, name string, body io.Reader, contentType string) (string, error) {
	input := &s3manager.UploadInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.keyPrefix + name),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	uploadOutput, err := s.uploader.UploadWithContext(ctx, input)
	if err != nil {
		return "", err
	}

	return uploadOutput.Location, nil
}

func newSession(cfg Config) (*session.Session, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	return session.NewSession(awsCfg)
}
