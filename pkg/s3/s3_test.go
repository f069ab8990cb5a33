package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(Config{Region: "us-east-1"})
	assert.Error(t, err)
}

func TestNew_BuildsUploader(t *testing.T) {
	store, err := New(Config{
		Region:          "us-east-1",
		AccessKeyID:     "id",
		SecretAccessKey: "secret",
		BucketName:      "blog-images",
		KeyPrefix:       "uploads/",
	})
	require.NoError(t, err)

	client, ok := store.(*s3Client)
	require.True(t, ok)
	assert.Equal(t, "blog-images", client.bucketName)
	assert.Equal(t, "uploads/", client.keyPrefix)
	assert.NotNil(t, client.uploader)
}
