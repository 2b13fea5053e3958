package media

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/product-catalog/internal/config"
)

func TestNewS3UploaderPublicBaseFallsBackToEndpoint(t *testing.T) {
	u, err := NewS3Uploader(context.Background(), config.MediaConfig{
		Endpoint:  "http://localhost:9000/",
		Region:    "us-east-1",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "product-images",
		KeyPrefix: "products",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", u.publicBaseURL)
}

func TestStorageKey(t *testing.T) {
	u := &S3Uploader{keyPrefix: "products"}

	key := u.storageKey("/tmp/upload/photo.png")
	assert.True(t, strings.HasPrefix(key, "products/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)

	other := u.storageKey("/tmp/upload/photo.png")
	assert.NotEqual(t, key, other)
}

func TestStorageKeyWithoutPrefix(t *testing.T) {
	u := &S3Uploader{}
	key := u.storageKey("/tmp/upload/photo.jpg")
	assert.False(t, strings.HasPrefix(key, "/"), key)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)
}

func TestUploadMissingSourceFile(t *testing.T) {
	u := &S3Uploader{}
	_, err := u.Upload(context.Background(), "/does/not/exist.png")
	assert.Error(t, err)
}
