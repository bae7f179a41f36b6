package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

func newTestS3Storage(t *testing.T, cfg S3Config) *S3Storage {
	t.Helper()

	store, err := NewS3Storage(context.Background(), cfg)
	assert.NoError(t, err)
	return store
}

func TestS3Storage_Save(t *testing.T) {
	origPut := putObject
	defer func() { putObject = origPut }()

	var gotBucket, gotKey string
	var gotBody []byte
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		gotBucket = *in.Bucket
		gotKey = *in.Key
		gotBody, _ = io.ReadAll(in.Body)
		return &s3.PutObjectOutput{}, nil
	}

	store := newTestS3Storage(t, S3Config{
		Endpoint:  "http://localhost:9000",
		Region:    "us-east-1",
		Bucket:    "posters-bucket",
		AccessKey: "minio",
		SecretKey: "minio123",
	})

	ref, err := store.Save(context.Background(), ".jpg", []byte("poster-bytes"))
	assert.NoError(t, err)

	assert.Equal(t, "posters-bucket", gotBucket)
	assert.True(t, strings.HasPrefix(gotKey, "posters/"))
	assert.True(t, strings.HasSuffix(gotKey, ".jpg"))
	assert.Equal(t, []byte("poster-bytes"), gotBody)
	assert.Equal(t, "http://localhost:9000/posters-bucket/"+gotKey, ref)
}

func TestS3Storage_Save_PublicBaseURL(t *testing.T) {
	origPut := putObject
	defer func() { putObject = origPut }()

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return &s3.PutObjectOutput{}, nil
	}

	store := newTestS3Storage(t, S3Config{
		Endpoint:      "http://localhost:9000",
		Region:        "us-east-1",
		Bucket:        "posters-bucket",
		PublicBaseURL: "https://cdn.example.com/",
	})

	ref, err := store.Save(context.Background(), ".png", []byte{1})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "https://cdn.example.com/posters/"))
}

func TestS3Storage_Save_Error(t *testing.T) {
	origPut := putObject
	defer func() { putObject = origPut }()

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return nil, errors.New("provider unavailable")
	}

	store := newTestS3Storage(t, S3Config{Endpoint: "http://localhost:9000", Bucket: "b"})

	_, err := store.Save(context.Background(), ".jpg", []byte{1})
	assert.Error(t, err)
}

func TestS3Storage_Delete(t *testing.T) {
	origDelete := deleteObject
	defer func() { deleteObject = origDelete }()

	var gotKey string
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		gotKey = *in.Key
		return &s3.DeleteObjectOutput{}, nil
	}

	store := newTestS3Storage(t, S3Config{
		Endpoint: "http://localhost:9000",
		Bucket:   "posters-bucket",
	})

	err := store.Delete(context.Background(), "http://localhost:9000/posters-bucket/posters/abc.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "posters/abc.jpg", gotKey)
}

func TestS3Storage_Delete_InvalidReference(t *testing.T) {
	store := newTestS3Storage(t, S3Config{Endpoint: "http://localhost:9000", Bucket: "b"})

	err := store.Delete(context.Background(), "https://elsewhere.example.com/x.jpg")
	assert.Error(t, err)
}
