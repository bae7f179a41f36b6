package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/sbilibin2017/movie-catalog/internal/logger"
)

// posterFolder is the fixed logical folder poster objects are stored under.
const posterFolder = "posters"

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in)
	}
)

// S3Config configures the S3-compatible object storage backend.
type S3Config struct {
	Endpoint  string // Base endpoint, e.g. a MinIO or provider URL
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// PublicBaseURL is the prefix of retrieval URLs handed to clients.
	// Defaults to "<Endpoint>/<Bucket>" when empty.
	PublicBaseURL string
}

// S3Storage writes posters to S3-compatible object storage.
type S3Storage struct {
	cfg    S3Config
	client *s3.Client
}

// NewS3Storage creates an S3 storage backend from an explicit config.
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &S3Storage{cfg: cfg, client: client}, nil
}

func (s *S3Storage) baseURL() string {
	if s.cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(s.cfg.PublicBaseURL, "/")
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.cfg.Endpoint, "/"), s.cfg.Bucket)
}

// Save uploads the bytes under `posters/<uuid><ext>` and returns the
// canonical retrieval URL.
func (s *S3Storage) Save(ctx context.Context, ext string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%s%s", posterFolder, uuid.NewString(), ext)

	_, err := putObject(s.client, ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	ref := fmt.Sprintf("%s/%s", s.baseURL(), key)
	logger.Log.Infow("stored upload", "bucket", s.cfg.Bucket, "key", key, "ref", ref, "size", len(data))

	return ref, nil
}

// Delete removes the object behind a reference previously returned by Save.
func (s *S3Storage) Delete(ctx context.Context, ref string) error {
	key := strings.TrimPrefix(strings.TrimPrefix(ref, s.baseURL()), "/")
	if key == "" || key == ref {
		return fmt.Errorf("invalid upload reference %q", ref)
	}

	_, err := deleteObject(s.client, ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}

	return nil
}
