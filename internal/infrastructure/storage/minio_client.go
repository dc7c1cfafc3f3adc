package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"autocare_api/internal/infrastructure/config"
	"autocare_api/internal/usecase/interfaces"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrMinIONotConfigured = errors.New("minio endpoint not configured")

// MinIOStorage keeps job attachments in a MinIO (or any S3 compatible) bucket.
type MinIOStorage struct {
	client    *minioSDK.Client
	bucket    string
	publicURL string
}

var _ interfaces.IMediaStorage = (*MinIOStorage)(nil)

// NewMinIOStorage connects and makes sure the bucket exists.
func NewMinIOStorage(ctx context.Context, cfg config.MinIO) (*MinIOStorage, error) {
	if cfg.Endpoint == "" {
		return nil, ErrMinIONotConfigured
	}
	client, err := minioSDK.New(cfg.Endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		log.Printf("[storage][minio] bucket created bucket=%s", cfg.Bucket)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = client.EndpointURL().String()
	}
	return &MinIOStorage{client: client, bucket: cfg.Bucket, publicURL: publicURL}, nil
}

func (s *MinIOStorage) Upload(ctx context.Context, key string, contentType string, size int64, body io.Reader) (string, error) {
	info, err := s.client.PutObject(ctx, s.bucket, key, body, size, minioSDK.PutObjectOptions{ContentType: contentType})
	if err != nil {
		log.Printf("[storage][minio] upload failed key=%s err=%v", key, err)
		return "", err
	}
	log.Printf("[storage][minio] upload success key=%s size=%d", info.Key, info.Size)
	return objectURL(s.publicURL, s.bucket, key), nil
}

func objectURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + strings.TrimLeft(key, "/")
}
