package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avc-dev/brevly/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Storage загружает объекты в S3-совместимое хранилище (Cloudflare R2, MinIO, AWS S3)
type S3Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	now       func() time.Time
}

// NewS3Storage создает клиент по настройкам хранилища
func NewS3Storage(cfg config.StorageConfig) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	return &S3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		now:       time.Now,
	}, nil
}

// Upload кладёт объект с Content-Disposition attachment и возвращает его публичный URL
func (s *S3Storage) Upload(ctx context.Context, key string, body []byte, contentType, fileName string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType:        contentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", fileName),
		UserMetadata: map[string]string{
			"generated-at": s.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	return s.PublicURL(key), nil
}

// PublicURL адрес объекта через публичный домен бакета
func (s *S3Storage) PublicURL(key string) string {
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}
