package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"travelblog/internal/config"
)

// ImageStore keeps blog post images in a MinIO bucket.
type ImageStore struct {
	client *minio.Client
	cfg    config.MinioConfig
}

// NewImageStore connects to MinIO and ensures the image bucket exists.
func NewImageStore(cfg config.MinioConfig) (*ImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		logrus.WithError(err).Warn("Failed to check bucket existence")
	} else if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			logrus.WithError(err).Warn("Failed to create bucket")
		} else {
			logrus.WithField("bucket", cfg.Bucket).Info("Created bucket")
		}
	}

	return &ImageStore{client: client, cfg: cfg}, nil
}

// Upload stores an object and returns its public URL.
func (s *ImageStore) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, objectName, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, objectName), nil
}

// Remove deletes an object. Used for best-effort cleanup.
func (s *ImageStore) Remove(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.cfg.Bucket, objectName, minio.RemoveObjectOptions{})
}
