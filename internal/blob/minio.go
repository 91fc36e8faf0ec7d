// Package blob wraps the MinIO bucket that holds trip, driver and truck
// attachments. The bucket is public-read; uploads get a timestamped object
// name so repeated uploads of one file never collide.
package blob

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	logrus "github.com/sirupsen/logrus"

	"fuelogistics/internal/config"
	"fuelogistics/internal/models"
)

type Store struct {
	client  *minio.Client
	bucket  string
	baseURL string // scheme://host:port used in public URLs
}

// NewFromEnv builds a Store from MINIO_* environment variables, matching the
// deployment's docker-compose defaults.
func NewFromEnv() (*Store, error) {
	endpoint := config.GetEnv("MINIO_ENDPOINT", "http://localhost:9000")
	useSSL := config.GetEnv("MINIO_USE_SSL", "false") == "true"
	accessKey := config.GetEnv("MINIO_ACCESS_KEY", "fuelogistics")
	secretKey := config.GetEnv("MINIO_SECRET_KEY", "fuelogistics123")
	bucket := config.GetEnv("MINIO_BUCKET", "fuelogistics-files")

	hostPort := strings.TrimPrefix(strings.TrimPrefix(endpoint, "http://"), "https://")

	client, err := minio.New(hostPort, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return &Store{
		client:  client,
		bucket:  bucket,
		baseURL: scheme + "://" + hostPort,
	}, nil
}

// EnsureBucket creates the bucket if missing and opens it for public reads,
// so attachment URLs work without signing.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if exists {
		logrus.WithField("bucket", s.bucket).Info("Bucket already exists.")
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("make bucket: %w", err)
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [{
			"Effect": "Allow",
			"Principal": {"AWS": ["*"]},
			"Action": ["s3:GetObject"],
			"Resource": ["arn:aws:s3:::%s/*"]
		}]
	}`, s.bucket)
	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("set bucket policy: %w", err)
	}

	logrus.WithField("bucket", s.bucket).Info("Bucket created with public-read policy.")
	return nil
}

// Upload stores one object and returns its attachment record.
func (s *Store) Upload(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (models.Attachment, error) {
	objectName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), originalName)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return models.Attachment{}, fmt.Errorf("put object: %w", err)
	}

	return models.Attachment{
		FileName:     objectName,
		OriginalName: originalName,
		URL:          s.PublicURL(objectName),
		UploadedAt:   time.Now(),
	}, nil
}

// Delete removes one object from the bucket.
func (s *Store) Delete(ctx context.Context, fileName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, fileName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}

// PublicURL returns the unsigned URL of an object in the public bucket.
func (s *Store) PublicURL(fileName string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, fileName)
}
