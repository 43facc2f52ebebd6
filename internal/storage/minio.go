package storage

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Balraaj27/lawcrusade/internal/config"
)

// MinIO stores files in an S3-compatible bucket for deployments where the
// service has no persistent local disk.
type MinIO struct {
	client *minio.Client
	bucket string
}

// NewMinIO connects to the configured endpoint and ensures the bucket exists.
func NewMinIO(cfg config.MinIOConfig) (*MinIO, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	s := &MinIO{client: client, bucket: cfg.Bucket}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		exists, checkErr := client.BucketExists(ctx, s.bucket)
		if checkErr != nil || !exists {
			return nil, err
		}
	}
	return s, nil
}

func (s *MinIO) Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, filename, r, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (s *MinIO) Delete(ctx context.Context, filename string) error {
	if _, err := s.client.StatObject(ctx, s.bucket, filename, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return ErrNotFound
		}
		return err
	}
	return s.client.RemoveObject(ctx, s.bucket, filename, minio.RemoveObjectOptions{})
}

func (s *MinIO) URL(filename string) string {
	return s.client.EndpointURL().String() + "/" + s.bucket + "/" + filename
}
