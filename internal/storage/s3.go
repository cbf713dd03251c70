package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Config struct {
	Endpoint   string // e.g. https://bucket.example.dev
	Bucket     string
	Region     string
	AccessKey  string
	SecretKey  string
	CDNBaseURL string
}

// S3Storage stores objects in an S3-compatible bucket.
type S3Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 endpoint and bucket are required")
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid s3 endpoint %q", cfg.Endpoint)
	}

	client, err := minio.New(u.Host, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       u.Scheme != "http",
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create s3 client: %w", err)
	}

	return &S3Storage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: PublicURLBase(cfg),
	}, nil
}

// PublicURLBase returns the prefix that object keys are appended to for public links.
func PublicURLBase(cfg S3Config) string {
	if cfg.CDNBaseURL != "" {
		return cfg.CDNBaseURL
	}
	return joinURL(cfg.Endpoint, cfg.Bucket)
}

func (s *S3Storage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}

	log.Debugf("storage: uploaded %s to bucket %s", key, s.bucket)
	return joinURL(s.publicURL, key), nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}
