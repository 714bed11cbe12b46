// Package minio implements the upload relay's blob store on MinIO/S3.
// The constructor normalizes the endpoint, derives TLS from the scheme
// and fail-fast checks that the target bucket exists.
package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"newsdesk/internal/config"
	"newsdesk/internal/usecase/upload"
)

// BlobStore is the MinIO adapter for image uploads.
type BlobStore struct {
	client        *mclient.Client
	bucket        string
	publicBaseURL string
}

// New creates and initializes the MinIO client.
func New(ctx context.Context, cfg config.S3Config) (*BlobStore, error) {
	endpoint := cfg.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("create blob store client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check blob store bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("blob store bucket %q does not exist", cfg.Bucket)
	}

	return &BlobStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Put streams the object into the bucket and returns its public URL.
// With no public base URL configured, the endpoint-based object URL is used.
func (s *BlobStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, mclient.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}
	return s.client.EndpointURL().String() + "/" + s.bucket + "/" + key, nil
}

var _ upload.BlobStore = (*BlobStore)(nil)
