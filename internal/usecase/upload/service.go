// Package upload implements the upload relay: it streams a single file
// to an external blob store and returns its public URL. Failures here
// surface to the caller, unlike the news repository's durable writes.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/resilience/circuitbreaker"
)

// ErrNotConfigured is returned when no blob store has been configured.
var ErrNotConfigured = errors.New("blob store not configured")

// BlobStore abstracts the external object storage behind the relay.
type BlobStore interface {
	// Put streams the object under the given key and returns its public URL.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// Service relays uploads to the blob store through a circuit breaker so a
// down store fails fast instead of holding request handlers open.
type Service struct {
	store   BlobStore
	breaker *circuitbreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewService creates an upload relay over the given store. A nil store is
// allowed and makes every upload fail with ErrNotConfigured.
func NewService(store BlobStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:   store,
		breaker: circuitbreaker.New(circuitbreaker.BlobStoreConfig()),
		logger:  logger,
	}
}

// Upload streams the file to the blob store under a generated key and
// returns the public URL.
func (s *Service) Upload(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	if s.store == nil {
		metrics.RecordUpload(false)
		return "", ErrNotConfigured
	}

	key := objectKey(filename)
	result, err := s.breaker.Execute(func() (any, error) {
		return s.store.Put(ctx, key, r, size, contentType)
	})
	if err != nil {
		metrics.RecordUpload(false)
		s.logger.Error("upload relay failed",
			slog.String("key", key),
			slog.Any("error", err))
		return "", fmt.Errorf("upload object: %w", err)
	}

	url := result.(string)
	metrics.RecordUpload(true)
	s.logger.Info("upload relayed",
		slog.String("key", key),
		slog.String("url", url))
	return url, nil
}

// objectKey generates a collision-free object key, keeping the original
// file extension so the store can serve a sensible content type.
func objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return "news/" + uuid.NewString() + ext
}
