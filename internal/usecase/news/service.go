// Package news implements the news repository use cases: a merge-at-read
// view over two divergent stores. Writes always land in an in-process
// cache and are mirrored to the durable store on a best-effort basis, so
// the read and write paths never fail because of storage unavailability.
package news

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
)

// AddInput represents the input parameters for creating a news item.
// Source and ImageURL are optional and default to the empty string.
type AddInput struct {
	Text     string
	Source   string
	ImageURL string
}

// Service provides the dual-store news repository.
//
// The cache is the authoritative source for recency within a process
// lifetime: a created item is visible via ListAll immediately even when
// the durable store is unwritable. The cache is unbounded; it grows with
// every Add until the process restarts. All cache access goes through the
// mutex so concurrent request handlers keep the first-write-wins
// visibility guarantee.
type Service struct {
	store  repository.NewsStore
	logger *slog.Logger

	mu    sync.Mutex
	cache []entity.NewsItem
}

// NewService creates a news service over the given durable store.
func NewService(store repository.NewsStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// ListAll returns the merged news sequence, newest first.
//
// The merge happens at read time: the durable sequence is loaded fresh on
// every call and concatenated behind the cache snapshot, so cache entries
// shadow durable entries that share an ID. A failing or malformed durable
// store degrades to an empty sequence and never fails the caller.
func (s *Service) ListAll(ctx context.Context) []entity.NewsItem {
	durable, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Debug("durable news load failed, treating as empty",
			slog.Any("error", err))
		durable = nil
	}

	s.mu.Lock()
	merged := make([]entity.NewsItem, 0, len(s.cache)+len(durable))
	merged = append(merged, s.cache...)
	s.mu.Unlock()
	merged = append(merged, durable...)

	// Cache-first order makes the first occurrence per ID the cache's copy.
	seen := make(map[string]struct{}, len(merged))
	out := merged[:0]
	for _, it := range merged {
		if it.ID == "" {
			continue
		}
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Add validates the input, creates a news item and makes it visible.
//
// The item is prepended to the cache under the mutex; that step cannot
// fail. The durable store is then updated best-effort: any failure is
// logged, counted and swallowed, because the cache write already
// guarantees visibility for the rest of the process lifetime.
func (s *Service) Add(ctx context.Context, in AddInput) (entity.NewsItem, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return entity.NewsItem{}, ErrTextRequired
	}

	now := time.Now().UTC()
	item := entity.NewsItem{
		ID:        newID(now),
		Text:      text,
		Source:    strings.TrimSpace(in.Source),
		ImageURL:  strings.TrimSpace(in.ImageURL),
		CreatedAt: now,
	}

	s.mu.Lock()
	s.cache = append([]entity.NewsItem{item}, s.cache...)
	size := len(s.cache)
	s.mu.Unlock()

	metrics.RecordNewsCreated(size)
	s.persist(ctx, item)

	return item, nil
}

// persist mirrors a new item into the durable store: read the current
// sequence (or empty), prepend, overwrite. Every failure is swallowed.
// The load/prepend/save sequence runs outside the cache mutex, so two
// concurrent calls can interleave and one can overwrite the other's
// prepend; the lost item stays visible through the cache.
func (s *Service) persist(ctx context.Context, item entity.NewsItem) {
	durable, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Debug("durable news load failed before save, starting empty",
			slog.Any("error", err))
		durable = nil
	}

	updated := append([]entity.NewsItem{item}, durable...)
	if err := s.store.Save(ctx, updated); err != nil {
		metrics.RecordDurableSaveFailure()
		s.logger.Warn("durable news save failed, item remains cache-only",
			slog.String("id", item.ID),
			slog.Any("error", err))
	}
}

// newID generates the item identity from a time component and a random
// component. Uniqueness only needs to hold with high probability: a
// collision makes one entry shadow another, it is not a security issue.
func newID(now time.Time) string {
	return fmt.Sprintf("news-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
