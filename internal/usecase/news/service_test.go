package news_test

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"newsdesk/internal/domain/entity"
	newsUC "newsdesk/internal/usecase/news"
)

// stubStore is a minimal in-memory NewsStore with forceable errors.
// It is safe for concurrent use, like the real file store must be when
// request handlers persist in parallel.
type stubStore struct {
	mu      sync.Mutex
	items   []entity.NewsItem
	loadErr error
	saveErr error
	saves   int
}

func (s *stubStore) Load(_ context.Context) ([]entity.NewsItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]entity.NewsItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubStore) Save(_ context.Context, items []entity.NewsItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items = make([]entity.NewsItem, len(items))
	copy(s.items, items)
	return nil
}

func (s *stubStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func TestAddThenListAll(t *testing.T) {
	store := &stubStore{}
	svc := newsUC.NewService(store, nil)

	item, err := svc.Add(context.Background(), newsUC.AddInput{
		Text:     "hello",
		Source:   "reuters",
		ImageURL: "https://img.example.com/a.png",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !strings.HasPrefix(item.ID, "news-") {
		t.Errorf("ID = %q, want news- prefix", item.ID)
	}
	if item.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}

	got := svc.ListAll(context.Background())
	if len(got) != 1 {
		t.Fatalf("ListAll() returned %d items, want 1", len(got))
	}
	if diff := cmp.Diff(item, got[0]); diff != "" {
		t.Errorf("ListAll()[0] mismatch (-want +got):\n%s", diff)
	}
}

func TestAddTrimsOptionalFields(t *testing.T) {
	svc := newsUC.NewService(&stubStore{}, nil)

	item, err := svc.Add(context.Background(), newsUC.AddInput{
		Text:     "  spaced out  ",
		Source:   "  agency  ",
		ImageURL: "",
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if item.Text != "spaced out" {
		t.Errorf("Text = %q, want %q", item.Text, "spaced out")
	}
	if item.Source != "agency" {
		t.Errorf("Source = %q, want %q", item.Source, "agency")
	}
	if item.ImageURL != "" {
		t.Errorf("ImageURL = %q, want empty", item.ImageURL)
	}
}

func TestAddEmptyTextFailsAndLeavesCacheUntouched(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   \t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubStore{}
			svc := newsUC.NewService(store, nil)

			_, err := svc.Add(context.Background(), newsUC.AddInput{Text: tt.text})

			var vErr *entity.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Add() error = %v, want ValidationError", err)
			}
			if got := svc.ListAll(context.Background()); len(got) != 0 {
				t.Errorf("ListAll() returned %d items after failed Add, want 0", len(got))
			}
			if got := store.saveCount(); got != 0 {
				t.Errorf("store.Save called %d times after failed Add, want 0", got)
			}
		})
	}
}

func TestListAllIsIdempotent(t *testing.T) {
	store := &stubStore{}
	svc := newsUC.NewService(store, nil)

	for _, text := range []string{"one", "two", "three"} {
		if _, err := svc.Add(context.Background(), newsUC.AddInput{Text: text}); err != nil {
			t.Fatalf("Add(%q) error = %v", text, err)
		}
	}

	first := svc.ListAll(context.Background())
	second := svc.ListAll(context.Background())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("consecutive ListAll() calls differ (-first +second):\n%s", diff)
	}
}

func TestListAllCachePrecedence(t *testing.T) {
	// The same ID in both stores with different field values: the merged
	// view must contain the cache's copy exactly once.
	now := time.Now().UTC()
	store := &stubStore{}
	svc := newsUC.NewService(store, nil)

	item, err := svc.Add(context.Background(), newsUC.AddInput{Text: "cache copy"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Simulate the durable store drifting to a stale copy of the same item.
	store.items = []entity.NewsItem{
		{ID: item.ID, Text: "stale durable copy", CreatedAt: now.Add(-time.Hour)},
		{ID: "news-0-other", Text: "durable only", CreatedAt: now.Add(-2 * time.Hour)},
	}

	got := svc.ListAll(context.Background())
	if len(got) != 2 {
		t.Fatalf("ListAll() returned %d items, want 2", len(got))
	}

	var matches int
	for _, it := range got {
		if it.ID == item.ID {
			matches++
			if it.Text != "cache copy" {
				t.Errorf("Text = %q, want cache copy to win", it.Text)
			}
		}
	}
	if matches != 1 {
		t.Errorf("item %s appeared %d times, want 1", item.ID, matches)
	}
}

func TestListAllOrdersByCreatedAtDescending(t *testing.T) {
	now := time.Now().UTC()
	store := &stubStore{items: []entity.NewsItem{
		{ID: "a", Text: "oldest", CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "c", Text: "newest", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "b", Text: "middle", CreatedAt: now.Add(-2 * time.Hour)},
	}}
	svc := newsUC.NewService(store, nil)

	got := svc.ListAll(context.Background())
	want := []string{"newest", "middle", "oldest"}
	if len(got) != len(want) {
		t.Fatalf("ListAll() returned %d items, want %d", len(got), len(want))
	}
	for i, text := range want {
		if got[i].Text != text {
			t.Errorf("ListAll()[%d].Text = %q, want %q", i, got[i].Text, text)
		}
	}
}

func TestListAllDropsItemsWithoutID(t *testing.T) {
	store := &stubStore{items: []entity.NewsItem{
		{ID: "", Text: "no identity", CreatedAt: time.Now()},
		{ID: "x", Text: "kept", CreatedAt: time.Now()},
	}}
	svc := newsUC.NewService(store, nil)

	got := svc.ListAll(context.Background())
	if len(got) != 1 {
		t.Fatalf("ListAll() returned %d items, want 1", len(got))
	}
	if got[0].Text != "kept" {
		t.Errorf("Text = %q, want %q", got[0].Text, "kept")
	}
}

func TestListAllTreatsLoadFailureAsEmpty(t *testing.T) {
	store := &stubStore{loadErr: errors.New("disk on fire")}
	svc := newsUC.NewService(store, nil)

	if got := svc.ListAll(context.Background()); len(got) != 0 {
		t.Fatalf("ListAll() returned %d items, want 0", len(got))
	}

	// Items added while the durable store is unreadable are still visible.
	if _, err := svc.Add(context.Background(), newsUC.AddInput{Text: "cache only"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got := svc.ListAll(context.Background()); len(got) != 1 {
		t.Fatalf("ListAll() returned %d items, want 1", len(got))
	}
}

func TestAddSwallowsDurableSaveFailure(t *testing.T) {
	store := &stubStore{saveErr: errors.New("read-only filesystem")}
	svc := newsUC.NewService(store, nil)

	item, err := svc.Add(context.Background(), newsUC.AddInput{Text: "still visible"})
	if err != nil {
		t.Fatalf("Add() error = %v, durable failure must not surface", err)
	}
	if got := store.saveCount(); got != 1 {
		t.Errorf("store.Save called %d times, want 1", got)
	}

	got := svc.ListAll(context.Background())
	if len(got) != 1 || got[0].ID != item.ID {
		t.Fatalf("ListAll() = %v, want the cache-only item", got)
	}
}

func TestAddPersistsToDurableStore(t *testing.T) {
	store := &stubStore{items: []entity.NewsItem{
		{ID: "old", Text: "existing", CreatedAt: time.Now().Add(-time.Hour)},
	}}
	svc := newsUC.NewService(store, nil)

	item, err := svc.Add(context.Background(), newsUC.AddInput{Text: "fresh"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if len(store.items) != 2 {
		t.Fatalf("durable store holds %d items, want 2", len(store.items))
	}
	if store.items[0].ID != item.ID {
		t.Errorf("durable store head = %q, want the new item prepended", store.items[0].ID)
	}
}

func TestConcurrentAdds(t *testing.T) {
	store := &stubStore{}
	svc := newsUC.NewService(store, nil)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(n int) {
			defer wg.Done()
			_, _ = svc.Add(context.Background(), newsUC.AddInput{Text: strconv.Itoa(n)})
		}(i)
	}
	wg.Wait()

	if got := svc.ListAll(context.Background()); len(got) != workers {
		t.Fatalf("ListAll() returned %d items, want %d", len(got), workers)
	}
	if got := store.saveCount(); got != workers {
		t.Errorf("store.Save called %d times, want %d", got, workers)
	}
}

func TestAddGeneratesUniqueIDs(t *testing.T) {
	svc := newsUC.NewService(&stubStore{}, nil)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		item, err := svc.Add(context.Background(), newsUC.AddInput{Text: "x"})
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if _, dup := seen[item.ID]; dup {
			t.Fatalf("duplicate ID generated: %s", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
}
