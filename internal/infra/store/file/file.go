// Package file implements repository.NewsStore on top of a single JSON
// document on the local filesystem. The document holds the whole ordered
// news sequence under a top-level "news" field.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// Store reads and writes the news document at a fixed path.
// The path may live on a read-only filesystem; Save then fails on every
// call and the caller is expected to absorb that.
type Store struct {
	path string
}

// New creates a file-backed news store for the given document path.
func New(path string) *Store {
	return &Store{path: path}
}

// document is the on-disk schema: {"news": [...]}.
type document struct {
	News []item `json:"news"`
}

type item struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Load reads the whole news sequence from disk.
// A missing document is an empty sequence, not an error.
func (s *Store) Load(_ context.Context) ([]entity.NewsItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read news document: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode news document: %w", err)
	}

	items := make([]entity.NewsItem, 0, len(doc.News))
	for _, it := range doc.News {
		items = append(items, entity.NewsItem{
			ID:        it.ID,
			Text:      it.Text,
			Source:    it.Source,
			ImageURL:  it.ImageURL,
			CreatedAt: it.CreatedAt,
		})
	}
	return items, nil
}

// Save overwrites the news document with the given sequence.
// The write goes through a temp file and rename so a crash mid-write
// never leaves a truncated document behind.
func (s *Store) Save(_ context.Context, items []entity.NewsItem) error {
	doc := document{News: make([]item, 0, len(items))}
	for _, it := range items {
		doc.News = append(doc.News, item{
			ID:        it.ID,
			Text:      it.Text,
			Source:    it.Source,
			ImageURL:  it.ImageURL,
			CreatedAt: it.CreatedAt,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode news document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create news directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".news-*.json")
	if err != nil {
		return fmt.Errorf("create temp news document: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write news document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close news document: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace news document: %w", err)
	}
	return nil
}

var _ repository.NewsStore = (*Store)(nil)
