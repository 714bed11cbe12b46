// Package repository defines the persistence interfaces for the application.
// Concrete implementations live under internal/infra.
package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// NewsStore is the durable representation of the news sequence.
//
// The contract is deliberately coarse: load the whole ordered sequence or
// overwrite it entirely. Providers return real errors; callers that merge
// the durable sequence with the in-process cache absorb load failures as
// an empty sequence and swallow save failures. The backing medium may be
// a file, an object store, or a database, and may be read-only in some
// deployments.
type NewsStore interface {
	// Load reads the full durable sequence. A missing document yields an
	// empty sequence and no error; unreadable or malformed content is an error.
	Load(ctx context.Context) ([]entity.NewsItem, error)

	// Save overwrites the durable sequence with the given items.
	Save(ctx context.Context, items []entity.NewsItem) error
}
