// Package entity defines the core domain entities and validation logic for the application.
// It contains the NewsItem business object along with its domain-specific errors.
package entity

import "time"

// NewsItem represents a single posted news entry.
// An item is immutable once created: there is no update or delete operation,
// and ID and CreatedAt are assigned exactly once at creation time.
type NewsItem struct {
	ID        string
	Text      string
	Source    string
	ImageURL  string
	CreatedAt time.Time
}
