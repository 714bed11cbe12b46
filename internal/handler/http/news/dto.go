// Package news provides the HTTP handlers for the news endpoints:
// the public merged listing and the authenticated create operation.
package news

import (
	"fmt"
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for news item data transfer.
type DTO struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func toDTO(it entity.NewsItem) DTO {
	return DTO{
		ID:        it.ID,
		Text:      it.Text,
		Source:    it.Source,
		ImageURL:  it.ImageURL,
		CreatedAt: it.CreatedAt,
	}
}

// coerceString renders any JSON value as its string form. Clients have
// been observed sending numbers and booleans for text fields; those are
// coerced rather than rejected, matching the lenient input contract.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
