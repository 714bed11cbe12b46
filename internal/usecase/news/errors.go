package news

import "newsdesk/internal/domain/entity"

// ErrTextRequired is returned by Add when the text field is empty after trimming.
// This is the only validation failure the add operation can produce.
var ErrTextRequired = &entity.ValidationError{Field: "text", Message: "is required"}
