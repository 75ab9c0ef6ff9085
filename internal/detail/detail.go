package detail

import (
	"context"

	"github.com/randogapp/randog/internal/domain"
)

// Resolver serves the detail view: it decodes the serialized item handed
// over from the list view and fetches a small related-items batch for the
// same category. It never touches feed state.
type Resolver interface {
	// Decode parses a serialized MediaItem. Empty payloads fail with
	// ErrPayloadMissing, unparsable ones with ErrPayloadMalformed.
	Decode(payload string) (domain.MediaItem, error)
	// Open fetches related media for the item. On failure the returned
	// slice is empty and the error is set; it never panics.
	Open(ctx context.Context, item domain.MediaItem) ([]domain.MediaItem, error)
}
