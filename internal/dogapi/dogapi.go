package dogapi

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=dogapi.go -destination=mocks/mock.go -package=mocks

// Client fetches media URLs from the public dog APIs. Implementations own
// the strict parse boundary: callers only ever see clean absolute URLs or
// a fetch error, never a raw payload.
type Client interface {
	// RandomImages returns count random image URLs across all breeds.
	RandomImages(ctx context.Context, count int) ([]string, error)
	// BreedImages returns count random image URLs scoped to one breed
	// slug (hyphenated sub-breed form, e.g. "terrier-yorkshire").
	BreedImages(ctx context.Context, slug string, count int) ([]string, error)
	// RandomVideos returns up to count random video clip URLs.
	RandomVideos(ctx context.Context, count int) ([]string, error)
}
