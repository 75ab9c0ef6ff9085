package detailimpl

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/randogapp/randog/internal/breed"
	"github.com/randogapp/randog/internal/detail"
	"github.com/randogapp/randog/internal/dogapi"
	"github.com/randogapp/randog/internal/domain"
	"github.com/randogapp/randog/pkg/config"
	apperrors "github.com/randogapp/randog/pkg/errors"
	"github.com/randogapp/randog/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	DogAPI dogapi.Client
	Logger logger.Logger
	Config *config.Config
}

type DetailImpl struct {
	api         dogapi.Client
	logger      logger.Logger
	relatedSize int
}

func New(opts Opts) *DetailImpl {
	return &DetailImpl{
		api:         opts.DogAPI,
		logger:      opts.Logger.WithComponent("DetailResolver"),
		relatedSize: opts.Config.Feed.RelatedSize,
	}
}

var _ detail.Resolver = (*DetailImpl)(nil)

func (d *DetailImpl) Decode(payload string) (domain.MediaItem, error) {
	if payload == "" {
		return domain.MediaItem{}, apperrors.ErrPayloadMissing
	}

	var item domain.MediaItem
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		return domain.MediaItem{}, apperrors.Wrap(apperrors.ErrPayloadMalformed, err.Error())
	}
	if item.URL == "" {
		return domain.MediaItem{}, apperrors.Wrap(apperrors.ErrPayloadMalformed, "item url is empty")
	}
	if item.Kind == "" {
		item.Kind = domain.KindImage
	}
	return item, nil
}

func (d *DetailImpl) Open(ctx context.Context, item domain.MediaItem) ([]domain.MediaItem, error) {
	urls, err := d.fetchRelated(ctx, item)
	if err != nil {
		d.logger.Error("Related media fetch failed", "url", item.URL, "error", err)
		return []domain.MediaItem{}, err
	}

	items := make([]domain.MediaItem, 0, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		label := item.Category
		if item.Kind == domain.KindImage {
			label = breed.Resolve(u)
		}
		items = append(items, domain.MediaItem{
			URL:      u,
			Category: label,
			Kind:     item.Kind,
		})
	}
	return items, nil
}

func (d *DetailImpl) fetchRelated(ctx context.Context, item domain.MediaItem) ([]string, error) {
	if item.Kind == domain.KindVideo {
		return d.api.RandomVideos(ctx, d.relatedSize)
	}

	if slug := relatedSlug(item); slug != "" {
		return d.api.BreedImages(ctx, slug, d.relatedSize)
	}
	return d.api.RandomImages(ctx, d.relatedSize)
}

// relatedSlug picks the breed slug for the related-items fetch. The item URL
// is authoritative; the category is only trusted when it looks like a raw
// slug token rather than a display label.
func relatedSlug(item domain.MediaItem) string {
	if slug := breed.Slug(item.URL); slug != "" {
		return slug
	}
	c := item.Category
	if c == "" || c == breed.All || strings.ContainsRune(c, ' ') || c != strings.ToLower(c) {
		return ""
	}
	return c
}
