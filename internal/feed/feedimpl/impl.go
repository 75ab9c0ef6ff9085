package feedimpl

import (
	"context"
	"sync"

	"github.com/randogapp/randog/internal/breed"
	"github.com/randogapp/randog/internal/dogapi"
	"github.com/randogapp/randog/internal/domain"
	"github.com/randogapp/randog/internal/feed"
	"github.com/randogapp/randog/pkg/config"
	apperrors "github.com/randogapp/randog/pkg/errors"
	"github.com/randogapp/randog/pkg/logger"
	"go.uber.org/fx"
)

// Label given to unfiltered video clips; the clip API carries no breed
// information in its URLs.
const mixedLabel = "Mixed"

type Opts struct {
	fx.In

	DogAPI dogapi.Client
	Logger logger.Logger
	Config *config.Config
}

type FeedImpl struct {
	kind       domain.MediaKind
	api        dogapi.Client
	logger     logger.Logger
	batchSize  int
	categories []string

	mu    sync.Mutex
	state domain.FeedState
	// generation stamps every dispatched fetch; a result is discarded when
	// the stamp no longer matches, so a late category-A response can never
	// overwrite category-B state.
	generation uint64
}

func New(kind domain.MediaKind, opts Opts) *FeedImpl {
	component := "ImageFeed"
	if kind == domain.KindVideo {
		component = "VideoFeed"
	}
	return &FeedImpl{
		kind:       kind,
		api:        opts.DogAPI,
		logger:     opts.Logger.WithComponent(component),
		batchSize:  opts.Config.Feed.BatchSize,
		categories: opts.Config.Categories(),
		state: domain.FeedState{
			Kind:   kind,
			Page:   1,
			Status: domain.StatusIdle,
		},
	}
}

var _ feed.Controller = (*FeedImpl)(nil)

func (f *FeedImpl) Categories() []string {
	out := make([]string, len(f.categories))
	copy(out, f.categories)
	return out
}

func (f *FeedImpl) State() domain.FeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Clone()
}

func (f *FeedImpl) SetCategory(ctx context.Context, category string) {
	f.mu.Lock()
	if category == f.state.Category &&
		f.state.Status != domain.StatusIdle &&
		f.state.Status != domain.StatusError {
		f.mu.Unlock()
		return
	}

	// Replace semantics: items are cleared before the fetch, so an error
	// leaves an empty feed rather than the previous category's items.
	f.state.Category = category
	f.state.Items = nil
	f.state.Page = 1
	f.state.Status = domain.StatusLoading
	f.state.ErrorMessage = ""
	f.generation++
	gen := f.generation
	f.mu.Unlock()

	items, err := f.fetch(ctx, category)
	f.apply(gen, items, err, true)
}

func (f *FeedImpl) LoadMore(ctx context.Context) {
	f.mu.Lock()
	if f.state.Status == domain.StatusLoading {
		f.mu.Unlock()
		return
	}
	if f.state.Category == "" {
		f.mu.Unlock()
		return
	}

	// The page field counts attempted pages: it is not rolled back on
	// failure, so retrying LoadMore reattempts the same page count.
	f.state.Page++
	f.state.Status = domain.StatusLoading
	f.state.ErrorMessage = ""
	f.generation++
	gen := f.generation
	category := f.state.Category
	f.mu.Unlock()

	items, err := f.fetch(ctx, category)
	f.apply(gen, items, err, false)
}

func (f *FeedImpl) fetch(ctx context.Context, category string) ([]domain.MediaItem, error) {
	var (
		urls []string
		err  error
	)

	switch {
	case f.kind == domain.KindVideo:
		urls, err = f.api.RandomVideos(ctx, f.batchSize)
	case category == breed.All:
		urls, err = f.api.RandomImages(ctx, f.batchSize)
	default:
		urls, err = f.api.BreedImages(ctx, category, f.batchSize)
	}
	if err != nil {
		return nil, err
	}

	items := make([]domain.MediaItem, 0, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		items = append(items, domain.MediaItem{
			URL:      u,
			Category: f.label(category, u),
			Kind:     f.kind,
		})
	}
	return items, nil
}

// label picks the caption for one item: the active category verbatim, or a
// per-item derivation when no filter is active.
func (f *FeedImpl) label(category, url string) string {
	if category != breed.All {
		return category
	}
	if f.kind == domain.KindVideo {
		return mixedLabel
	}
	return breed.Resolve(url)
}

func (f *FeedImpl) apply(gen uint64, items []domain.MediaItem, err error, replace bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		f.logger.Warn("Discarding stale fetch result",
			"kind", f.kind,
			"stale_generation", gen,
			"current_generation", f.generation,
		)
		return
	}

	if err != nil {
		f.logger.Error("Feed fetch failed", "kind", f.kind, "category", f.state.Category, "error", err)
		f.state.Status = domain.StatusError
		f.state.ErrorMessage = apperrors.GetMessage(err)
		return
	}

	if replace {
		f.state.Items = items
	} else {
		f.state.Items = append(f.state.Items, items...)
	}
	f.state.Status = domain.StatusLoaded
	f.state.ErrorMessage = ""
}
