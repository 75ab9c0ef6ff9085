package feed

import (
	"context"
	"time"

	"github.com/randogapp/randog/internal/domain"
)

// Controller owns one feed's state and mediates all category-scoped
// fetching. Operations never return transport errors; every failure is
// absorbed into the state so the caller always has something renderable.
type Controller interface {
	// SetCategory switches the active filter and refetches with replace
	// semantics. Re-selecting the current category is a no-op unless the
	// feed is in the error state, where it acts as a retry.
	SetCategory(ctx context.Context, category string)
	// LoadMore appends the next page to the current feed. Ignored while
	// a fetch is in flight or before the first SetCategory.
	LoadMore(ctx context.Context)
	// State returns a snapshot of the current feed state.
	State() domain.FeedState
	// Categories lists the selectable filters, the "all" sentinel first.
	Categories() []string
	// ScheduleAutoRefresh starts a background job re-fetching the active
	// category on a fixed interval, until ctx is done.
	ScheduleAutoRefresh(ctx context.Context, every time.Duration) error
}
