package feedimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/randogapp/randog/internal/domain"
)

// ScheduleAutoRefresh re-fetches the active category on a fixed interval so
// a long-lived gallery keeps showing fresh media. A refresh is skipped while
// a fetch is in flight or before the first SetCategory.
func (f *FeedImpl) ScheduleAutoRefresh(ctx context.Context, every time.Duration) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create refresh scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}

			f.mu.Lock()
			category := f.state.Category
			status := f.state.Status
			f.mu.Unlock()

			if category == "" || status == domain.StatusLoading {
				return
			}

			f.logger.Info("Auto-refreshing feed", "kind", f.kind, "category", category)

			taskCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()
			f.refresh(taskCtx, category)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule feed refresh: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		f.logger.Info("Stopping feed refresh scheduler", "kind", f.kind)
		if err := scheduler.Shutdown(); err != nil {
			f.logger.Error("Failed to shut down refresh scheduler", "error", err)
		}
	}()

	return nil
}

// refresh replaces the current page-1 batch without clearing items first, so
// viewers keep the old batch if the refresh fails.
func (f *FeedImpl) refresh(ctx context.Context, category string) {
	f.mu.Lock()
	if f.state.Status == domain.StatusLoading || f.state.Category != category {
		f.mu.Unlock()
		return
	}
	f.state.Page = 1
	f.state.Status = domain.StatusLoading
	f.generation++
	gen := f.generation
	f.mu.Unlock()

	items, err := f.fetch(ctx, category)
	f.apply(gen, items, err, true)
}
