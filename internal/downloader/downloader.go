package downloader

import (
	"context"
	"time"

	"github.com/randogapp/randog/internal/domain"
)

// Client saves media files to local storage and records each save in the
// download history.
type Client interface {
	// Download fetches one media file and returns the saved path.
	Download(ctx context.Context, item domain.MediaItem) (string, error)
	// DownloadBatch saves several items concurrently and returns the
	// number saved successfully.
	DownloadBatch(ctx context.Context, items []domain.MediaItem) int
	// ListRecent returns the newest history entries, most recent first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Download, error)
	// ScheduleCleanup starts a daily job pruning history records older
	// than the retention window, until ctx is done.
	ScheduleCleanup(ctx context.Context, retention time.Duration) error
}
