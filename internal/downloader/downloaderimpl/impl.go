package downloaderimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/randogapp/randog/internal/domain"
	"github.com/randogapp/randog/internal/downloader"
	"github.com/randogapp/randog/internal/repositories/download"
	"github.com/randogapp/randog/pkg/config"
	apperrors "github.com/randogapp/randog/pkg/errors"
	"github.com/randogapp/randog/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	DownloadRepo download.Repository
	Logger       logger.Logger
	Config       *config.Config
}

type DownloaderImpl struct {
	http    *http.Client
	repo    download.Repository
	logger  logger.Logger
	dir     string
	workers int
}

func New(opts Opts) *DownloaderImpl {
	return &DownloaderImpl{
		http:    &http.Client{Timeout: opts.Config.DogAPI.Timeout},
		repo:    opts.DownloadRepo,
		logger:  opts.Logger.WithComponent("Downloader"),
		dir:     opts.Config.Download.Dir,
		workers: opts.Config.Download.Workers,
	}
}

var _ downloader.Client = (*DownloaderImpl)(nil)

func (d *DownloaderImpl) Download(ctx context.Context, item domain.MediaItem) (string, error) {
	if item.URL == "" {
		return "", apperrors.ErrPayloadMalformed
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download dir: %w", err)
	}

	dest := filepath.Join(d.dir, fileName(item))
	if err := d.fetchToFile(ctx, item.URL, dest); err != nil {
		return "", err
	}

	rec := domain.Download{
		URL:      item.URL,
		Category: item.Category,
		FilePath: dest,
	}
	if err := d.repo.Create(ctx, rec); err != nil {
		// The file is on disk; a missing history row is not worth
		// failing the download for.
		d.logger.Error("Failed to record download", "url", item.URL, "error", err)
	}

	d.logger.Info("Media downloaded", "url", item.URL, "path", dest)
	return dest, nil
}

func (d *DownloaderImpl) DownloadBatch(ctx context.Context, items []domain.MediaItem) int {
	var wg sync.WaitGroup
	var mu sync.Mutex
	saved := 0

	pool, err := ants.NewPool(d.workers, ants.WithPreAlloc(true))
	if err != nil {
		d.logger.Error("Failed to create download pool", "error", err)
		return 0
	}
	defer pool.Release()

	for _, item := range items {
		wg.Add(1)
		itemToSave := item

		err := pool.Submit(func() {
			defer wg.Done()
			select {
			case <-ctx.Done():
				return
			default:
				if _, err := d.Download(ctx, itemToSave); err != nil {
					d.logger.Error("Worker failed to download media", "url", itemToSave.URL, "error", err)
					return
				}
				mu.Lock()
				saved++
				mu.Unlock()
			}
		})
		if err != nil {
			wg.Done()
			d.logger.Error("Failed to submit download job", "url", itemToSave.URL, "error", err)
		}
	}

	wg.Wait()
	return saved
}

func (d *DownloaderImpl) ListRecent(ctx context.Context, limit int) ([]*domain.Download, error) {
	return d.repo.ListRecent(ctx, limit)
}

func (d *DownloaderImpl) fetchToFile(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrFetchNetwork, err.Error())
	}

	resp, err := d.http.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrFetchNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.Wrap(apperrors.ErrFetchNetwork, fmt.Sprintf("unexpected http status %d", resp.StatusCode))
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// fileName derives a stable disk name from the media URL, falling back to
// the category when the URL path carries no base name.
func fileName(item domain.MediaItem) string {
	base := ""
	if u, err := url.Parse(item.URL); err == nil {
		base = path.Base(u.Path)
	}
	if base == "" || base == "." || base == "/" {
		ext := ".jpg"
		if item.Kind == domain.KindVideo {
			ext = ".mp4"
		}
		base = strings.ReplaceAll(item.Category, " ", "-") + ext
	}
	return base
}
