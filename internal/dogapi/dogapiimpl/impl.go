package dogapiimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/randogapp/randog/internal/breed"
	"github.com/randogapp/randog/internal/dogapi"
	"github.com/randogapp/randog/internal/ratelimit"
	"github.com/randogapp/randog/pkg/config"
	apperrors "github.com/randogapp/randog/pkg/errors"
	"github.com/randogapp/randog/pkg/logger"
	"github.com/randogapp/randog/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type DogAPIImpl struct {
	http         *http.Client
	limiter      ratelimit.Limiter
	logger       logger.Logger
	baseURL      string
	videoBaseURL string
	retryCfg     retry.Config
}

func New(opts Opts) *DogAPIImpl {
	return &DogAPIImpl{
		http:         &http.Client{Timeout: opts.Config.DogAPI.Timeout},
		limiter:      ratelimit.NewUpstreamLimiter(opts.Config.DogAPI.RequestsPerSecond, time.Second, opts.Config.DogAPI.Burst),
		logger:       opts.Logger.WithComponent("DogAPIClient"),
		baseURL:      opts.Config.DogAPI.BaseURL,
		videoBaseURL: opts.Config.DogAPI.VideoBaseURL,
		retryCfg:     retry.DefaultConfig(),
	}
}

var _ dogapi.Client = (*DogAPIImpl)(nil)

// listResponse is the dog.ceo envelope for image list endpoints.
type listResponse struct {
	Message []string `json:"message"`
	Status  string   `json:"status"`
}

// videoResponse is the random.dog envelope, one clip per call.
type videoResponse struct {
	URL           string  `json:"url"`
	FileSizeBytes float64 `json:"fileSizeBytes"`
}

func (d *DogAPIImpl) RandomImages(ctx context.Context, count int) ([]string, error) {
	url := fmt.Sprintf("%s/breeds/image/random/%d", d.baseURL, count)
	return d.fetchImageList(ctx, url)
}

func (d *DogAPIImpl) BreedImages(ctx context.Context, slug string, count int) ([]string, error) {
	url := fmt.Sprintf("%s/breed/%s/images/random/%d", d.baseURL, breed.APIPath(slug), count)
	return d.fetchImageList(ctx, url)
}

// RandomVideos calls the clip endpoint count times since it returns a single
// URL per call. Duplicate clips are dropped. The batch only fails when every
// call fails.
func (d *DogAPIImpl) RandomVideos(ctx context.Context, count int) ([]string, error) {
	url := d.videoBaseURL + "/woof.json?filter=mp4"

	seen := make(map[string]struct{}, count)
	urls := make([]string, 0, count)
	var lastErr error

	for i := 0; i < count; i++ {
		var vr videoResponse
		if err := d.getJSON(ctx, url, &vr); err != nil {
			lastErr = err
			continue
		}
		if vr.URL == "" {
			continue
		}
		if _, dup := seen[vr.URL]; dup {
			continue
		}
		seen[vr.URL] = struct{}{}
		urls = append(urls, vr.URL)
	}

	if len(urls) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return urls, nil
}

func (d *DogAPIImpl) fetchImageList(ctx context.Context, url string) ([]string, error) {
	var lr listResponse
	if err := d.getJSON(ctx, url, &lr); err != nil {
		return nil, err
	}
	if lr.Status != "success" {
		return nil, apperrors.Wrap(apperrors.ErrFetchParse, fmt.Sprintf("unexpected api status %q", lr.Status))
	}

	// Entries without a URL are dropped instead of failing the batch.
	urls := make([]string, 0, len(lr.Message))
	for _, u := range lr.Message {
		if u == "" {
			d.logger.Warn("Dropping empty media url from batch", "url", url)
			continue
		}
		urls = append(urls, u)
	}
	return urls, nil
}

func (d *DogAPIImpl) getJSON(ctx context.Context, url string, out any) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return apperrors.Wrap(apperrors.ErrFetchNetwork, "rate limiter interrupted")
	}

	var parseErr error
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := d.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected http status %d", resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			// A 200 with a broken body will not improve on retry.
			parseErr = err
			return nil
		}
		return nil
	}

	if err := retry.Do(ctx, d.logger, "DogAPIGet", operation, d.retryCfg); err != nil {
		return apperrors.Wrap(apperrors.ErrFetchNetwork, err.Error())
	}
	if parseErr != nil {
		return apperrors.Wrap(apperrors.ErrFetchParse, parseErr.Error())
	}
	return nil
}
