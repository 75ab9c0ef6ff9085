package dogapiimpl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/randogapp/randog/pkg/config"
	apperrors "github.com/randogapp/randog/pkg/errors"
	"github.com/randogapp/randog/pkg/logger"
	"github.com/randogapp/randog/pkg/retry"
)

func newTestClient(baseURL string) *DogAPIImpl {
	cfg := &config.Config{}
	cfg.DogAPI.BaseURL = baseURL
	cfg.DogAPI.VideoBaseURL = baseURL
	cfg.DogAPI.Timeout = 5 * time.Second

	d := New(Opts{Config: cfg, Logger: logger.New(logger.Opts{})})
	d.retryCfg = retry.Config{
		MaxRetries:      0,
		InitialInterval: time.Millisecond,
		MaxInterval:     time.Millisecond,
		Multiplier:      1,
	}
	return d
}

func TestRandomImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/breeds/image/random/10" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"message":["https://x/breeds/beagle/1.jpg","","https://x/breeds/boxer/2.jpg"],"status":"success"}`)
	}))
	defer srv.Close()

	urls, err := newTestClient(srv.URL).RandomImages(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The empty entry is dropped, not fatal to the batch.
	if len(urls) != 2 {
		t.Fatalf("expected 2 urls, got %d", len(urls))
	}
	if urls[0] != "https://x/breeds/beagle/1.jpg" || urls[1] != "https://x/breeds/boxer/2.jpg" {
		t.Errorf("urls out of order: %v", urls)
	}
}

func TestBreedImagesPathConversion(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"message":["https://x/breeds/terrier-yorkshire/1.jpg"],"status":"success"}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).BreedImages(context.Background(), "terrier-yorkshire", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/breed/terrier/yorkshire/images/random/5" {
		t.Errorf("expected main/sub path form, got %s", gotPath)
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		expected error
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expected: apperrors.ErrFetchNetwork,
		},
		{
			name: "broken json body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"message": [`)
			},
			expected: apperrors.ErrFetchParse,
		},
		{
			name: "api reports failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"message":[],"status":"error"}`)
			},
			expected: apperrors.ErrFetchParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newTestClient(srv.URL).RandomImages(context.Background(), 10)
			if !apperrors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestRandomVideos(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprintf(w, `{"url":"https://random.dog/clip-%d.mp4","fileSizeBytes":1024}`, calls%2)
	}))
	defer srv.Close()

	urls, err := newTestClient(srv.URL).RandomVideos(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 4 {
		t.Errorf("expected 4 upstream calls, got %d", calls)
	}

	// Four calls alternate between two distinct clips.
	if len(urls) != 2 {
		t.Errorf("expected duplicates dropped, got %v", urls)
	}
}

func TestRandomVideosAllCallsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).RandomVideos(context.Background(), 3)
	if !apperrors.Is(err, apperrors.ErrFetchNetwork) {
		t.Errorf("expected fetch error, got %v", err)
	}
}
