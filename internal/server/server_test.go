package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/randogapp/randog/internal/detail/detailimpl"
	"github.com/randogapp/randog/internal/dogapi/mocks"
	"github.com/randogapp/randog/internal/domain"
	"github.com/randogapp/randog/internal/feed/feedimpl"
	"github.com/randogapp/randog/internal/repositories/sessionrecord"
	"github.com/randogapp/randog/internal/session/sessionimpl"
	"github.com/randogapp/randog/pkg/config"
	"github.com/randogapp/randog/pkg/logger"
	"go.uber.org/mock/gomock"
)

type fakeDownloader struct {
	history []*domain.Download
}

func (f *fakeDownloader) Download(_ context.Context, item domain.MediaItem) (string, error) {
	d := &domain.Download{URL: item.URL, Category: item.Category, FilePath: "/tmp/" + item.Category}
	f.history = append(f.history, d)
	return d.FilePath, nil
}

func (f *fakeDownloader) DownloadBatch(ctx context.Context, items []domain.MediaItem) int {
	for _, item := range items {
		_, _ = f.Download(ctx, item)
	}
	return len(items)
}

func (f *fakeDownloader) ListRecent(_ context.Context, limit int) ([]*domain.Download, error) {
	if len(f.history) > limit {
		return f.history[:limit], nil
	}
	return f.history, nil
}

func (f *fakeDownloader) ScheduleCleanup(context.Context, time.Duration) error {
	return nil
}

func newTestServer(t *testing.T) (*Server, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := mocks.NewMockClient(ctrl)
	log := logger.New(logger.Opts{})

	cfg := &config.Config{}
	cfg.Feed.BatchSize = 10
	cfg.Feed.RelatedSize = 5
	cfg.Feed.Breeds = "beagle,boxer,poodle"

	feedOpts := feedimpl.Opts{DogAPI: api, Logger: log, Config: cfg}

	srv := New(Opts{
		Logger:    log,
		Config:    cfg,
		Images:    feedimpl.New(domain.KindImage, feedOpts),
		Videos:    feedimpl.New(domain.KindVideo, feedOpts),
		Detail:    detailimpl.New(detailimpl.Opts{DogAPI: api, Logger: log, Config: cfg}),
		Session:   sessionimpl.New(sessionimpl.Opts{Records: sessionrecord.NewMemoryRepository(), Logger: log}),
		Downloads: &fakeDownloader{},
	})
	return srv, api
}

func doRequest(srv *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestAuthFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/me", "")
	var me map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("bad me response: %v", err)
	}
	if me["displayName"] != "" {
		t.Errorf("expected empty display name before signup, got %q", me["displayName"])
	}

	rec = doRequest(srv, http.MethodPost, "/api/auth/signup",
		`{"username":"jane","email":"jane.doe@x.com","password":"pw","confirmPassword":"other"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for password mismatch, got %d", rec.Code)
	}

	rec = doRequest(srv, http.MethodPost, "/api/auth/signup",
		`{"username":"jane","email":"jane.doe@x.com","password":"pw","confirmPassword":"pw"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(srv, http.MethodPost, "/api/auth/login", `{"email":"jane.doe@x.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", rec.Code)
	}

	rec = doRequest(srv, http.MethodPost, "/api/auth/login", `{"email":"jane.doe@x.com","password":"pw"}`)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for valid login, got %d", rec.Code)
	}

	rec = doRequest(srv, http.MethodGet, "/api/me", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("bad me response: %v", err)
	}
	if me["displayName"] != "Jane Doe" {
		t.Errorf("expected Jane Doe, got %q", me["displayName"])
	}
}

func TestFeedEndpoints(t *testing.T) {
	srv, api := newTestServer(t)
	api.EXPECT().RandomImages(gomock.Any(), 10).Return([]string{"https://x/breeds/beagle/1.jpg"}, nil)

	rec := doRequest(srv, http.MethodGet, "/api/feed", "")
	var state domain.FeedState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("bad state response: %v", err)
	}
	if state.Status != domain.StatusIdle {
		t.Errorf("expected idle before first category, got %s", state.Status)
	}

	rec = doRequest(srv, http.MethodPost, "/api/feed/category?category=all", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("bad state response: %v", err)
	}
	if state.Status != domain.StatusLoaded || len(state.Items) != 1 {
		t.Errorf("unexpected state: %+v", state)
	}

	rec = doRequest(srv, http.MethodPost, "/api/feed/category", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing category, got %d", rec.Code)
	}
}

func TestDetailEndpointPayloadErrors(t *testing.T) {
	srv, api := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/detail", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing payload, got %d", rec.Code)
	}

	rec = doRequest(srv, http.MethodGet, "/api/detail?item=%7Bnope", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed payload, got %d", rec.Code)
	}

	api.EXPECT().BreedImages(gomock.Any(), "boxer", 5).Return([]string{"https://x/breeds/boxer/2.jpg"}, nil)
	item := `{"url":"https://x/breeds/boxer/1.jpg","category":"boxer","kind":"image"}`
	rec = doRequest(srv, http.MethodGet, "/api/detail?item="+strings.ReplaceAll(item, " ", ""), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDownloadBatchEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/downloads/batch",
		`[{"url":"https://x/breeds/boxer/1.jpg","category":"boxer","kind":"image"},
		  {"url":"https://x/breeds/beagle/2.jpg","category":"beagle"}]`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("bad batch response: %v", err)
	}
	if result["requested"] != 2 || result["saved"] != 2 {
		t.Errorf("unexpected counts: %+v", result)
	}

	rec = doRequest(srv, http.MethodGet, "/api/downloads", "")
	var history struct {
		Downloads []*domain.Download `json:"downloads"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &history); err != nil {
		t.Fatalf("bad history response: %v", err)
	}
	if len(history.Downloads) != 2 {
		t.Errorf("expected 2 history entries, got %d", len(history.Downloads))
	}
}

func TestDownloadBatchEndpointRejectsBadBodies(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"broken json", `[{"url":`},
		{"empty batch", `[]`},
		{"item without url", `[{"category":"boxer"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(srv, http.MethodPost, "/api/downloads/batch", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestDownloadEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/downloads",
		`{"url":"https://x/breeds/boxer/1.jpg","category":"boxer","kind":"image"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(srv, http.MethodGet, "/api/downloads", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Downloads []*domain.Download `json:"downloads"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad history response: %v", err)
	}
	if len(resp.Downloads) != 1 {
		t.Errorf("expected 1 history entry, got %d", len(resp.Downloads))
	}
}
