// Package server exposes the gallery core over HTTP. It is a thin
// presentation boundary: handlers forward user intents into the core and
// render whatever state the core returns.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/randogapp/randog/internal/detail"
	"github.com/randogapp/randog/internal/domain"
	"github.com/randogapp/randog/internal/downloader"
	"github.com/randogapp/randog/internal/feed"
	"github.com/randogapp/randog/internal/session"
	"github.com/randogapp/randog/pkg/config"
	apperrors "github.com/randogapp/randog/pkg/errors"
	"github.com/randogapp/randog/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Logger    logger.Logger
	Config    *config.Config
	Images    feed.Controller `name:"images"`
	Videos    feed.Controller `name:"videos"`
	Detail    detail.Resolver
	Session   session.Store
	Downloads downloader.Client
}

type Server struct {
	logger    logger.Logger
	images    feed.Controller
	videos    feed.Controller
	detail    detail.Resolver
	session   session.Store
	downloads downloader.Client
	router    chi.Router
}

func New(opts Opts) *Server {
	s := &Server{
		logger:    opts.Logger.WithComponent("HTTPServer"),
		images:    opts.Images,
		videos:    opts.Videos,
		detail:    opts.Detail,
		session:   opts.Session,
		downloads: opts.Downloads,
	}
	s.setupRoutes()
	return s
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)
		r.Get("/feed", s.handleFeedState)
		r.Post("/feed/category", s.handleSetCategory)
		r.Post("/feed/more", s.handleLoadMore)
		r.Get("/detail", s.handleDetail)
		r.Post("/auth/signup", s.handleSignUp)
		r.Post("/auth/login", s.handleLogIn)
		r.Get("/me", s.handleMe)
		r.Post("/downloads", s.handleDownload)
		r.Post("/downloads/batch", s.handleDownloadBatch)
		r.Get("/downloads", s.handleDownloadHistory)
	})

	s.router = r
}

// controllerFor picks the feed by the "kind" query param; images by default.
func (s *Server) controllerFor(r *http.Request) feed.Controller {
	if r.URL.Query().Get("kind") == string(domain.KindVideo) {
		return s.videos
	}
	return s.images
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"categories": s.controllerFor(r).Categories(),
	})
}

func (s *Server) handleFeedState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.controllerFor(r).State())
}

func (s *Server) handleSetCategory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		s.writeError(w, http.StatusBadRequest, "category is required")
		return
	}

	ctrl := s.controllerFor(r)
	ctrl.SetCategory(r.Context(), category)
	s.writeJSON(w, http.StatusOK, ctrl.State())
}

func (s *Server) handleLoadMore(w http.ResponseWriter, r *http.Request) {
	ctrl := s.controllerFor(r)
	ctrl.LoadMore(r.Context())
	s.writeJSON(w, http.StatusOK, ctrl.State())
}

func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	item, err := s.detail.Decode(r.URL.Query().Get("item"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.GetMessage(err))
		return
	}

	related, err := s.detail.Open(r.Context(), item)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, apperrors.GetMessage(err))
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"item":    item,
		"related": related,
	})
}

type signUpRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeBody(r.Body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.session.SignUp(r.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		if apperrors.IsValidation(err) {
			s.writeError(w, http.StatusBadRequest, apperrors.GetMessage(err))
			return
		}
		s.logger.Error("Signup failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "signup failed")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

type logInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogIn(w http.ResponseWriter, r *http.Request) {
	var req logInRequest
	if err := decodeBody(r.Body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.session.LogIn(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case apperrors.Is(err, apperrors.ErrNoAccount):
		s.writeError(w, http.StatusNotFound, apperrors.GetMessage(err))
	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		s.writeError(w, http.StatusUnauthorized, apperrors.GetMessage(err))
	case apperrors.IsValidation(err):
		s.writeError(w, http.StatusBadRequest, apperrors.GetMessage(err))
	default:
		s.logger.Error("Login failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "login failed")
	}
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"displayName": s.session.CurrentDisplayName(r.Context()),
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.detail.Decode(string(body))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.GetMessage(err))
		return
	}

	path, err := s.downloads.Download(r.Context(), item)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, apperrors.GetMessage(err))
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]string{"path": path})
}

func (s *Server) handleDownloadBatch(w http.ResponseWriter, r *http.Request) {
	var items []domain.MediaItem
	if err := decodeBody(r.Body, &items); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(items) == 0 {
		s.writeError(w, http.StatusBadRequest, "no items to download")
		return
	}
	for i, item := range items {
		if item.URL == "" {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("item %d has no url", i))
			return
		}
		if item.Kind == "" {
			items[i].Kind = domain.KindImage
		}
	}

	saved := s.downloads.DownloadBatch(r.Context(), items)
	s.writeJSON(w, http.StatusOK, map[string]int{
		"requested": len(items),
		"saved":     saved,
	})
}

func (s *Server) handleDownloadHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	list, err := s.downloads.ListRecent(r.Context(), limit)
	if err != nil {
		s.logger.Error("Failed to list downloads", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to list downloads")
		return
	}
	if list == nil {
		list = []*domain.Download{}
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"downloads": list})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func decodeBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
