package sessionimpl

import (
	"context"
	"errors"

	"github.com/randogapp/randog/internal/domain"
	"github.com/randogapp/randog/internal/repositories/sessionrecord"
	"github.com/randogapp/randog/internal/session"
	apperrors "github.com/randogapp/randog/pkg/errors"
	"github.com/randogapp/randog/pkg/formatter"
	"github.com/randogapp/randog/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Records sessionrecord.Repository
	Logger  logger.Logger
}

type SessionImpl struct {
	records sessionrecord.Repository
	logger  logger.Logger
}

func New(opts Opts) *SessionImpl {
	return &SessionImpl{
		records: opts.Records,
		logger:  opts.Logger.WithComponent("SessionStore"),
	}
}

var _ session.Store = (*SessionImpl)(nil)

// SignUp overwrites any prior record; the local store holds one identity.
func (s *SessionImpl) SignUp(ctx context.Context, username, email, password, confirmPassword string) error {
	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return apperrors.ErrMissingField
	}
	if password != confirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	rec := domain.SessionRecord{
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := s.records.Save(ctx, rec); err != nil {
		return apperrors.Wrap(err, "failed to persist session record")
	}

	s.logger.Info("Session record created", "username", username)
	return nil
}

func (s *SessionImpl) LogIn(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return apperrors.ErrMissingField
	}

	rec, err := s.records.Get(ctx)
	if err != nil {
		if errors.Is(err, sessionrecord.ErrNotFound) {
			return apperrors.ErrNoAccount
		}
		return apperrors.Wrap(err, "failed to read session record")
	}

	if rec.Email != email || rec.Password != password {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

func (s *SessionImpl) CurrentDisplayName(ctx context.Context) string {
	rec, err := s.records.Get(ctx)
	if err != nil {
		if !errors.Is(err, sessionrecord.ErrNotFound) {
			s.logger.Warn("Failed to read session record", "error", err)
		}
		return ""
	}
	return formatter.DisplayNameFromEmail(rec.Email)
}
