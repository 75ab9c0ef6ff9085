package sessionimpl

import (
	"context"
	"testing"

	"github.com/randogapp/randog/internal/repositories/sessionrecord"
	apperrors "github.com/randogapp/randog/pkg/errors"
	"github.com/randogapp/randog/pkg/logger"
)

func newStore() *SessionImpl {
	return New(Opts{
		Records: sessionrecord.NewMemoryRepository(),
		Logger:  logger.New(logger.Opts{}),
	})
}

func TestSignUpValidation(t *testing.T) {
	tests := []struct {
		name                                string
		username, email, password, confirm  string
		expected                            error
	}{
		{"missing username", "", "a@x.com", "pw", "pw", apperrors.ErrMissingField},
		{"missing email", "jane", "", "pw", "pw", apperrors.ErrMissingField},
		{"missing password", "jane", "a@x.com", "", "pw", apperrors.ErrMissingField},
		{"missing confirmation", "jane", "a@x.com", "pw", "", apperrors.ErrMissingField},
		{"password mismatch", "jane", "a@x.com", "pw", "other", apperrors.ErrPasswordMismatch},
		{"valid", "jane", "a@x.com", "pw", "pw", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newStore().SignUp(context.Background(), tt.username, tt.email, tt.password, tt.confirm)
			if tt.expected == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !apperrors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestLogInRoundTrip(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	if err := s.LogIn(ctx, "jane.doe@x.com", "pw"); !apperrors.Is(err, apperrors.ErrNoAccount) {
		t.Errorf("expected no-account error before signup, got %v", err)
	}

	if err := s.SignUp(ctx, "jane", "jane.doe@x.com", "pw", "pw"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	if err := s.LogIn(ctx, "jane.doe@x.com", "pw"); err != nil {
		t.Errorf("expected login success, got %v", err)
	}
	if err := s.LogIn(ctx, "jane.doe@x.com", "wrong"); !apperrors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials, got %v", err)
	}
	if err := s.LogIn(ctx, "other@x.com", "pw"); !apperrors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials for wrong email, got %v", err)
	}
	if err := s.LogIn(ctx, "", "pw"); !apperrors.Is(err, apperrors.ErrMissingField) {
		t.Errorf("expected missing field, got %v", err)
	}
}

func TestSignUpOverwritesPriorRecord(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	if err := s.SignUp(ctx, "jane", "jane@x.com", "pw1", "pw1"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if err := s.SignUp(ctx, "joe", "joe@x.com", "pw2", "pw2"); err != nil {
		t.Fatalf("second signup failed: %v", err)
	}

	if err := s.LogIn(ctx, "jane@x.com", "pw1"); !apperrors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected old record overwritten, got %v", err)
	}
	if err := s.LogIn(ctx, "joe@x.com", "pw2"); err != nil {
		t.Errorf("expected login with new record, got %v", err)
	}
}

func TestCurrentDisplayName(t *testing.T) {
	ctx := context.Background()

	s := newStore()
	if got := s.CurrentDisplayName(ctx); got != "" {
		t.Errorf("expected empty name with no record, got %q", got)
	}

	if err := s.SignUp(ctx, "jane", "jane.doe@x.com", "pw", "pw"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if got := s.CurrentDisplayName(ctx); got != "Jane Doe" {
		t.Errorf("expected Jane Doe, got %q", got)
	}

	if err := s.SignUp(ctx, "jane", "jane_doe@x.com", "pw", "pw"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if got := s.CurrentDisplayName(ctx); got != "Jane Doe" {
		t.Errorf("expected Jane Doe for underscore email, got %q", got)
	}
}
