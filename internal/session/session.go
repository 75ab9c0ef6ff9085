package session

import (
	"context"
)

// Store persists the single local signup identity and exposes the derived
// display name. Validation and auth failures are reported with the
// sentinels in pkg/errors and are never retried automatically.
type Store interface {
	SignUp(ctx context.Context, username, email, password, confirmPassword string) error
	LogIn(ctx context.Context, email, password string) error
	// CurrentDisplayName reads the stored record on every call and returns
	// "" when no record exists or the email is malformed.
	CurrentDisplayName(ctx context.Context) string
}
