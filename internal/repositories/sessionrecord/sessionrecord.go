package sessionrecord

import (
	"context"
	"errors"

	"github.com/randogapp/randog/internal/domain"
)

var ErrNotFound = errors.New("session record not found")
var ErrCannotSave = errors.New("error saving session record")

// Repository is the durable key-value contract for the single session
// record: one fixed key, JSON-serialized value, overwritten on save.
type Repository interface {
	Get(ctx context.Context) (*domain.SessionRecord, error)
	Save(ctx context.Context, rec domain.SessionRecord) error
}
