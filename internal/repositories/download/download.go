package download

import (
	"context"
	"errors"
	"time"

	"github.com/randogapp/randog/internal/domain"
)

var ErrNotFound = errors.New("download not found")
var ErrCannotCreate = errors.New("error recording download")

//go:generate go run go.uber.org/mock/mockgen -source=download.go -destination=mocks/mock.go -package=mocks

// Repository records every media file saved to disk.
type Repository interface {
	Create(ctx context.Context, d domain.Download) error
	ListRecent(ctx context.Context, limit int) ([]*domain.Download, error)
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
