package sessionrecord

import (
	"context"
	"sync"

	"github.com/randogapp/randog/internal/domain"
)

// MemoryRepository keeps the record in process memory. Used in tests and
// when running without a redis instance.
type MemoryRepository struct {
	mu  sync.RWMutex
	rec *domain.SessionRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

var _ Repository = (*MemoryRepository)(nil)

func (m *MemoryRepository) Get(_ context.Context) (*domain.SessionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.rec == nil {
		return nil, ErrNotFound
	}
	rec := *m.rec
	return &rec, nil
}

func (m *MemoryRepository) Save(_ context.Context, rec domain.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = &rec
	return nil
}
