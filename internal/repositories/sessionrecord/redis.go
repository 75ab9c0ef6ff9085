package sessionrecord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/randogapp/randog/internal/domain"
	"github.com/randogapp/randog/pkg/config"
	"github.com/randogapp/randog/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type RedisRepository struct {
	client *redis.Client
	logger logger.Logger
	key    string
}

func NewRedisRepository(client *redis.Client, cfg *config.Config, logger logger.Logger) *RedisRepository {
	return &RedisRepository{
		client: client,
		logger: logger.WithComponent("SessionRecordRepo"),
		key:    cfg.Session.Key,
	}
}

var _ Repository = (*RedisRepository)(nil)

func (r *RedisRepository) Get(ctx context.Context) (*domain.SessionRecord, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read session record: %w", err)
	}

	var rec domain.SessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode session record: %w", err)
	}
	return &rec, nil
}

// Save overwrites the record unconditionally; the key never expires.
func (r *RedisRepository) Save(ctx context.Context, rec domain.SessionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session record: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Error("Failed to write session record", "key", r.key, "error", err)
		return fmt.Errorf("%w: %v", ErrCannotSave, err)
	}
	return nil
}
