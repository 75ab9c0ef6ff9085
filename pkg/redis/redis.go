package redis

import (
	"context"
	"fmt"

	"github.com/randogapp/randog/pkg/config"
	"github.com/randogapp/randog/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Opts holds dependencies for creating a redis client.
type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New creates a redis client from the configured URL and manages its
// lifecycle.
func New(opts Opts) (*redis.Client, error) {
	ropts, err := redis.ParseURL(opts.Config.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(ropts)

	opts.LC.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("failed to ping redis: %w", err)
				}
				opts.Logger.Info("Connected to redis")
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		},
	)

	return client, nil
}
