package config

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Redis struct {
		URL string `env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
	}
	DogAPI struct {
		BaseURL           string        `env:"DOG_API_BASE_URL" env-default:"https://dog.ceo/api"`
		VideoBaseURL      string        `env:"DOG_VIDEO_BASE_URL" env-default:"https://random.dog"`
		Timeout           time.Duration `env:"DOG_API_TIMEOUT" env-default:"10s"`
		RequestsPerSecond int           `env:"DOG_API_RPS" env-default:"5"`
		Burst             int           `env:"DOG_API_BURST" env-default:"10"`
	}
	Feed struct {
		Breeds         string `env:"FEED_BREEDS" env-default:"beagle,boxer,poodle"`
		BatchSize      int    `env:"FEED_BATCH_SIZE" env-default:"10"`
		RelatedSize    int    `env:"FEED_RELATED_SIZE" env-default:"5"`
		RefreshMinutes int    `env:"FEED_REFRESH_MINUTES" env-default:"0"`
	}
	Download struct {
		Dir           string `env:"DOWNLOAD_DIR" env-default:"./downloads"`
		Workers       int    `env:"DOWNLOAD_WORKERS" env-default:"4"`
		RetentionDays int    `env:"DOWNLOAD_RETENTION_DAYS" env-default:"30"`
	}
	Session struct {
		Key string `env:"SESSION_KEY" env-default:"randog:session"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the postgres connection string used by the migration tooling.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}

// Categories returns the configured breed filters with the "all" sentinel first.
func (c *Config) Categories() []string {
	out := []string{"all"}
	for _, b := range strings.Split(c.Feed.Breeds, ",") {
		b = strings.TrimSpace(strings.ToLower(b))
		if b != "" && b != "all" {
			out = append(out, b)
		}
	}
	return out
}
