package logger

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// Logger is the structured logger used across the application.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// WithComponent returns a logger whose entries carry a component
	// attribute identifying the subsystem.
	WithComponent(name string) Logger
}

type Opts struct {
	Env       string
	SentryUrl string
}

type Impl struct {
	sl *slog.Logger
}

var _ Logger = (*Impl)(nil)

func New(opts Opts) *Impl {
	var zl zerolog.Logger
	if opts.Env == "production" {
		zl = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}

	level := slog.LevelDebug
	if opts.Env == "production" {
		level = slog.LevelInfo
	}

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	if opts.SentryUrl != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryUrl,
			Environment: opts.Env,
		})
		if err != nil {
			zl.Warn().Err(err).Msg("Sentry init failed, continuing without it")
		} else {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	return &Impl{sl: slog.New(slogmulti.Fanout(handlers...))}
}

func (i *Impl) WithComponent(name string) Logger {
	return &Impl{sl: i.sl.With("component", name)}
}

func (i *Impl) Debug(msg string, args ...any) { i.sl.Debug(msg, args...) }
func (i *Impl) Info(msg string, args ...any)  { i.sl.Info(msg, args...) }
func (i *Impl) Warn(msg string, args ...any)  { i.sl.Warn(msg, args...) }
func (i *Impl) Error(msg string, args ...any) { i.sl.Error(msg, args...) }

// Printf satisfies fx.Printer so the DI container logs through the same sink.
func (i *Impl) Printf(format string, args ...any) {
	i.sl.Info(fmt.Sprintf(format, args...))
}
