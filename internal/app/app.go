package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/randogapp/randog/internal/db"
	"github.com/randogapp/randog/internal/detail"
	"github.com/randogapp/randog/internal/detail/detailimpl"
	"github.com/randogapp/randog/internal/dogapi"
	"github.com/randogapp/randog/internal/dogapi/dogapiimpl"
	"github.com/randogapp/randog/internal/domain"
	"github.com/randogapp/randog/internal/downloader"
	"github.com/randogapp/randog/internal/downloader/downloaderimpl"
	"github.com/randogapp/randog/internal/feed"
	"github.com/randogapp/randog/internal/feed/feedimpl"
	repositories "github.com/randogapp/randog/internal/repositories/fx"
	"github.com/randogapp/randog/internal/server"
	"github.com/randogapp/randog/internal/session"
	"github.com/randogapp/randog/internal/session/sessionimpl"
	"github.com/randogapp/randog/pkg/config"
	"github.com/randogapp/randog/pkg/logger"
	"github.com/randogapp/randog/pkg/pgx"
	"github.com/randogapp/randog/pkg/redis"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		redis.New,
	),
	fx.Provide(
		fx.Annotate(
			dogapiimpl.New,
			fx.As(new(dogapi.Client)),
		), fx.Annotate(
			detailimpl.New,
			fx.As(new(detail.Resolver)),
		), fx.Annotate(
			sessionimpl.New,
			fx.As(new(session.Store)),
		), fx.Annotate(
			downloaderimpl.New,
			fx.As(new(downloader.Client)),
		),
		server.New,
	),
	fx.Provide(
		fx.Annotate(
			func(opts feedimpl.Opts) *feedimpl.FeedImpl {
				return feedimpl.New(domain.KindImage, opts)
			},
			fx.As(new(feed.Controller)),
			fx.ResultTags(`name:"images"`),
		),
		fx.Annotate(
			func(opts feedimpl.Opts) *feedimpl.FeedImpl {
				return feedimpl.New(domain.KindVideo, opts)
			},
			fx.As(new(feed.Controller)),
			fx.ResultTags(`name:"videos"`),
		),
	),
	repositories.Module,
	fx.Invoke(func(cfg *config.Config, log logger.Logger) error {
		if err := db.Migrate(cfg, "up"); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("Migrations applied")
		return nil
	}),
	fx.Invoke(run),
)

type runOpts struct {
	fx.In

	LC        fx.Lifecycle
	Logger    logger.Logger
	Config    *config.Config
	Server    *server.Server
	Images    feed.Controller `name:"images"`
	Videos    feed.Controller `name:"videos"`
	Downloads downloader.Client
}

func run(opts runOpts) {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler: opts.Server.Router(),
	}

	jobCtx, cancelJobs := context.WithCancel(context.Background())

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				opts.Logger.Info("Starting server", "addr", httpServer.Addr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					opts.Logger.Error("Server failed", "error", err)
				}
			}()

			if mins := opts.Config.Feed.RefreshMinutes; mins > 0 {
				every := time.Duration(mins) * time.Minute
				if err := opts.Images.ScheduleAutoRefresh(jobCtx, every); err != nil {
					opts.Logger.Error("Image feed refresh schedule error", "error", err)
				}
				if err := opts.Videos.ScheduleAutoRefresh(jobCtx, every); err != nil {
					opts.Logger.Error("Video feed refresh schedule error", "error", err)
				}
			}

			retention := time.Duration(opts.Config.Download.RetentionDays) * 24 * time.Hour
			if err := opts.Downloads.ScheduleCleanup(jobCtx, retention); err != nil {
				opts.Logger.Error("Download cleanup schedule error", "error", err)
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancelJobs()
			return httpServer.Shutdown(ctx)
		},
	})
}
