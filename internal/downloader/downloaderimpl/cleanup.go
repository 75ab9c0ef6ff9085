package downloaderimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// ScheduleCleanup sets up a daily job that prunes download-history records
// older than the configured retention window.
func (d *DownloaderImpl) ScheduleCleanup(ctx context.Context, retention time.Duration) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create cleanup scheduler: %w", err)
	}

	// Runs at 3:00 AM every day.
	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}

			d.logger.Info("Starting download history cleanup")

			cleanupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			rowsDeleted, err := d.repo.CleanupOldRecords(cleanupCtx, retention)
			if err != nil {
				d.logger.Error("Failed to clean up download history", "error", err)
				return
			}

			d.logger.Info("Download history cleanup completed", "rows_deleted", rowsDeleted)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule download cleanup: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		d.logger.Info("Stopping download cleanup scheduler")
		if err := scheduler.Shutdown(); err != nil {
			d.logger.Error("Failed to shut down cleanup scheduler", "error", err)
		}
	}()

	return nil
}
